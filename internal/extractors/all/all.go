// Package all lists every built-in extractor.
package all

import (
	"github.com/dejo1307/repomap/internal/extractors"
	"github.com/dejo1307/repomap/internal/extractors/goextractor"
	"github.com/dejo1307/repomap/internal/extractors/kotlinextractor"
	"github.com/dejo1307/repomap/internal/extractors/pyextractor"
	"github.com/dejo1307/repomap/internal/extractors/rubyextractor"
	"github.com/dejo1307/repomap/internal/extractors/swiftextractor"
	"github.com/dejo1307/repomap/internal/extractors/tsextractor"
)

// Extractors returns the built-in language families.
func Extractors() []extractors.Extractor {
	return []extractors.Extractor{
		tsextractor.New(),
		pyextractor.New(),
		swiftextractor.New(),
		goextractor.New(),
		kotlinextractor.New(),
		rubyextractor.New(),
	}
}

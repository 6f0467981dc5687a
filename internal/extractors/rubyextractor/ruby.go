// Package rubyextractor declares the symbol patterns of Ruby.
package rubyextractor

import (
	"regexp"

	"github.com/dejo1307/repomap/internal/extractors"
	"github.com/dejo1307/repomap/internal/model"
)

var rules = []extractors.Rule{
	{Pattern: regexp.MustCompile(`^\s*class\s+([\w:]+)`), Kind: model.KindClass},
	{Pattern: regexp.MustCompile(`^\s*(module)\s+([\w:]+)`)},
	{Pattern: regexp.MustCompile(`^\s*def\s+(?:self\.)?([\w?!=]+)`), Kind: model.KindFunc},
}

// New returns the extractor for .rb files.
func New() *extractors.Table {
	return extractors.NewTable("ruby", []string{".rb"}, extractors.HashComments, rules...)
}

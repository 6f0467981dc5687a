// Package pyextractor declares the symbol patterns of Python.
package pyextractor

import (
	"regexp"

	"github.com/dejo1307/repomap/internal/extractors"
	"github.com/dejo1307/repomap/internal/model"
)

var rules = []extractors.Rule{
	{Pattern: regexp.MustCompile(`^\s*class\s+(\w+)`), Kind: model.KindClass},
	{Pattern: regexp.MustCompile(`^\s*(?:async\s+)?def\s+(\w+)`), Kind: model.KindFunc},
}

// New returns the extractor for .py files.
func New() *extractors.Table {
	return extractors.NewTable("python", []string{".py"}, extractors.HashComments, rules...)
}

// Package goextractor declares the symbol patterns of Go.
package goextractor

import (
	"regexp"

	"github.com/dejo1307/repomap/internal/extractors"
	"github.com/dejo1307/repomap/internal/model"
)

// Only top-level declarations start at column zero in gofmt'd code, so the
// patterns are anchored without leading whitespace.
var rules = []extractors.Rule{
	{Pattern: regexp.MustCompile(`^func\s+(?:\([^)]*\)\s*)?(\w+)`), Kind: model.KindFunc},
	{Pattern: regexp.MustCompile(`^type\s+(\w+)(?:\[[^\]]*\])?\s+struct\b`), Kind: model.KindStruct},
	{Pattern: regexp.MustCompile(`^type\s+(\w+)`), Kind: model.KindTypealias},
	{Pattern: regexp.MustCompile(`^(?:var|const)\s+(\w+)`), Kind: model.KindVar},
}

// New returns the extractor for .go files.
func New() *extractors.Table {
	return extractors.NewTable("go", []string{".go"}, extractors.SlashComments, rules...)
}

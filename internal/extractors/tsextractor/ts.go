// Package tsextractor declares the symbol patterns of TypeScript and JavaScript.
package tsextractor

import (
	"regexp"

	"github.com/dejo1307/repomap/internal/extractors"
	"github.com/dejo1307/repomap/internal/model"
)

var rules = []extractors.Rule{
	{Pattern: regexp.MustCompile(`^\s*(?:export\s+)?class\s+(\w+)`), Kind: model.KindClass},
	{Pattern: regexp.MustCompile(`^\s*(?:export\s+)?interface\s+(\w+)`), Kind: model.KindTypealias},
	{Pattern: regexp.MustCompile(`^\s*(?:export\s+)?type\s+(\w+)`), Kind: model.KindTypealias},
	{Pattern: regexp.MustCompile(`^\s*(?:export\s+)?enum\s+(\w+)`), Kind: model.KindEnum},
	{Pattern: regexp.MustCompile(`^\s*(?:export\s+)?function\s+(\w+)`), Kind: model.KindFunc},
	{Pattern: regexp.MustCompile(`^\s*(?:export\s+)?(?:const|let|var)\s+(\w+)`), Kind: model.KindVar},
}

// New returns the extractor for .ts, .tsx, .js and .jsx files.
func New() *extractors.Table {
	return extractors.NewTable("typescript",
		[]string{".ts", ".tsx", ".js", ".jsx"},
		extractors.SlashComments,
		rules...,
	)
}

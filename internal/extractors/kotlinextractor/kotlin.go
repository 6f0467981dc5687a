// Package kotlinextractor declares the symbol patterns of Kotlin.
package kotlinextractor

import (
	"regexp"

	"github.com/dejo1307/repomap/internal/extractors"
	"github.com/dejo1307/repomap/internal/model"
)

const modifiers = `^\s*(?:@\w+(?:\([^)]*\))?\s+)*` +
	`(?:(?:public|private|internal|protected|open|abstract|sealed|data|inline|value|annotation|override|suspend|inner|companion|lateinit|const|operator|infix|tailrec|external|actual|expect)\s+)*`

var rules = []extractors.Rule{
	{Pattern: regexp.MustCompile(modifiers + `enum\s+class\s+(\w+)`), Kind: model.KindEnum},
	{Pattern: regexp.MustCompile(modifiers + `(?:class|object)\s+(\w+)`), Kind: model.KindClass},
	{Pattern: regexp.MustCompile(modifiers + `(?:fun\s+)?interface\s+(\w+)`), Kind: model.KindTypealias},
	{Pattern: regexp.MustCompile(modifiers + `fun\s+(?:<[^>]*>\s*)?(?:[\w.]+\.)?(\w+)`), Kind: model.KindFunc},
	{Pattern: regexp.MustCompile(modifiers + `typealias\s+(\w+)`), Kind: model.KindTypealias},
	{Pattern: regexp.MustCompile(modifiers + `(val|var)\s+(\w+)`)},
}

// New returns the extractor for .kt and .kts files.
func New() *extractors.Table {
	return extractors.NewTable("kotlin", []string{".kt", ".kts"}, extractors.SlashComments, rules...)
}

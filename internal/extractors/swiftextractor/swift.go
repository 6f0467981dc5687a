// Package swiftextractor declares the symbol patterns of Swift.
package swiftextractor

import (
	"regexp"

	"github.com/dejo1307/repomap/internal/extractors"
)

// Declarations may carry any number of attributes and modifiers, e.g.
// "@MainActor public final class Foo". The keyword group feeds kind
// normalization, so actor becomes class.
var declRe = regexp.MustCompile(
	`^\s*(?:@\w+(?:\([^)]*\))?\s+)*` +
		`(?:(?:public|private|internal|open|fileprivate|final|static|class|mutating|nonisolated|lazy|override|required|convenience)\s+)*` +
		`(class|struct|protocol|enum|typealias|actor)\s+([A-Za-z_]\w*)`,
)

// New returns the extractor for .swift files.
func New() *extractors.Table {
	return extractors.NewTable("swift",
		[]string{".swift"},
		extractors.SlashComments,
		extractors.Rule{Pattern: declRe},
	)
}

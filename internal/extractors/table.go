package extractors

import (
	"regexp"
	"strings"

	"github.com/dejo1307/repomap/internal/model"
)

// Rule matches one declaration form. With a fixed Kind the first submatch is
// the name. With an empty Kind the first submatch is the declaration keyword,
// normalized through model.NormalizeKind, and the second is the name.
type Rule struct {
	Pattern *regexp.Regexp
	Kind    model.Kind
}

// Table is an Extractor driven by an ordered list of rules; the first rule
// that matches a line wins.
type Table struct {
	name            string
	extensions      []string
	commentPrefixes []string
	rules           []Rule
}

// NewTable builds a rule table.
func NewTable(name string, extensions, commentPrefixes []string, rules ...Rule) *Table {
	return &Table{
		name:            name,
		extensions:      extensions,
		commentPrefixes: commentPrefixes,
		rules:           rules,
	}
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Extensions() []string {
	return t.extensions
}

func (t *Table) IsComment(trimmed string) bool {
	for _, p := range t.commentPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

func (t *Table) MatchLine(line string) (string, model.Kind, bool) {
	for _, r := range t.rules {
		m := r.Pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if r.Kind != "" {
			return m[1], r.Kind, true
		}
		return m[2], model.NormalizeKind(m[1]), true
	}
	return "", "", false
}

// SlashComments are the markers of C-family languages.
var SlashComments = []string{"//", "/*", "*"}

// HashComments are the markers of shell-like languages.
var HashComments = []string{"#"}

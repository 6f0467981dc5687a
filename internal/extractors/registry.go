package extractors

import (
	"sort"
	"strings"

	"github.com/dejo1307/repomap/internal/model"
)

// Extractor finds symbol declarations in single source lines for one
// language family.
type Extractor interface {
	// Name returns the extractor identifier (e.g. "python", "typescript").
	Name() string
	// Extensions lists the lower-case file extensions handled, with the dot.
	Extensions() []string
	// IsComment reports whether a whitespace-trimmed, non-empty line is a
	// comment and must not be matched.
	IsComment(trimmed string) bool
	// MatchLine returns the first declaration found on line.
	MatchLine(line string) (name string, kind model.Kind, ok bool)
}

// Registry maps file extensions to extractors.
type Registry struct {
	extractors []Extractor
	byExt      map[string]Extractor
}

// NewRegistry creates a new extractor registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]Extractor)}
}

// Register adds an extractor. A later registration takes over any extension
// already claimed.
func (r *Registry) Register(e Extractor) {
	r.extractors = append(r.extractors, e)
	for _, ext := range e.Extensions() {
		r.byExt[strings.ToLower(ext)] = e
	}
}

// Get returns the extractor with the given name, or nil if not found.
func (r *Registry) Get(name string) Extractor {
	for _, e := range r.extractors {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

// ForExtension returns the extractor for ext (e.g. ".ts"), or nil.
func (r *Registry) ForExtension(ext string) Extractor {
	if r == nil {
		return nil
	}
	return r.byExt[strings.ToLower(ext)]
}

// All returns all registered extractors.
func (r *Registry) All() []Extractor {
	return r.extractors
}

// Extensions returns every handled extension, sorted.
func (r *Registry) Extensions() []string {
	out := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

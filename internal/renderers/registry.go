package renderers

import (
	"context"

	"github.com/dejo1307/repomap/internal/model"
)

// Renderer turns a report into an output document.
type Renderer interface {
	// Name returns the renderer identifier (e.g. "json", "markdown").
	Name() string
	// MIMEType returns the media type of the rendered document.
	MIMEType() string
	// Render produces the document for report.
	Render(ctx context.Context, report *model.Report) ([]byte, error)
}

// Registry holds registered renderers.
type Registry struct {
	renderers []Renderer
}

// NewRegistry creates a new renderer registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a renderer to the registry.
func (r *Registry) Register(rnd Renderer) {
	r.renderers = append(r.renderers, rnd)
}

// Get returns the renderer with the given name, or nil if not found.
func (r *Registry) Get(name string) Renderer {
	for _, rnd := range r.renderers {
		if rnd.Name() == name {
			return rnd
		}
	}
	return nil
}

// All returns all registered renderers.
func (r *Registry) All() []Renderer {
	return r.renderers
}

// Names returns the registered renderer names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.renderers))
	for i, rnd := range r.renderers {
		names[i] = rnd.Name()
	}
	return names
}

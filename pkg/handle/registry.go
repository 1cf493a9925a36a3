package handle

import "go.uber.org/multierr"

// Registry is the bookkeeping list of all live handles created by one
// runtime. Creation call sites add handles explicitly; Remove on a handle
// deregisters it. There is no ambient process-wide list.
type Registry struct {
	handles []Handle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// Add registers a handle. The handle remembers the registry so Remove
// can deregister it.
func (r *Registry) Add(h Handle) {
	h.Base().registry = r
	r.handles = append(r.handles, h)
}

func (r *Registry) remove(h Handle) {
	for i, cur := range r.handles {
		if cur == h {
			r.handles = append(r.handles[:i], r.handles[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered handles.
func (r *Registry) Len() int { return len(r.handles) }

// Handles returns a snapshot of the registered handles.
func (r *Registry) Handles() []Handle {
	return append([]Handle(nil), r.handles...)
}

// RemoveAll removes every registered handle except canvas-bearing ones,
// returning the removal errors aggregated into one.
func (r *Registry) RemoveAll() error {
	var err error
	for _, h := range r.Handles() {
		if h.Node().Tag() == "canvas" {
			continue
		}
		err = multierr.Append(err, h.Remove())
	}
	return err
}

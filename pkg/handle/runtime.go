package handle

import (
	"fmt"

	"github.com/go-sketch/sketch/pkg/capture"
	"github.com/go-sketch/sketch/pkg/host"
)

// Runtime ties a host to a capability registry. Creation methods wrap
// host nodes, apply configuration and register the resulting handles;
// Wrap alone does neither registration nor configuration, so looking a
// node back up never double-registers it.
type Runtime struct {
	host     host.Host
	cfg      *host.Config
	registry *Registry
}

// New validates the host's protocol version and returns a runtime with
// an empty registry. cfg may be nil for defaults.
func New(h host.Host, cfg *host.Config) (*Runtime, error) {
	if err := host.CheckVersion(h.Version()); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &host.Config{}
	}
	return &Runtime{host: h, cfg: cfg, registry: NewRegistry()}, nil
}

// Host returns the runtime's host.
func (r *Runtime) Host() host.Host { return r.host }

// Registry returns the runtime's capability registry.
func (r *Runtime) Registry() *Registry { return r.registry }

// Wrap dispatches a host node to the matching handle variant without
// registering it. Use it for nodes found in the tree rather than created
// through the runtime.
func (r *Runtime) Wrap(n host.Node) Handle {
	return Wrap(r.host, n)
}

func (r *Runtime) adopt(h Handle) Handle {
	if m, ok := h.(*Media); ok {
		m.autoplayWindow = r.cfg.AutoplayTimeout()
	}
	r.registry.Add(h)
	return h
}

// CreateElement creates a plain element handle over a fresh node with the
// given tag.
func (r *Runtime) CreateElement(tag string) *Element {
	e := NewElement(r.host, r.host.CreateNode(tag))
	r.adopt(e)
	return e
}

// CreateCheckbox creates a checkbox handle over a fresh checkbox input.
func (r *Runtime) CreateCheckbox() *Checkbox {
	c := newCheckbox(r.host, r.host.CreateInput("checkbox"))
	r.adopt(c)
	return c
}

// CreateSelect creates a selection-list handle. multiple allows more than
// one selection.
func (r *Runtime) CreateSelect(multiple bool) *Select {
	n := r.host.CreateNode("select")
	if multiple {
		n.SetAttr("multiple", "true")
	}
	s := newSelect(r.host, n)
	r.adopt(s)
	return s
}

// CreateRadio creates a radio-group handle over a fresh container with a
// process-unique group name.
func (r *Runtime) CreateRadio() *RadioGroup {
	g := newRadioGroup(r.host, r.host.CreateNode("div"))
	r.adopt(g)
	return g
}

// CreateMedia creates a media handle over a fresh playable node, adding
// one source per URL. The tag must be "audio" or "video"; anything else
// is a caller bug and panics.
func (r *Runtime) CreateMedia(tag string, urls ...string) *Media {
	if tag != "audio" && tag != "video" {
		panic(fmt.Sprintf("handle: media tag must be audio or video, got %q", tag))
	}
	m := newMedia(r.host, r.host.CreateMedia(tag))
	for _, u := range urls {
		m.AddSource(u)
	}
	r.adopt(m)
	return m
}

// CreateCapture creates a media handle and asynchronously attaches a live
// device stream to it. The handle is returned immediately; the stream is
// attached post-hoc when the host resolves the request, and rejections
// are logged rather than surfaced. A host without capture support fails
// fast with an error and no handle.
//
// A stream that resolves after the handle was removed has its tracks
// stopped immediately instead of being attached.
func (r *Runtime) CreateCapture(opts host.CaptureOptions) (*Media, error) {
	m := newMedia(r.host, r.host.CreateMedia("video"))

	cancel, err := capture.Acquire(r.host, opts, func(s host.Stream, captureErr error) {
		if captureErr != nil || s == nil {
			return
		}
		if m.Removed() {
			for _, t := range s.Tracks() {
				t.Stop()
			}
			return
		}
		m.SetStream(s)
	})
	if err != nil {
		return nil, err
	}

	m.teardown = append(m.teardown, func() error {
		cancel()
		return nil
	})
	r.adopt(m)
	return m, nil
}

// RemoveElements removes every registered handle except canvas-bearing
// ones.
func (r *Runtime) RemoveElements() error {
	return r.registry.RemoveAll()
}

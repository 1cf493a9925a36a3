// Package memhost provides an in-memory host.Host implementation with real
// tree, attribute and playback-clock semantics. It backs the runtime's
// tests and headless use; nothing in it renders.
package memhost

import "github.com/go-sketch/sketch/pkg/host"

// Host is an in-memory host. The exported fields script its behavior;
// a zero value supports nothing, so use New for a permissive default.
type Host struct {
	// AutoplayAllowed controls whether Play attempts succeed. When false,
	// Play delivers host.ErrNotAllowed.
	AutoplayAllowed bool

	// PlayErr, when set, is delivered to every Play attempt in place of
	// success. Checked after AutoplayAllowed.
	PlayErr error

	// CaptureSupported and FileAPISupported answer feature probes.
	CaptureSupported bool
	FileAPISupported bool

	// CaptureErr, when set, is the rejection delivered to capture
	// requests instead of a stream.
	CaptureErr error

	// DeferCapture holds capture requests pending until ResolveCapture
	// or CancelPending is called, instead of resolving synchronously.
	DeferCapture bool

	// ProtocolVersion is what Version reports.
	ProtocolVersion string

	pending *pendingCapture
}

type pendingCapture struct {
	opts     host.CaptureOptions
	deliver  func(host.Stream, error)
	canceled bool
}

// New returns a permissive in-memory host: autoplay allowed, capture and
// file APIs supported, current protocol version.
func New() *Host {
	return &Host{
		AutoplayAllowed:  true,
		CaptureSupported: true,
		FileAPISupported: true,
		ProtocolVersion:  "v1.2.0",
	}
}

// CreateNode produces a detached node with the given tag.
func (h *Host) CreateNode(tag string) host.Node { return newNode(tag, "") }

// CreateInput produces a detached input node of the given subtype.
func (h *Host) CreateInput(inputType string) host.Node { return newNode("input", inputType) }

// CreateMedia produces a detached playable node.
func (h *Host) CreateMedia(tag string) host.MediaNode { return newMediaNode(h, tag) }

// Supports answers feature probes from the scripted fields.
func (h *Host) Supports(f host.Feature) bool {
	switch f {
	case host.FeatureCapture:
		return h.CaptureSupported
	case host.FeatureFileAPI:
		return h.FileAPISupported
	default:
		return false
	}
}

// Capture acquires a scripted capture stream. With DeferCapture set the
// request stays pending until ResolveCapture.
func (h *Host) Capture(opts host.CaptureOptions, deliver func(host.Stream, error)) (func(), error) {
	if !h.CaptureSupported {
		return nil, host.ErrUnsupported
	}
	p := &pendingCapture{opts: opts, deliver: deliver}
	if h.DeferCapture {
		h.pending = p
		return func() { p.canceled = true }, nil
	}
	h.resolve(p)
	return func() { p.canceled = true }, nil
}

// ResolveCapture resolves a deferred capture request. It is a no-op when
// nothing is pending.
func (h *Host) ResolveCapture() {
	if h.pending == nil {
		return
	}
	p := h.pending
	h.pending = nil
	h.resolve(p)
}

func (h *Host) resolve(p *pendingCapture) {
	if p.canceled || p.deliver == nil {
		return
	}
	if h.CaptureErr != nil {
		p.deliver(nil, h.CaptureErr)
		return
	}
	p.deliver(NewStream(p.opts), nil)
}

// Version reports the scripted protocol version.
func (h *Host) Version() string { return h.ProtocolVersion }

// Track is one live in-memory capture track.
type Track struct {
	kind    string
	stopped bool
}

// Kind returns "audio" or "video".
func (t *Track) Kind() string { return t.kind }

// Stop releases the track. Stopping twice is a no-op.
func (t *Track) Stop() { t.stopped = true }

// Stopped reports whether the track has been stopped.
func (t *Track) Stopped() bool { return t.stopped }

// Stream is a live in-memory capture stream.
type Stream struct {
	tracks []*Track
}

// NewStream builds a stream with one track per requested kind.
func NewStream(opts host.CaptureOptions) *Stream {
	s := &Stream{}
	if opts.Audio {
		s.tracks = append(s.tracks, &Track{kind: "audio"})
	}
	if opts.Video {
		s.tracks = append(s.tracks, &Track{kind: "video"})
	}
	return s
}

// Tracks returns the stream's tracks.
func (s *Stream) Tracks() []host.Track {
	out := make([]host.Track, len(s.tracks))
	for i, t := range s.tracks {
		out[i] = t
	}
	return out
}

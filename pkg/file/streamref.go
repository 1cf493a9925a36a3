package file

import (
	"io"
	"sync/atomic"

	"github.com/go-sketch/sketch/pkg/host"
)

// StreamRef is a revocable reference to playable file content. It is
// created synchronously around the raw handle without reading anything;
// the host media pipeline opens it on demand. After Revoke every Open
// fails, letting the owner invalidate outstanding references when the
// backing handle goes away.
type StreamRef struct {
	raw     Raw
	revoked atomic.Bool
}

// NewStreamRef wraps raw without reading it.
func NewStreamRef(raw Raw) *StreamRef {
	return &StreamRef{raw: raw}
}

// Name returns the backing file name.
func (s *StreamRef) Name() string { return s.raw.Name() }

// Open returns a reader over the backing content, or ErrCanceled once
// the reference has been revoked.
func (s *StreamRef) Open() (io.ReadCloser, error) {
	if s.revoked.Load() {
		return nil, host.ErrCanceled
	}
	return s.raw.Open()
}

// Revoke invalidates the reference. Revoking twice is a no-op.
func (s *StreamRef) Revoke() { s.revoked.Store(true) }

// Revoked reports whether Revoke has run.
func (s *StreamRef) Revoked() bool { return s.revoked.Load() }

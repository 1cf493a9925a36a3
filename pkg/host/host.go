package host

import "errors"

// Feature identifies an optional host capability the runtime can probe for.
type Feature int

const (
	// FeatureCapture indicates the host can acquire live device streams.
	FeatureCapture Feature = iota

	// FeatureFileAPI indicates the host can read user-supplied files.
	FeatureFileAPI
)

// String returns a human-readable label for the feature.
func (f Feature) String() string {
	switch f {
	case FeatureCapture:
		return "capture"
	case FeatureFileAPI:
		return "file"
	default:
		return "unknown"
	}
}

// CaptureOptions selects which device tracks a capture request asks for.
type CaptureOptions struct {
	// Audio requests a microphone track.
	Audio bool
	// Video requests a camera track.
	Video bool
}

// Track is one live media track owned by a capture stream.
type Track interface {
	// Kind is "audio" or "video".
	Kind() string
	// Stop releases the underlying device. Stopping twice is a no-op.
	Stop()
}

// Stream is a live capture stream attachable to a MediaNode.
type Stream interface {
	Tracks() []Track
}

// Host is the bridge to the environment owning the real UI tree. It
// produces detached nodes, answers feature probes, and acquires device
// capture streams.
type Host interface {
	// CreateNode produces a detached node with the given tag.
	CreateNode(tag string) Node

	// CreateInput produces a detached input node of the given subtype.
	CreateInput(inputType string) Node

	// CreateMedia produces a detached playable node ("audio" or "video").
	CreateMedia(tag string) MediaNode

	// Supports reports whether the host provides the given feature.
	Supports(f Feature) bool

	// Capture asynchronously acquires a live device stream. deliver is
	// invoked exactly once with either the stream or the rejection
	// reason. Capture returns ErrUnsupported synchronously when the host
	// lacks device capture; otherwise the returned cancel function stops
	// the acquisition, after which deliver is never invoked.
	Capture(opts CaptureOptions, deliver func(Stream, error)) (cancel func(), err error)

	// Version reports the host protocol version as a semver string.
	Version() string
}

// Sentinel errors for host operations.
var (
	// ErrNotAllowed is returned when host policy blocks an operation,
	// such as starting playback without a user gesture.
	ErrNotAllowed = errors.New("host: operation not allowed by policy")

	// ErrUnsupported is returned when the host lacks a requested feature.
	ErrUnsupported = errors.New("host: feature unsupported")

	// ErrNotConnected is returned when tearing down an audio output
	// routing that was never established.
	ErrNotConnected = errors.New("host: output not connected")

	// ErrCanceled is returned when an asynchronous acquisition is
	// canceled before it resolves.
	ErrCanceled = errors.New("host: operation canceled")
)

// Package host defines the boundary between the sketch runtime and the
// environment that owns the real UI tree. The runtime never touches host
// widgets directly: it talks to Node and MediaNode values supplied by a
// Host implementation, and receives notifications as Event values on the
// single cooperative timeline.
package host

// Event is a notification delivered by the host for a bound event kind.
type Event struct {
	// Kind is the event kind the handler was bound for.
	Kind string
	// Data carries host-specific payload fields, if any.
	Data map[string]any
}

// Event kinds the runtime binds on host nodes.
const (
	EventTimeUpdate     = "timeupdate"
	EventLoadedMetadata = "loadedmetadata"
	EventCanPlay        = "canplay"
	EventPlay           = "play"
	EventEnded          = "ended"
	EventChange         = "change"
)

// Node is one widget in the host tree. Implementations are not required
// to be safe for concurrent use; all access happens on the cooperative
// timeline.
type Node interface {
	// Tag returns the node's tag category in lower case ("div", "input",
	// "select", "option", "label", "audio", "video", "canvas", ...).
	Tag() string

	// InputType returns the input subtype ("checkbox", "radio", "text",
	// ...) for input nodes and the empty string otherwise.
	InputType() string

	Parent() Node
	Children() []Node
	Append(child Node)
	RemoveChild(child Node)

	// Detach unlinks the node from its parent. Detaching an already
	// detached node is a no-op.
	Detach()

	// Attr returns the attribute value, or the empty string when unset.
	Attr(name string) string
	SetAttr(name, value string)
	RemoveAttr(name string)

	// Text is the node's own text content (option labels, captions).
	Text() string
	SetText(text string)

	// SetBounds mirrors handle geometry into the host.
	SetBounds(x, y, w, h float64)

	// Bind subscribes fn to the given event kind and returns a remover
	// for exactly that subscription. Bindings compose: several handles
	// may observe the same kind on one node without disturbing each
	// other. A nil fn yields a no-op remover.
	Bind(kind string, fn func(Event)) (remove func())
}

// MediaNode is a playable host node ("audio" or "video").
type MediaNode interface {
	Node

	// Play asks the host to start playback. The outcome of the attempt is
	// delivered asynchronously through done: nil when playback started,
	// ErrNotAllowed when host policy blocked it, any other error for
	// unexpected failures. Play never blocks and done may be invoked
	// before Play returns. done may be nil.
	Play(done func(error))
	Pause()

	// Reload re-fetches the current sources. Needed by hosts that cannot
	// resume playback after a stop without reloading source data.
	Reload()

	CurrentTime() float64
	SetCurrentTime(seconds float64)
	Duration() float64

	Volume() float64
	SetVolume(v float64)

	PlaybackRate() float64
	SetPlaybackRate(rate float64)

	Loop() bool
	SetLoop(loop bool)
	SetAutoplay(autoplay bool)

	// ReadyState reports how much media data the host has decoded.
	ReadyState() ReadyState

	// AddSource appends a playback source URL.
	AddSource(url string)

	// SetStream attaches a live capture stream, replacing URL sources.
	SetStream(s Stream)
	// Stream returns the attached live stream, or nil.
	Stream() Stream

	// ConnectOutput routes the node's audio to the host output.
	ConnectOutput() error
	// DisconnectOutput tears down the output routing.
	DisconnectOutput() error
}

// ReadyState reports how much media data the host has buffered, mirroring
// the usual host media element readiness ladder.
type ReadyState int

const (
	// HaveNothing indicates no information about the media is available.
	HaveNothing ReadyState = iota

	// HaveMetadata indicates duration and dimensions are known.
	HaveMetadata

	// HaveCurrentData indicates data for the current position is available.
	HaveCurrentData

	// HaveFutureData indicates enough data to advance at least a little.
	HaveFutureData

	// HaveEnoughData indicates playback can proceed to the end uninterrupted.
	HaveEnoughData
)

// String returns a human-readable label for the ready state.
func (s ReadyState) String() string {
	switch s {
	case HaveNothing:
		return "HaveNothing"
	case HaveMetadata:
		return "HaveMetadata"
	case HaveCurrentData:
		return "HaveCurrentData"
	case HaveFutureData:
		return "HaveFutureData"
	case HaveEnoughData:
		return "HaveEnoughData"
	default:
		return "Unknown"
	}
}

package memhost

import "github.com/go-sketch/sketch/pkg/host"

// MediaNode is an in-memory playable node with a manually advanced clock.
// Tests drive it with LoadMetadata, SetReady, AdvanceTime and
// FinishPlayback.
type MediaNode struct {
	Node

	h *Host

	currentTime float64
	duration    float64
	volume      float64
	rate        float64
	loop        bool
	autoplay    bool
	readyState  host.ReadyState
	playing     bool
	connected   bool

	sources []string
	stream  host.Stream

	// ReloadCount counts Reload calls for test assertions.
	ReloadCount int
}

func newMediaNode(h *Host, tag string) *MediaNode {
	m := &MediaNode{
		Node:   *newNode(tag, ""),
		h:      h,
		volume: 1,
		rate:   1,
	}
	m.self = m
	return m
}

// Play starts playback unless host policy forbids it. The outcome is
// delivered synchronously through done.
func (m *MediaNode) Play(done func(error)) {
	if m.h != nil && !m.h.AutoplayAllowed {
		if done != nil {
			done(host.ErrNotAllowed)
		}
		return
	}
	if m.h != nil && m.h.PlayErr != nil {
		if done != nil {
			done(m.h.PlayErr)
		}
		return
	}
	m.playing = true
	m.Emit(host.EventPlay, nil)
	if done != nil {
		done(nil)
	}
}

// Pause halts playback without changing the position.
func (m *MediaNode) Pause() { m.playing = false }

// Playing reports whether the node is currently playing.
func (m *MediaNode) Playing() bool { return m.playing }

// Reload re-fetches the current sources.
func (m *MediaNode) Reload() { m.ReloadCount++ }

// CurrentTime returns the playback position in seconds.
func (m *MediaNode) CurrentTime() float64 { return m.currentTime }

// SetCurrentTime seeks to the given position.
func (m *MediaNode) SetCurrentTime(seconds float64) { m.currentTime = seconds }

// Duration returns the media length in seconds.
func (m *MediaNode) Duration() float64 { return m.duration }

// Volume returns the current volume.
func (m *MediaNode) Volume() float64 { return m.volume }

// SetVolume sets the volume without clamping.
func (m *MediaNode) SetVolume(v float64) { m.volume = v }

// PlaybackRate returns the playback-rate multiplier.
func (m *MediaNode) PlaybackRate() float64 { return m.rate }

// SetPlaybackRate sets the playback-rate multiplier.
func (m *MediaNode) SetPlaybackRate(rate float64) { m.rate = rate }

// Loop reports the loop flag.
func (m *MediaNode) Loop() bool { return m.loop }

// SetLoop sets the loop flag.
func (m *MediaNode) SetLoop(loop bool) { m.loop = loop }

// SetAutoplay sets the autoplay flag.
func (m *MediaNode) SetAutoplay(autoplay bool) { m.autoplay = autoplay }

// Autoplay reports the autoplay flag.
func (m *MediaNode) Autoplay() bool { return m.autoplay }

// ReadyState reports how much media data is buffered.
func (m *MediaNode) ReadyState() host.ReadyState { return m.readyState }

// AddSource appends a playback source URL.
func (m *MediaNode) AddSource(url string) { m.sources = append(m.sources, url) }

// Sources returns the accumulated source URLs.
func (m *MediaNode) Sources() []string { return m.sources }

// SetStream attaches a live capture stream, replacing URL sources.
func (m *MediaNode) SetStream(s host.Stream) {
	m.stream = s
	m.sources = nil
}

// Stream returns the attached live stream, or nil.
func (m *MediaNode) Stream() host.Stream { return m.stream }

// ConnectOutput routes audio to the host output.
func (m *MediaNode) ConnectOutput() error {
	m.connected = true
	return nil
}

// DisconnectOutput tears down the output routing.
func (m *MediaNode) DisconnectOutput() error {
	if !m.connected {
		return host.ErrNotConnected
	}
	m.connected = false
	return nil
}

// Connected reports whether the output routing is established.
func (m *MediaNode) Connected() bool { return m.connected }

// LoadMetadata marks metadata as decoded, records the duration and emits
// the loadedmetadata notification.
func (m *MediaNode) LoadMetadata(duration float64) {
	m.duration = duration
	if m.readyState < host.HaveMetadata {
		m.readyState = host.HaveMetadata
	}
	m.Emit(host.EventLoadedMetadata, nil)
}

// SetReady moves the ready state and emits canplay once enough data is
// buffered to advance.
func (m *MediaNode) SetReady(rs host.ReadyState) {
	m.readyState = rs
	if rs >= host.HaveFutureData {
		m.Emit(host.EventCanPlay, nil)
	}
}

// AdvanceTime moves the playback clock and emits a timeupdate
// notification, mimicking the host's periodic position callbacks.
func (m *MediaNode) AdvanceTime(seconds float64) {
	m.currentTime = seconds
	m.Emit(host.EventTimeUpdate, map[string]any{"time": seconds})
}

// FinishPlayback runs the clock to the end. A looping node wraps to zero
// and keeps playing; otherwise playback stops and ended is emitted.
func (m *MediaNode) FinishPlayback() {
	m.currentTime = m.duration
	if m.loop {
		m.currentTime = 0
		m.Emit(host.EventTimeUpdate, map[string]any{"time": 0.0})
		return
	}
	m.playing = false
	m.Emit(host.EventEnded, nil)
}

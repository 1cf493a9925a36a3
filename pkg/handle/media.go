package handle

import (
	stderrors "errors"
	"time"

	"github.com/go-sketch/sketch/pkg/errors"
	"github.com/go-sketch/sketch/pkg/host"
)

// Media is an element handle over playable content. It tracks metadata
// arrival, buffers a preset playback rate until the host can apply it,
// and owns a cue scheduler driven by the host's timeupdate notifications.
type Media struct {
	Element

	media host.MediaNode

	// loadedMetadata stays false until the host confirms decodable
	// metadata.
	loadedMetadata bool

	// presetRate buffers a playback rate requested before metadata
	// arrived. It is materialized into the real rate exactly once, when
	// metadata loads, then discarded.
	presetRate *float64

	// previousTime is the cue scheduler's watermark: the last observed
	// playback position.
	previousTime float64

	// cues is the ordered cue list; ids come from an ever-incrementing
	// counter and are never reused. cueUnhook is non-nil while the
	// scheduler is armed on timeupdate notifications.
	cues      []cue
	nextCueID int
	cueUnhook func()

	onEnded func(*Media)

	connected bool

	autoplay        bool
	autoplayWindow  time.Duration
	watchdog        *time.Timer
	watchdogPending bool
}

func newMedia(h host.Host, n host.MediaNode) *Media {
	m := &Media{
		Element:        newElement(h, n),
		media:          n,
		autoplayWindow: host.DefaultAutoplayTimeout,
	}
	m.owner = m

	m.hook(host.EventLoadedMetadata, func(host.Event) {
		m.loadedMetadata = true
		if m.presetRate != nil {
			m.media.SetPlaybackRate(*m.presetRate)
			m.presetRate = nil
		}
	})
	m.hook(host.EventPlay, func(host.Event) {
		m.stopWatchdog()
		m.watchdogPending = false
	})
	m.hook(host.EventCanPlay, func(host.Event) {
		if m.watchdogPending {
			m.watchdogPending = false
			m.armWatchdog()
		}
	})
	m.hook(host.EventEnded, func(host.Event) {
		if m.media.Loop() {
			return
		}
		if m.onEnded != nil {
			m.onEnded(m)
		}
	})

	m.teardown = append(m.teardown, func() error {
		m.stopWatchdog()
		m.watchdogPending = false
		m.ClearCues()
		if s := m.media.Stream(); s != nil {
			for _, t := range s.Tracks() {
				t.Stop()
			}
		}
		return nil
	})

	return m
}

// Kind returns KindMedia.
func (m *Media) Kind() Kind { return KindMedia }

// MediaNode returns the wrapped playable node.
func (m *Media) MediaNode() host.MediaNode { return m.media }

// Play starts playback without suspending the caller. A run that
// previously completed rewinds to zero first, and a host that lacks a
// full decode buffer is asked to reload before the play attempt. A
// policy denial of the attempt surfaces as a friendly autoplay warning;
// any other rejection is reported as an unexpected media error.
func (m *Media) Play() {
	if d := m.media.Duration(); d > 0 && m.media.CurrentTime() == d {
		m.media.SetCurrentTime(0)
	}
	if m.media.ReadyState() < host.HaveEnoughData {
		m.media.Reload()
	}
	m.media.Play(func(err error) {
		if err == nil {
			return
		}
		if stderrors.Is(err, host.ErrNotAllowed) {
			errors.Warn(&errors.Warning{
				Op:      "handle.Media.Play",
				Message: "the host blocked playback; it usually needs a user gesture first",
				Err:     err,
			})
			return
		}
		errors.Report(&errors.SketchError{
			Op:   "handle.Media.Play",
			Kind: errors.KindMedia,
			Node: m.node.Tag(),
			Err:  err,
		})
	})
}

// Stop pauses playback and resets the position to zero.
func (m *Media) Stop() {
	m.media.Pause()
	m.media.SetCurrentTime(0)
}

// Pause pauses playback without resetting the position.
func (m *Media) Pause() { m.media.Pause() }

// Loop sets the host loop flag and starts playback.
func (m *Media) Loop() {
	m.media.SetLoop(true)
	m.Play()
}

// NoLoop clears the host loop flag.
func (m *Media) NoLoop() { m.media.SetLoop(false) }

// SetAutoplay sets the host autoplay flag. Turning autoplay on schedules
// a one-shot failure watchdog: immediately when the element already has a
// full decode buffer, otherwise once it reports it is playable. The
// watchdog warns if no play event arrives within the configured window
// and is cancelled the moment playback actually starts.
func (m *Media) SetAutoplay(on bool) {
	was := m.autoplay
	m.autoplay = on
	m.media.SetAutoplay(on)

	if !on {
		m.stopWatchdog()
		m.watchdogPending = false
		return
	}
	if was {
		return
	}
	if m.media.ReadyState() == host.HaveEnoughData {
		m.armWatchdog()
	} else {
		m.watchdogPending = true
	}
}

func (m *Media) armWatchdog() {
	m.stopWatchdog()
	m.watchdog = time.AfterFunc(m.autoplayWindow, func() {
		if !host.Dispatch(m.autoplayFailed) {
			m.autoplayFailed()
		}
	})
}

func (m *Media) autoplayFailed() {
	if m.removed.Load() {
		return
	}
	errors.Warn(&errors.Warning{
		Op:      "handle.Media.SetAutoplay",
		Message: "autoplay was requested but no playback started; the host likely requires a user gesture",
	})
}

func (m *Media) stopWatchdog() {
	if m.watchdog != nil {
		m.watchdog.Stop()
		m.watchdog = nil
	}
}

// Volume returns the host volume.
func (m *Media) Volume() float64 { return m.media.Volume() }

// SetVolume sets the host volume. Values are passed through without
// clamping; range enforcement is the host's job.
func (m *Media) SetVolume(v float64) { m.media.SetVolume(v) }

// Speed returns the playback-rate multiplier, preferring a buffered
// preset that has not been applied yet.
func (m *Media) Speed() float64 {
	if !m.loadedMetadata && m.presetRate != nil {
		return *m.presetRate
	}
	return m.media.PlaybackRate()
}

// SetSpeed sets the playback-rate multiplier. Before metadata has loaded
// the value is buffered and applied once metadata arrives instead of
// being applied immediately.
func (m *Media) SetSpeed(rate float64) {
	if !m.loadedMetadata {
		r := rate
		m.presetRate = &r
		return
	}
	m.media.SetPlaybackRate(rate)
}

// Time returns the current position in seconds.
func (m *Media) Time() float64 { return m.media.CurrentTime() }

// SetTime seeks to the given position in seconds.
func (m *Media) SetTime(seconds float64) { m.media.SetCurrentTime(seconds) }

// Duration returns the total length in seconds.
func (m *Media) Duration() float64 { return m.media.Duration() }

// OnEnded replaces the end-of-media callback. It is invoked with the
// handle itself, only when the media reaches its natural end without
// looping.
func (m *Media) OnEnded(fn func(*Media)) {
	if fn == nil {
		fn = func(*Media) {}
	}
	m.onEnded = fn
}

// AddSource appends a playback source URL to the host node.
func (m *Media) AddSource(url string) { m.media.AddSource(url) }

// SetStream attaches a live capture stream to the host node, replacing
// URL sources.
func (m *Media) SetStream(s host.Stream) { m.media.SetStream(s) }

// Connect establishes the single audio output connection.
func (m *Media) Connect() error {
	if m.connected {
		return nil
	}
	if err := m.media.ConnectOutput(); err != nil {
		return err
	}
	m.connected = true
	return nil
}

// Disconnect tears down the audio output connection. Disconnecting
// without a prior connection is a caller bug and fails synchronously.
func (m *Media) Disconnect() error {
	if !m.connected {
		return host.ErrNotConnected
	}
	if err := m.media.DisconnectOutput(); err != nil {
		return err
	}
	m.connected = false
	return nil
}

package handle

import (
	"github.com/go-sketch/sketch/pkg/errors"
	"github.com/go-sketch/sketch/pkg/host"
)

// cue is one scheduled callback bound to a playback-time threshold.
type cue struct {
	id      int
	seconds float64
	fn      func(payload any)
	payload any
}

// AddCue schedules fn to run once the playback clock crosses seconds,
// passing payload. The returned id identifies the cue for RemoveCue and
// is never reused. The first cue arms the scheduler on the host's
// timeupdate notifications; until then no subscription exists.
func (m *Media) AddCue(seconds float64, fn func(payload any), payload ...any) int {
	m.nextCueID++
	c := cue{id: m.nextCueID, seconds: seconds, fn: fn}
	if len(payload) > 0 {
		c.payload = payload[0]
	}
	m.cues = append(m.cues, c)
	if m.cueUnhook == nil {
		m.cueUnhook = m.hook(host.EventTimeUpdate, m.onTimeUpdate)
	}
	return c.id
}

// RemoveCue removes the cue with the given id. Removing the last cue
// returns the scheduler to idle: the timeupdate subscription is dropped.
func (m *Media) RemoveCue(id int) {
	for i, c := range m.cues {
		if c.id == id {
			m.cues = append(m.cues[:i], m.cues[i+1:]...)
			break
		}
	}
	if len(m.cues) == 0 {
		m.disarmCues()
	}
}

// ClearCues removes every cue and drops the timeupdate subscription
// unconditionally.
func (m *Media) ClearCues() {
	m.cues = nil
	m.disarmCues()
}

// CueCount returns the number of scheduled cues.
func (m *Media) CueCount() int { return len(m.cues) }

func (m *Media) disarmCues() {
	if m.cueUnhook != nil {
		m.cueUnhook()
		m.cueUnhook = nil
	}
}

// onTimeUpdate fires every cue whose trigger time lies in the open-closed
// interval (previousTime, currentTime], in the order the cues were added,
// then advances the watermark regardless of whether anything fired. A
// backward jump (a seek, or a loop wrapping from end to start) fires
// nothing and silently resets the watermark; cues near zero of a loop
// need the interval to contain them on the next forward tick.
func (m *Media) onTimeUpdate(ev host.Event) {
	// The notification payload carries the position; fall back to asking
	// the node when the host omits it.
	current, ok := host.Float64(ev.Data["time"])
	if !ok {
		current = m.media.CurrentTime()
	}
	for _, c := range append([]cue(nil), m.cues...) {
		if c.seconds > m.previousTime && c.seconds <= current {
			fire(c)
		}
	}
	m.previousTime = current
}

func fire(c cue) {
	defer errors.Recover("handle.Media.cue")
	if c.fn != nil {
		c.fn(c.payload)
	}
}

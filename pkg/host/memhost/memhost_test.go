package memhost

import (
	"errors"
	"testing"

	"github.com/go-sketch/sketch/pkg/host"
)

func TestTreeLinks(t *testing.T) {
	h := New()
	parent := h.CreateNode("div")
	child := h.CreateNode("span")

	parent.Append(child)
	if child.Parent() != parent {
		t.Fatal("child parent not set")
	}
	if len(parent.Children()) != 1 {
		t.Fatalf("expected 1 child, got %d", len(parent.Children()))
	}

	child.Detach()
	if child.Parent() != nil {
		t.Error("child still linked after Detach")
	}
	if len(parent.Children()) != 0 {
		t.Error("parent still lists detached child")
	}

	// Detaching twice is a no-op.
	child.Detach()
}

func TestAppendReparents(t *testing.T) {
	h := New()
	a := h.CreateNode("div")
	b := h.CreateNode("div")
	child := h.CreateNode("span")

	a.Append(child)
	b.Append(child)

	if child.Parent() != b {
		t.Error("child should belong to second parent")
	}
	if len(a.Children()) != 0 {
		t.Error("first parent should no longer list the child")
	}
}

func TestMediaParentIdentity(t *testing.T) {
	h := New()
	m := h.CreateMedia("audio")
	src := h.CreateNode("source")

	m.Append(src)
	if src.Parent() != m {
		t.Error("source parent should be the media node itself")
	}
}

func TestBindComposesAndRemoves(t *testing.T) {
	h := New()
	n := h.CreateNode("div").(*Node)

	var got []int
	removeFirst := n.Bind("change", func(host.Event) { got = append(got, 1) })
	n.Bind("change", func(host.Event) { got = append(got, 2) })
	n.Emit("change", nil)

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("bindings should compose in bind order, got %v", got)
	}

	// A remover drops only its own subscription.
	removeFirst()
	got = nil
	n.Emit("change", nil)
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("after removal got %v, want only the second binding", got)
	}
	if !n.Bound("change") {
		t.Error("second binding should survive the first's removal")
	}

	remove := n.Bind("change", nil)
	remove()
	n.Emit("change", nil)
	if len(got) != 2 {
		t.Error("nil bind must be a no-op")
	}
}

func TestMediaClock(t *testing.T) {
	h := New()
	m := h.CreateMedia("video").(*MediaNode)

	var times []float64
	m.Bind(host.EventTimeUpdate, func(e host.Event) {
		times = append(times, m.CurrentTime())
	})

	m.LoadMetadata(10)
	if m.Duration() != 10 {
		t.Fatalf("duration = %v, want 10", m.Duration())
	}
	if m.ReadyState() != host.HaveMetadata {
		t.Fatalf("ready state = %v", m.ReadyState())
	}

	m.AdvanceTime(1.5)
	m.AdvanceTime(3.0)
	if len(times) != 2 || times[1] != 3.0 {
		t.Fatalf("timeupdate sequence = %v", times)
	}
}

func TestMediaFinishPlayback(t *testing.T) {
	h := New()
	m := h.CreateMedia("audio").(*MediaNode)
	m.LoadMetadata(4)

	ended := false
	m.Bind(host.EventEnded, func(host.Event) { ended = true })

	m.Play(nil)
	m.FinishPlayback()
	if !ended {
		t.Error("expected ended notification")
	}
	if m.Playing() {
		t.Error("playback should have stopped")
	}

	// Looping wraps instead of ending.
	ended = false
	m.SetLoop(true)
	m.Play(nil)
	m.FinishPlayback()
	if ended {
		t.Error("looping media should not emit ended")
	}
	if m.CurrentTime() != 0 {
		t.Errorf("loop should wrap to 0, got %v", m.CurrentTime())
	}
}

func TestPlayPolicy(t *testing.T) {
	h := New()
	h.AutoplayAllowed = false
	m := h.CreateMedia("audio").(*MediaNode)

	var got error
	m.Play(func(err error) { got = err })
	if !errors.Is(got, host.ErrNotAllowed) {
		t.Fatalf("expected ErrNotAllowed, got %v", got)
	}
	if m.Playing() {
		t.Error("blocked play should not start playback")
	}
}

func TestOutputConnection(t *testing.T) {
	h := New()
	m := h.CreateMedia("audio").(*MediaNode)

	if err := m.DisconnectOutput(); !errors.Is(err, host.ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
	if err := m.ConnectOutput(); err != nil {
		t.Fatal(err)
	}
	if err := m.DisconnectOutput(); err != nil {
		t.Fatal(err)
	}
}

func TestCaptureResolution(t *testing.T) {
	h := New()

	var stream host.Stream
	var captureErr error
	_, err := h.Capture(host.CaptureOptions{Audio: true, Video: true}, func(s host.Stream, e error) {
		stream, captureErr = s, e
	})
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if captureErr != nil {
		t.Fatalf("deliver error: %v", captureErr)
	}
	if len(stream.Tracks()) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(stream.Tracks()))
	}
}

func TestCaptureUnsupported(t *testing.T) {
	h := New()
	h.CaptureSupported = false
	_, err := h.Capture(host.CaptureOptions{Audio: true}, nil)
	if !errors.Is(err, host.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestCaptureDeferredAndCanceled(t *testing.T) {
	h := New()
	h.DeferCapture = true

	delivered := false
	cancel, err := h.Capture(host.CaptureOptions{Video: true}, func(host.Stream, error) {
		delivered = true
	})
	if err != nil {
		t.Fatal(err)
	}

	cancel()
	h.ResolveCapture()
	if delivered {
		t.Error("canceled capture must not deliver")
	}
}

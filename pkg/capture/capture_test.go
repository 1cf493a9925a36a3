package capture

import (
	stderrors "errors"
	"sync"
	"testing"

	sketcherrors "github.com/go-sketch/sketch/pkg/errors"
	"github.com/go-sketch/sketch/pkg/host"
	"github.com/go-sketch/sketch/pkg/host/memhost"
)

type recordingHandler struct {
	mu       sync.Mutex
	errs     []*sketcherrors.SketchError
	warnings []*sketcherrors.Warning
}

func (h *recordingHandler) HandleError(e *sketcherrors.SketchError) {
	h.mu.Lock()
	h.errs = append(h.errs, e)
	h.mu.Unlock()
}

func (h *recordingHandler) HandleWarning(w *sketcherrors.Warning) {
	h.mu.Lock()
	h.warnings = append(h.warnings, w)
	h.mu.Unlock()
}

func (h *recordingHandler) HandlePanic(*sketcherrors.PanicError) {}

func setupHandler(t *testing.T) *recordingHandler {
	t.Helper()
	rec := &recordingHandler{}
	sketcherrors.SetHandler(rec)
	t.Cleanup(func() { sketcherrors.SetHandler(nil) })
	return rec
}

func TestAcquireDeliversStream(t *testing.T) {
	h := memhost.New()

	var gotStream host.Stream
	var gotErr error
	delivered := 0
	_, err := Acquire(h, host.CaptureOptions{Audio: true, Video: true}, func(s host.Stream, err error) {
		delivered++
		gotStream, gotErr = s, err
	})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	if delivered != 1 {
		t.Fatalf("delivered %d times, want 1", delivered)
	}
	if gotErr != nil {
		t.Fatalf("delivered error: %v", gotErr)
	}
	if got := len(gotStream.Tracks()); got != 2 {
		t.Fatalf("tracks = %d, want audio + video", got)
	}
}

func TestAcquireUnsupportedFailsFast(t *testing.T) {
	h := memhost.New()
	h.CaptureSupported = false

	_, err := Acquire(h, host.CaptureOptions{Video: true}, func(host.Stream, error) {
		t.Error("deliver invoked on unsupported host")
	})
	if err == nil {
		t.Fatal("Acquire succeeded on a host without capture")
	}

	var se *sketcherrors.SketchError
	if !stderrors.As(err, &se) || se.Kind != sketcherrors.KindUnsupported {
		t.Fatalf("error = %v, want KindUnsupported", err)
	}
}

func TestAcquireDenialWarns(t *testing.T) {
	rec := setupHandler(t)

	h := memhost.New()
	h.CaptureErr = host.ErrNotAllowed

	var gotErr error
	_, err := Acquire(h, host.CaptureOptions{Audio: true}, func(_ host.Stream, err error) {
		gotErr = err
	})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	if !stderrors.Is(gotErr, host.ErrNotAllowed) {
		t.Fatalf("delivered error = %v, want ErrNotAllowed", gotErr)
	}
	if len(rec.warnings) != 1 {
		t.Fatalf("warnings = %d, want 1", len(rec.warnings))
	}
	if len(rec.errs) != 0 {
		t.Fatalf("errors = %d, want 0", len(rec.errs))
	}
}

func TestAcquireUnexpectedFailureReports(t *testing.T) {
	rec := setupHandler(t)

	h := memhost.New()
	h.CaptureErr = stderrors.New("device wedged")

	_, err := Acquire(h, host.CaptureOptions{Video: true}, nil)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	if len(rec.errs) != 1 || rec.errs[0].Kind != sketcherrors.KindCapture {
		t.Fatalf("errors = %+v, want one KindCapture", rec.errs)
	}
}

func TestCancelAbandonsPendingRequest(t *testing.T) {
	h := memhost.New()
	h.DeferCapture = true

	cancel, err := Acquire(h, host.CaptureOptions{Video: true}, func(host.Stream, error) {
		t.Error("deliver invoked after cancel")
	})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	cancel()
	h.ResolveCapture()
}

// Package capture acquires live device streams from the host as
// cancellable asynchronous tasks. A request resolves exactly once with
// either a stream or a classified failure, delivered on the cooperative
// timeline; failures are logged, never thrown, so a denied device request
// cannot crash the timeline.
package capture

import (
	stderrors "errors"

	"github.com/go-sketch/sketch/pkg/errors"
	"github.com/go-sketch/sketch/pkg/host"
)

// Acquire asks the host for a live device stream. deliver is invoked
// exactly once: with the stream, or with the rejection reason after it
// has been classified and logged. The returned cancel function abandons
// the acquisition; after cancel, deliver is never invoked.
//
// A host without device capture fails fast: Acquire returns a
// KindUnsupported error synchronously and deliver is never invoked.
func Acquire(h host.Host, opts host.CaptureOptions, deliver func(host.Stream, error)) (cancel func(), err error) {
	if !h.Supports(host.FeatureCapture) {
		return nil, &errors.SketchError{
			Op:   "capture.Acquire",
			Kind: errors.KindUnsupported,
			Err:  host.ErrUnsupported,
		}
	}

	cancel, err = h.Capture(opts, func(s host.Stream, captureErr error) {
		run := func() {
			classify(captureErr)
			if deliver != nil {
				deliver(s, captureErr)
			}
		}
		if !host.Dispatch(run) {
			run()
		}
	})
	if err != nil {
		return nil, &errors.SketchError{
			Op:   "capture.Acquire",
			Kind: errors.KindCapture,
			Err:  err,
		}
	}
	return cancel, nil
}

func classify(err error) {
	switch {
	case err == nil:
	case stderrors.Is(err, host.ErrNotAllowed):
		errors.Warn(&errors.Warning{
			Op:      "capture.Acquire",
			Message: "the device capture request was denied",
			Err:     err,
		})
	case stderrors.Is(err, host.ErrCanceled):
		// Abandoned by the caller; nothing to report.
	default:
		errors.Report(&errors.SketchError{
			Op:   "capture.Acquire",
			Kind: errors.KindCapture,
			Err:  err,
		})
	}
}

// Package errors provides structured error handling for the sketch runtime.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindUnsupported indicates the host cannot provide a requested capability.
	KindUnsupported
	// KindMedia indicates an unexpected media playback failure.
	KindMedia
	// KindCapture indicates a device capture failure.
	KindCapture
	// KindParsing indicates an event or payload parsing failure.
	KindParsing
	// KindTeardown indicates a handle removal or teardown failure.
	KindTeardown
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported"
	case KindMedia:
		return "media"
	case KindCapture:
		return "capture"
	case KindParsing:
		return "parsing"
	case KindTeardown:
		return "teardown"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// SketchError represents a structured error in the sketch runtime.
type SketchError struct {
	// Op is the operation that failed (e.g., "handle.Media.Play").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Node is the host node tag involved, if applicable.
	Node string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SketchError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("%s [%s] node=%s: %v", e.Op, e.Kind, e.Node, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SketchError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "handle.cueScheduler.fire").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Warning represents a recoverable condition surfaced to the user rather
// than treated as a failure: autoplay blocked by host policy, a capture
// request the user denied, a host without file APIs. Warnings never unwind
// the caller's control flow.
type Warning struct {
	// Op is the operation that produced the warning.
	Op string
	// Message is the human-readable advice.
	Message string
	// Err is the underlying condition, if any.
	Err error
}

func (w *Warning) Error() string {
	if w.Err != nil {
		return fmt.Sprintf("%s: %s: %v", w.Op, w.Message, w.Err)
	}
	return fmt.Sprintf("%s: %s", w.Op, w.Message)
}

func (w *Warning) Unwrap() error {
	return w.Err
}

// ErrorHandler receives errors and warnings reported by the sketch runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SketchError)
	// HandleWarning is called for recoverable, user-facing conditions.
	HandleWarning(w *Warning)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

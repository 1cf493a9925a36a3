package errors

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogHandler is an ErrorHandler that logs through a zap logger.
type LogHandler struct {
	// Verbose enables debug-level output including stack traces.
	Verbose bool

	// Logger overrides the handler's logger. When nil, a development
	// logger writing to stderr is built on first use.
	Logger *zap.Logger

	once sync.Once
}

func (h *LogHandler) log() *zap.Logger {
	h.once.Do(func() {
		if h.Logger != nil {
			return
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.DisableCaller = true
		cfg.DisableStacktrace = true
		cfg.OutputPaths = []string{"stderr"}
		if !h.Verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
		logger, err := cfg.Build()
		if err != nil {
			logger = zap.NewNop()
		}
		h.Logger = logger
	})
	return h.Logger
}

// HandleError logs a SketchError.
func (h *LogHandler) HandleError(err *SketchError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Node != "" {
		fields = append(fields, zap.String("node", err.Node))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.log().Error(err.Op, fields...)
}

// HandleWarning logs a Warning at warn level.
func (h *LogHandler) HandleWarning(w *Warning) {
	if w == nil {
		return
	}
	fields := []zap.Field{zap.String("advice", w.Message)}
	if w.Err != nil {
		fields = append(fields, zap.Error(w.Err))
	}
	h.log().Warn(w.Op, fields...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{zap.Any("value", err.Value)}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.log().Error("panic in "+err.Op, fields...)
}

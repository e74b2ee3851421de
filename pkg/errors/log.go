package errors

import (
	"log"
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// LogHandler is an ErrorHandler that writes through a logr.Logger.
type LogHandler struct {
	// Logger receives the records. The zero value logs to stderr.
	Logger logr.Logger
	// Verbose adds stack traces to the records.
	Verbose bool

	once     sync.Once
	fallback logr.Logger
}

// newStderrLogger builds the logger used when LogHandler.Logger is unset.
var newStderrLogger = func() logr.Logger {
	return stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("viewcore")
}

func (h *LogHandler) logger() logr.Logger {
	if h.Logger.GetSink() != nil {
		return h.Logger
	}
	h.once.Do(func() { h.fallback = newStderrLogger() })
	return h.fallback
}

// HandleError logs a ViewCoreError.
func (h *LogHandler) HandleError(err *ViewCoreError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op, "kind", err.Kind.String()}
	if err.Channel != "" {
		kv = append(kv, "channel", err.Channel)
	}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	h.logger().Error(err.Err, "view core error", kv...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	kv := []any{"value", err.Value}
	if err.Op != "" {
		kv = append(kv, "op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	h.logger().Error(nil, "recovered panic", kv...)
}

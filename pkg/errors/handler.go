package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

// Handler returns the current error handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *ViewCoreError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportProgramming reports a violated invariant that the caller recovers
// from instead of panicking, such as a failed re-parent.
func ReportProgramming(op string, err error) {
	Report(&ViewCoreError{
		Op:         op,
		Kind:       KindProgramming,
		Err:        err,
		StackTrace: CaptureStack(),
	})
}

// ReportPanic sends a panic error to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic of the surrounding function.
// Usage: defer errors.Recover("operation.name")
//
// Programming errors are reported and then re-raised; other panics are
// swallowed.
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
		if _, ok := AsProgrammingError(r); ok {
			panic(r)
		}
	}
}

// RecoverWithCallback is like Recover but swallows every panic and hands
// the value to callback after reporting it.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// maxStackDepth bounds the frames CaptureStack records.
const maxStackDepth = 32

// CaptureStack returns the caller's call stack, one "function\n\tfile:line"
// entry per frame. Runtime frames are left out.
func CaptureStack() string {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}

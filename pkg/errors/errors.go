// Package errors provides structured error handling for view cores and
// their native bindings.
//
// Two categories exist. Programming errors are invariant violations a
// caller could have avoided (a core whose parent core is missing, a child
// attached to a core that cannot hold children). They are raised with
// panic(*ProgrammingError) and never retried. Platform errors come from a
// native bridge and are reported through the global ErrorHandler.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindProgramming indicates a violated core-tree invariant.
	KindProgramming
	// KindPlatform indicates a native bridge or toolkit error.
	KindPlatform
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates an invalid configuration or scene file.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindProgramming:
		return "programming"
	case KindPlatform:
		return "platform"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ViewCoreError is a structured, reportable error.
type ViewCoreError struct {
	// Op is the operation that failed (e.g., "core.TryChangeParentView").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Channel is the bridge channel name, if applicable.
	Channel string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ViewCoreError) Error() string {
	if e.Channel != "" {
		return fmt.Sprintf("%s [%s] channel=%s: %v", e.Op, e.Kind, e.Channel, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ViewCoreError) Unwrap() error {
	return e.Err
}

// ProgrammingError is an invariant violation detected at runtime.
type ProgrammingError struct {
	// Op is the operation that detected the violation.
	Op string
	// Err describes the violation; usually a sentinel.
	Err error
	// StackTrace contains the call stack at the point of detection.
	StackTrace string
}

// NewProgrammingError returns a ProgrammingError with the current stack.
func NewProgrammingError(op string, err error) *ProgrammingError {
	return &ProgrammingError{Op: op, Err: err, StackTrace: CaptureStack()}
}

func (e *ProgrammingError) Error() string {
	return fmt.Sprintf("programming error in %s: %v", e.Op, e.Err)
}

func (e *ProgrammingError) Unwrap() error {
	return e.Err
}

// AsProgrammingError reports whether v, typically a recovered panic value,
// is or wraps a *ProgrammingError.
func AsProgrammingError(v any) (*ProgrammingError, bool) {
	err, ok := v.(error)
	if !ok {
		return nil, false
	}
	var pe *ProgrammingError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
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

// ErrorHandler receives errors reported by cores and bindings.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *ViewCoreError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

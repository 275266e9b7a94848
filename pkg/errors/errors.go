// Package errors provides structured error and warning reporting for drift
// platform handlers.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error or warning.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindPlatform indicates a platform channel or native bridge error.
	KindPlatform
	// KindParsing indicates a native event parsing failure.
	KindParsing
	// KindConfig indicates an invalid gestures.yaml or handler configuration.
	KindConfig
	// KindGesture indicates a gesture recognizer that cannot be honored.
	KindGesture
	// KindDrop indicates a failure while delivering a drop.
	KindDrop
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindParsing:
		return "parsing"
	case KindConfig:
		return "config"
	case KindGesture:
		return "gesture"
	case KindDrop:
		return "drop"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// HandlerError represents a structured error raised by a platform handler.
type HandlerError struct {
	// Op is the operation that failed (e.g., "platform.ChannelView.handleEvent").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Channel is the platform channel name, if applicable.
	Channel string
	// ViewID identifies the native view, if applicable.
	ViewID int64
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *HandlerError) Error() string {
	if e.Channel != "" {
		return fmt.Sprintf("%s [%s] channel=%s: %v", e.Op, e.Kind, e.Channel, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Warning is a non-fatal condition. The operation continued, usually with a
// feature disabled.
type Warning struct {
	// Op is the operation that emitted the warning.
	Op string
	// Kind categorizes the warning.
	Kind ErrorKind
	// Message describes the condition.
	Message string
	// Err is the underlying error, if any.
	Err error
	// Timestamp is when the warning was raised.
	Timestamp time.Time
}

func (w *Warning) Error() string {
	if w.Err != nil {
		return fmt.Sprintf("%s [%s]: %s: %v", w.Op, w.Kind, w.Message, w.Err)
	}
	return fmt.Sprintf("%s [%s]: %s", w.Op, w.Kind, w.Message)
}

func (w *Warning) Unwrap() error {
	return w.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "dispatch.deliverDrop").
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

// ParseError represents a failure to parse native event data.
type ParseError struct {
	// Channel is the platform channel that received the event.
	Channel string
	// DataType is the expected type name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from channel %s: got %T", e.DataType, e.Channel, e.Got)
}

// ErrorHandler receives errors and warnings reported by platform handlers.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *HandlerError)
	// HandleWarning is called for non-fatal conditions.
	HandleWarning(w *Warning)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

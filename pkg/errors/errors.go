// Package errors provides structured error handling for the material
// widget package. Widget event handling never fails; these types cover the
// fallible edges around it, such as loading and watching theme files.
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
	// KindConfig indicates an invalid theme configuration value.
	KindConfig
	// KindParsing indicates a theme file that could not be decoded.
	KindParsing
	// KindVersion indicates an unsupported theme schema version.
	KindVersion
	// KindIO indicates a file system failure.
	KindIO
	// KindWatch indicates a theme watcher failure.
	KindWatch
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindVersion:
		return "version"
	case KindIO:
		return "io"
	case KindWatch:
		return "watch"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// MaterialError represents a structured error.
type MaterialError struct {
	// Op is the operation that failed (e.g., "theme.LoadFile").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Path is the file involved, if any.
	Path string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MaterialError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MaterialError) Unwrap() error {
	return e.Err
}

// New returns a MaterialError for op and kind wrapping err.
func New(op string, kind ErrorKind, path string, err error) *MaterialError {
	return &MaterialError{Op: op, Kind: kind, Path: path, Err: err}
}

// KindOf returns the kind of the first MaterialError in err's chain, or
// KindUnknown.
func KindOf(err error) ErrorKind {
	var me *MaterialError
	if As(err, &me) {
		return me.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "host.dispatch").
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

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *MaterialError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Package errors provides structured error handling for the tint library.
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
	// KindValidation indicates a channel value that failed validation.
	KindValidation
	// KindParse indicates a color string that could not be parsed.
	KindParse
	// KindPalette indicates a palette file error.
	KindPalette
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindParse:
		return "parse"
	case KindPalette:
		return "palette"
	default:
		return "unknown"
	}
}

// TintError represents a structured error in the tint library.
type TintError struct {
	// Op is the operation that failed (e.g., "palette.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if applicable.
	Path string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *TintError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TintError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the tint library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *TintError)
}

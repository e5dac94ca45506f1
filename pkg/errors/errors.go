// Package errors provides structured error types for the cityatlas
// application layer.
//
// Library packages (avltree, bstree, graph) signal conditions with plain
// sentinel errors; this package adds machine-readable codes on top for the
// CLI boundary, where a user-facing message and a category are both needed.
//
// Usage:
//
//	err := errors.New(errors.ErrCodeInvalidKey, "city ID must be an integer, got %q", raw)
//	if errors.Is(err, errors.ErrCodeInvalidKey) {
//	    // handle malformed input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeUnknownVertex, cause, "district %q", id)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation (boundary layer, before a key reaches the trees)
	ErrCodeInvalidKey   Code = "INVALID_KEY"
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// Lookup failures
	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodeUnknownVertex Code = "UNKNOWN_VERTEX"

	// Contract violations
	ErrCodeEmptyTree Code = "EMPTY_TREE"

	// Unexpected internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err carries the given error code anywhere in its chain.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns ErrCodeInternal for errors that are not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

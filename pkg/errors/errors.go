// Package errors provides structured error types for fcactx.
//
// Every failure surfaced by the format registry, the codecs and the formal
// context model carries a machine-readable [Code]. Callers branch on the code
// rather than on message text:
//
//	c, err := io.ReadContext(r)
//	if errors.Is(err, errors.ErrCodeUndeterminedFormat) {
//	    // No registered format recognized the input
//	}
//
// # Error Codes
//
//   - UNKNOWN_FORMAT: a write named a format with no registered codec
//   - UNDETERMINED_FORMAT: no detection predicate recognized the input
//   - MALFORMED_INPUT: a format-specific structural violation
//   - AMBIGUOUS_DOCUMENT: a Conexp XML document with zero or several contexts
//   - INVALID_CONTEXT: a context invariant was violated, or a format cannot
//     represent the given context
//   - INVALID_ARGUMENT: a caller passed flags or options that do not make sense
//
// Errors are values; nothing in this module panics on bad input.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Dispatch errors
	ErrCodeUnknownFormat      Code = "UNKNOWN_FORMAT"
	ErrCodeUndeterminedFormat Code = "UNDETERMINED_FORMAT"
	ErrCodeInvalidFormat      Code = "INVALID_FORMAT"

	// Decoding errors
	ErrCodeMalformedInput    Code = "MALFORMED_INPUT"
	ErrCodeAmbiguousDocument Code = "AMBIGUOUS_DOCUMENT"

	// Model errors
	ErrCodeInvalidContext Code = "INVALID_CONTEXT"

	// Usage errors
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"

	// I/O errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeIO           Code = "IO_ERROR"

	// Internal errors
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

// Is reports whether err has the given error code.
// Only the outermost *Error in the chain is consulted, so a wrapping error
// decides the classification.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// Malformed reports a structural violation found while decoding format.
// A positive line number is included in the message.
func Malformed(format string, line int, msg string, args ...any) *Error {
	text := fmt.Sprintf(msg, args...)
	if line > 0 {
		return New(ErrCodeMalformedInput, "%s: line %d: %s", format, line, text)
	}
	return New(ErrCodeMalformedInput, "%s: %s", format, text)
}

// Package errors provides structured error types for the kinship application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every rejected mutation maps to exactly one code, so callers can surface
// exactly one message per rejected operation:
//   - DUPLICATE_*: the name or relation already exists
//   - UNKNOWN_*: a referenced individual, relation, or session is absent
//   - INVALID_NAME / SELF_RELATION / MULTIPLE_PARENTS: invariant violations
//   - MALFORMED_INPUT: an import file is structurally unparsable
//   - CYCLE_REJECTED: a single relation add would close an ancestry cycle
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidName, "invalid name: %q", name)
//	if errors.Is(err, errors.ErrCodeInvalidName) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMalformedInput, origErr, "parse %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Mutation rejections
	ErrCodeDuplicateName     Code = "DUPLICATE_NAME"
	ErrCodeDuplicateRelation Code = "DUPLICATE_RELATION"
	ErrCodeUnknownIndividual Code = "UNKNOWN_INDIVIDUAL"
	ErrCodeUnknownRelation   Code = "UNKNOWN_RELATION"
	ErrCodeSelfRelation      Code = "SELF_RELATION"
	ErrCodeMultipleParents   Code = "MULTIPLE_PARENTS"
	ErrCodeInvalidName       Code = "INVALID_NAME"
	ErrCodeCycleRejected     Code = "CYCLE_REJECTED"

	// Import failures
	ErrCodeMalformedInput Code = "MALFORMED_INPUT"

	// Resource not found errors
	ErrCodeSessionNotFound Code = "SESSION_NOT_FOUND"

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
// It unwraps the error chain looking for an *Error with a matching code.
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
		return e.Message
	}
	return err.Error()
}

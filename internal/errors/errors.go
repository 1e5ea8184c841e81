// Package errors provides coded domain errors for the catalog exporter.
//
// Usage:
//
//	// In the categorizer - return typed errors
//	if len(tokens) == 0 {
//	    return errors.InvalidInputf("title of book %d has no words", id)
//	}
//
//	// At the command boundary - check with errors.Is
//	if errors.Is(err, errors.ErrInvalidInput) {
//	    log.Error("bad catalog row", "error", err)
//	}
//
//	// Or resolve the process exit status
//	os.Exit(errors.ExitCode(err))
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is = errors.Is
	As = errors.As
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the exporter.
const (
	CodeNotFound     Code = "NOT_FOUND"
	CodeValidation   Code = "VALIDATION"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeConfig       Code = "CONFIG"
	CodeInternal     Code = "INTERNAL"
)

// Process exit statuses, following sysexits(3).
const (
	exitFailure  = 1
	exitDataErr  = 65
	exitNoInput  = 66
	exitConfig   = 78
	exitCanceled = 130
)

// ExitCode returns the process exit status for an error code.
func (c Code) ExitCode() int {
	switch c {
	case CodeValidation, CodeInvalidInput:
		return exitDataErr
	case CodeNotFound:
		return exitNoInput
	case CodeConfig:
		return exitConfig
	default:
		return exitFailure
	}
}

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// ExitCode returns the process exit status for this error.
func (e *Error) ExitCode() int {
	return e.Code.ExitCode()
}

// WithDetails returns a new error with additional details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		cause:   e.cause,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrNotFound     = &Error{Code: CodeNotFound, Message: "not found"}
	ErrValidation   = &Error{Code: CodeValidation, Message: "validation error"}
	ErrInvalidInput = &Error{Code: CodeInvalidInput, Message: "invalid input"}
	ErrConfig       = &Error{Code: CodeConfig, Message: "invalid configuration"}
	ErrInternal     = &Error{Code: CodeInternal, Message: "internal error"}
)

// ExitCode resolves the exit status for any error chain.
// A nil error exits 0 and a canceled run exits 130.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.ExitCode()
	}
	if errors.Is(err, context.Canceled) {
		return exitCanceled
	}
	return exitFailure
}

// NotFoundf creates a not found error with formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// ValidationWithDetails creates a validation error with details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// InvalidInput creates an invalid input error.
func InvalidInput(msg string) *Error {
	return &Error{Code: CodeInvalidInput, Message: msg}
}

// InvalidInputf creates an invalid input error with formatted message.
func InvalidInputf(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// Config creates a configuration error.
func Config(msg string) *Error {
	return &Error{Code: CodeConfig, Message: msg}
}

// Configf creates a configuration error with formatted message.
func Configf(format string, args ...any) *Error {
	return &Error{Code: CodeConfig, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}

// Wrapf wraps an error with a code and formatted message.
func Wrapf(err error, code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: err}
}

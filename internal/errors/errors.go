package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig = "CONFIG"
	ErrIface  = "IFACE"
	ErrTerm   = "TERM"
	ErrSample = "SAMPLE"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrSample code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrSample,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewInterfaceNotFound creates the failure for a pattern that matched nothing.
// The suggestion enumerates every available interface so the user can retry.
func NewInterfaceNotFound(pattern string, available []string) *Error {
	return &Error{
		Code:       ErrIface,
		Message:    fmt.Sprintf("No interface matches '%s'", pattern),
		Suggestion: "Available interfaces: " + strings.Join(available, ", ") + "\nUse 'bwmon --list' to see current counters.",
	}
}

// NewNoInterfaces creates the failure for an empty interface enumeration.
func NewNoInterfaces() *Error {
	return &Error{
		Code:       ErrIface,
		Message:    "No network interfaces found",
		Suggestion: "Check that the system exposes network counters and try again.",
	}
}

// Error implements the error interface with formatted multi-line output.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	// Include cause if present (why it failed)
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	// Include suggestion if present (how to fix)
	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var bwErr *Error
	if errors.As(err, &bwErr) {
		return bwErr.Code == code
	}
	return false
}

// Package core defines shared error types for the element-crawler client.
package core

import (
	"fmt"
)

// ErrorCategory classifies a ProtocolError for coarse-grained handling.
type ErrorCategory string

const (
	ErrCategoryConnection ErrorCategory = "connection"
	ErrCategoryProtocol   ErrorCategory = "protocol"
	ErrCategoryParse      ErrorCategory = "parse"
	ErrCategoryUsage      ErrorCategory = "usage"
)

// ProtocolError represents a structured error with category and details.
// The agent client never panics and never lets a raw transport fault escape;
// every failure is surfaced as one of these.
type ProtocolError struct {
	Category ErrorCategory
	Code     string // Machine-readable code: not_connected, read_timeout, etc.
	Message  string // Human-readable message
	Cause    error  // Underlying error
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ProtocolError) Unwrap() error {
	return e.Cause
}

// Is matches on category and code so callers can branch with errors.Is
// against the predefined values regardless of attached cause.
func (e *ProtocolError) Is(target error) bool {
	t, ok := target.(*ProtocolError)
	if !ok {
		return false
	}
	return e.Category == t.Category && e.Code == t.Code
}

// WithCause returns a copy of the error with the given cause.
func (e *ProtocolError) WithCause(cause error) *ProtocolError {
	return &ProtocolError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Cause:    cause,
	}
}

// WithMessage returns a copy of the error with a custom message.
func (e *ProtocolError) WithMessage(msg string) *ProtocolError {
	return &ProtocolError{
		Category: e.Category,
		Code:     e.Code,
		Message:  msg,
		Cause:    e.Cause,
	}
}

// Predefined errors covering the client failure taxonomy.
var (
	// Session misuse
	ErrNotConnected = &ProtocolError{
		Category: ErrCategoryUsage,
		Code:     "not_connected",
		Message:  "not connected to agent",
	}
	ErrAlreadyConnected = &ProtocolError{
		Category: ErrCategoryUsage,
		Code:     "already_connected",
		Message:  "session already open; disconnect first",
	}

	// Connection establishment
	ErrConnectFailed = &ProtocolError{
		Category: ErrCategoryConnection,
		Code:     "connect_failed",
		Message:  "could not connect to agent",
	}

	// Mid-command transport failures
	ErrWriteFailed = &ProtocolError{
		Category: ErrCategoryConnection,
		Code:     "write_failed",
		Message:  "failed to send command",
	}
	ErrReadFailed = &ProtocolError{
		Category: ErrCategoryConnection,
		Code:     "read_failed",
		Message:  "failed to read response",
	}
	ErrReadTimeout = &ProtocolError{
		Category: ErrCategoryConnection,
		Code:     "read_timeout",
		Message:  "timed out waiting for response",
	}

	// Protocol-level failures
	ErrBadResponse = &ProtocolError{
		Category: ErrCategoryProtocol,
		Code:     "bad_response",
		Message:  "unexpected response from agent",
	}
	ErrBadSnapshot = &ProtocolError{
		Category: ErrCategoryParse,
		Code:     "bad_snapshot",
		Message:  "could not parse element snapshot",
	}
)

// NewProtocolError creates a new ProtocolError with the given parameters.
func NewProtocolError(category ErrorCategory, code, message string) *ProtocolError {
	return &ProtocolError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}

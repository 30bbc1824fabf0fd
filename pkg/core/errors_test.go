package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestProtocolError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ProtocolError
		expected string
	}{
		{
			name:     "without cause",
			err:      ErrNotConnected,
			expected: "not connected to agent",
		},
		{
			name:     "with cause",
			err:      ErrConnectFailed.WithCause(fmt.Errorf("connection refused")),
			expected: "could not connect to agent: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestProtocolError_Is(t *testing.T) {
	wrapped := ErrReadTimeout.WithCause(fmt.Errorf("i/o timeout"))
	if !errors.Is(wrapped, ErrReadTimeout) {
		t.Error("expected wrapped error to match ErrReadTimeout")
	}
	if errors.Is(wrapped, ErrNotConnected) {
		t.Error("expected wrapped error not to match ErrNotConnected")
	}
}

func TestProtocolError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("broken pipe")
	err := ErrWriteFailed.WithCause(cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestProtocolError_WithMessage(t *testing.T) {
	err := ErrBadResponse.WithMessage("agent said NO")
	if err.Error() != "agent said NO" {
		t.Errorf("got %q", err.Error())
	}
	// Original must not be mutated
	if ErrBadResponse.Message != "unexpected response from agent" {
		t.Error("WithMessage mutated the predefined error")
	}
	if err.Code != ErrBadResponse.Code {
		t.Errorf("code changed: %s", err.Code)
	}
}

func TestNewProtocolError(t *testing.T) {
	err := NewProtocolError(ErrCategoryParse, "truncated", "response truncated")
	if err.Category != ErrCategoryParse {
		t.Errorf("got category %s", err.Category)
	}
	if err.Code != "truncated" {
		t.Errorf("got code %s", err.Code)
	}
}

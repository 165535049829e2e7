package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestDeckError_Error(t *testing.T) {
	err := &DeckError{
		Code:    ErrBadStatus,
		Status:  500,
		Message: "/api/next returned status 500",
	}

	expected := "BAD_STATUS: /api/next returned status 500"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestDeckError_ErrorWithCause(t *testing.T) {
	err := NewTransport("/api/next", stderrors.New("connection refused"))

	expected := "TRANSPORT: request /api/next failed: connection refused"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewBadStatus(t *testing.T) {
	err := NewBadStatus("/api/meta/42", 404)

	if err.Code != ErrBadStatus {
		t.Errorf("Code = %q, want %q", err.Code, ErrBadStatus)
	}
	if err.Status != 404 {
		t.Errorf("Status = %d, want 404", err.Status)
	}
	if err.Details["endpoint"] != "/api/meta/42" {
		t.Errorf("Details[endpoint] = %v, want %q", err.Details["endpoint"], "/api/meta/42")
	}
}

func TestNewInvalidConfig(t *testing.T) {
	err := NewInvalidConfig("gesture.damping", -1.0)

	if err.Code != ErrInvalidConfig {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidConfig)
	}
	if err.Details["key"] != "gesture.damping" {
		t.Errorf("Details[key] = %v, want %q", err.Details["key"], "gesture.damping")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewStorage("append decision", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("load next: %w", NewMalformed("/api/next", "missing id", nil))

	if !Is(wrapped, ErrMalformed) {
		t.Error("Is(wrapped, ErrMalformed) = false, want true")
	}
	if Is(wrapped, ErrTransport) {
		t.Error("Is(wrapped, ErrTransport) = true, want false")
	}
	if Is(stderrors.New("plain"), ErrMalformed) {
		t.Error("Is(plain error) = true, want false")
	}
	if Is(nil, ErrMalformed) {
		t.Error("Is(nil) = true, want false")
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a swipedeck error code.
type ErrorCode string

const (
	ErrTransport     ErrorCode = "TRANSPORT"      // network failure before a response arrived
	ErrBadStatus     ErrorCode = "BAD_STATUS"     // non-2xx response
	ErrMalformed     ErrorCode = "MALFORMED"      // response body is not a record
	ErrInvalidConfig ErrorCode = "INVALID_CONFIG" // rejected configuration value
	ErrStorage       ErrorCode = "STORAGE"        // journal database failure
)

// DeckError is a structured error with code, optional HTTP status, and details.
type DeckError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
	Err     error
}

// Error implements the error interface.
func (e *DeckError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DeckError) Unwrap() error { return e.Err }

// NewTransport wraps a failure that happened before any response was read.
func NewTransport(endpoint string, err error) *DeckError {
	return &DeckError{
		Code:    ErrTransport,
		Message: fmt.Sprintf("request %s failed", endpoint),
		Details: map[string]any{"endpoint": endpoint},
		Err:     err,
	}
}

// NewBadStatus reports a non-2xx response.
func NewBadStatus(endpoint string, status int) *DeckError {
	return &DeckError{
		Code:    ErrBadStatus,
		Status:  status,
		Message: fmt.Sprintf("%s returned status %d", endpoint, status),
		Details: map[string]any{"endpoint": endpoint},
	}
}

// NewMalformed reports a response body that does not describe a record.
func NewMalformed(endpoint, reason string, err error) *DeckError {
	return &DeckError{
		Code:    ErrMalformed,
		Message: fmt.Sprintf("%s: %s", endpoint, reason),
		Details: map[string]any{"endpoint": endpoint},
		Err:     err,
	}
}

// NewInvalidConfig reports a configuration key holding an unusable value.
func NewInvalidConfig(key string, value any) *DeckError {
	return &DeckError{
		Code:    ErrInvalidConfig,
		Message: fmt.Sprintf("invalid value for %s: %v", key, value),
		Details: map[string]any{"key": key, "value": value},
	}
}

// NewStorage wraps a journal database failure.
func NewStorage(op string, err error) *DeckError {
	return &DeckError{
		Code:    ErrStorage,
		Message: op,
		Err:     err,
	}
}

// Is checks if err (or anything it wraps) is a DeckError with the given code.
func Is(err error, code ErrorCode) bool {
	var dErr *DeckError
	if stderrors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

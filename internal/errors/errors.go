// Package errors provides custom error types for the ollamachat query pipeline.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrTimeout            = errors.New("request timed out")
)

// InvalidInputError represents a query that was rejected before reaching the client
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Message == "" {
		return "invalid input: query cannot be empty"
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// Is allows comparison with sentinel errors
func (e *InvalidInputError) Is(target error) bool {
	if target == ErrInvalidInput {
		return true
	}
	// Match with another InvalidInputError (for error wrapping/unwrapping)
	_, ok := target.(*InvalidInputError)
	return ok
}

// NewInvalidInputError creates a new InvalidInputError
func NewInvalidInputError(message string) *InvalidInputError {
	return &InvalidInputError{Message: message}
}

// BackendUnavailableError represents a backend that could not be reached
type BackendUnavailableError struct {
	Backend string
	Message string
}

func (e *BackendUnavailableError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend %s unavailable", e.Backend)
	}
	return fmt.Sprintf("backend %s unavailable: %s", e.Backend, e.Message)
}

// Is allows comparison with sentinel errors
func (e *BackendUnavailableError) Is(target error) bool {
	if target == ErrBackendUnavailable {
		return true
	}
	_, ok := target.(*BackendUnavailableError)
	return ok
}

// NewBackendUnavailableError creates a new BackendUnavailableError
func NewBackendUnavailableError(backend, message string) *BackendUnavailableError {
	return &BackendUnavailableError{Backend: backend, Message: message}
}

// TimeoutError represents a request timeout
type TimeoutError struct {
	Message string
}

func (e *TimeoutError) Error() string {
	if e.Message == "" {
		return "request timed out"
	}
	return fmt.Sprintf("request timed out: %s", e.Message)
}

// Is allows comparison with sentinel errors
func (e *TimeoutError) Is(target error) bool {
	if target == ErrTimeout {
		return true
	}
	_, ok := target.(*TimeoutError)
	return ok
}

// NewTimeoutError creates a new TimeoutError
func NewTimeoutError(message string) *TimeoutError {
	return &TimeoutError{Message: message}
}

// IsInvalidInputError reports whether err is, or wraps, an InvalidInputError
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsBackendUnavailable reports whether err is, or wraps, a BackendUnavailableError
func IsBackendUnavailable(err error) bool {
	return errors.Is(err, ErrBackendUnavailable)
}

// IsTimeoutError reports whether err is, or wraps, a TimeoutError
func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// Hint returns a short user-facing suggestion for known error kinds, or "".
func Hint(err error) string {
	switch {
	case IsInvalidInputError(err):
		return "Type a question before pressing Enter"
	case IsBackendUnavailable(err):
		return "The backend could not be reached. Check that it is running"
	case IsTimeoutError(err):
		return "Request timed out. Try again"
	default:
		return ""
	}
}

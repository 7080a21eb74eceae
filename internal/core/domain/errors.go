package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable wraps transport failures: DNS, refused connections,
	// broken streams. Nothing was received from the backend.
	ErrUnreachable = errors.New("failed to connect to API")

	ErrConfirmationRequired = errors.New("confirmation required")
	ErrNotMounted           = errors.New("screen not mounted")
	ErrNoRefreshToken       = errors.New("no refresh token stored")
	ErrNoRecord             = errors.New("record not in current list")
	ErrNoFormOpen           = errors.New("no form open")

	// ErrEmptySession is a 2xx auth response without an access token.
	ErrEmptySession = errors.New("backend returned no session")

	// Used by the fake backend.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotFound           = errors.New("not found")
)

// APIError is the single error type for non-success backend responses.
// Message is already human readable.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError builds an APIError, synthesising a message from the status line
// when none is given.
func NewAPIError(status int, statusText, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("HTTP %d: %s", status, statusText)
	}
	return &APIError{Status: status, Message: message}
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not an
// APIError.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

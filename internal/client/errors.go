package client

import (
	"errors"
	"fmt"
)

const sessionExpiredMessage = "Session expired. Please log in again."

// SessionExpiredError is returned when the server rejects the session with HTTP 401.
// The stored token has already been cleared when this error reaches the caller.
type SessionExpiredError struct {
	Path string
}

func (e *SessionExpiredError) Error() string {
	return sessionExpiredMessage
}

// Is makes every SessionExpiredError match ErrSessionExpired.
func (e *SessionExpiredError) Is(target error) bool {
	_, ok := target.(*SessionExpiredError)
	return ok
}

// ErrSessionExpired matches any SessionExpiredError with errors.Is.
var ErrSessionExpired error = &SessionExpiredError{}

// RequestFailedError is any other non-2xx response. Message is the server's
// detail when one could be read, otherwise a status-coded fallback.
type RequestFailedError struct {
	Path    string
	Status  int
	Message string
}

func (e *RequestFailedError) Error() string {
	return e.Message
}

// MalformedResponseError is a 2xx response whose body does not match the expected shape.
type MalformedResponseError struct {
	Path  string
	Cause error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.Path, e.Cause)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// TransportError is a failure to complete the HTTP exchange at all.
type TransportError struct {
	Method string
	URL    string
	Cause  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the HTTP status carried by err, or 0 if it has none.
func StatusCode(err error) int {
	var reqErr *RequestFailedError
	if errors.As(err, &reqErr) {
		return reqErr.Status
	}
	if errors.Is(err, ErrSessionExpired) {
		return 401
	}
	return 0
}

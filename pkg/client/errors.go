package client

import "fmt"

// AuthenticationError reports rejected credentials or a login response with
// no usable token field.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("client: authentication failed: %s", e.Message)
}

// SessionExpiredError reports that an authenticated call returned 401. By the
// time the caller sees it, the persisted session has already been cleared and
// navigation to the login entry point has been forced.
type SessionExpiredError struct{}

func (e *SessionExpiredError) Error() string {
	return "client: session expired"
}

// RequestError reports any other non-success response. Message carries the
// server-supplied message when present, falling back to the status text.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("client: request failed (%d): %s", e.StatusCode, e.Message)
}

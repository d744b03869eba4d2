// Package session persists the authenticated session (bearer token plus the
// derived user record) across process restarts.
//
// A session exists only when both the token and the user record are present
// and parseable. Partial state is treated as no session and cleared, so
// callers never observe a half-populated identity.
package session

import "errors"

// ErrNoSession is returned by Load when no valid session is persisted.
var ErrNoSession = errors.New("session: no active session")

// User is the authenticated principal, reconstructed from the token payload
// at login time. It carries exactly one role.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Nom       string `json:"nom,omitempty"`
	Prenom    string `json:"prenom,omitempty"`
	Telephone string `json:"telephone,omitempty"`
}

// Store is the durable persistence contract for the session. All writers
// (login, logout, the API client's unauthorized handler) must go through it
// rather than touching the underlying storage directly.
type Store interface {
	// Save persists both values, overwriting any prior session.
	Save(token string, user User) error
	// Load returns the persisted token and user. If either is absent or the
	// user record fails to parse, both are cleared and ErrNoSession is
	// returned.
	Load() (string, User, error)
	// Clear removes the persisted session unconditionally.
	Clear() error
}

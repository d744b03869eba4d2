package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/colisexpress/delivery-system/pkg/client/session"
)

// ErrLoginInFlight is returned when Login is called while another login is
// still in progress. The first attempt is left undisturbed.
var ErrLoginInFlight = errors.New("auth: login already in progress")

// LoginPath is the navigation target after logout or session teardown.
const LoginPath = "/login"

// State is the session lifecycle state.
type State int

const (
	// StateInitializing is the startup state, before the persisted session
	// has been consulted.
	StateInitializing State = iota
	// StateAnonymous means no user is logged in.
	StateAnonymous
	// StateAuthenticated means a user is logged in and persisted.
	StateAuthenticated
)

// LoginAPI is the single endpoint the Manager needs from the API client:
// exchange credentials for a raw bearer token.
type LoginAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Manager is the process-wide authority on who is logged in. Construct one
// per process and inject it wherever session state is needed; tests construct
// isolated instances.
type Manager struct {
	api      LoginAPI
	store    session.Store
	navigate func(target string)

	mu       sync.Mutex
	state    State
	token    string
	user     session.User
	inFlight bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithNavigate sets the hook invoked when the Manager forces navigation, such
// as the redirect to the login entry point after logout.
func WithNavigate(fn func(target string)) ManagerOption {
	return func(m *Manager) {
		m.navigate = fn
	}
}

// NewManager creates a Manager in the Initializing state. Call Initialize to
// rehydrate any persisted session before serving state queries.
func NewManager(api LoginAPI, store session.Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		api:      api,
		store:    store,
		navigate: func(string) {},
		state:    StateInitializing,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize rehydrates the session from the store. Absence or a corrupt
// record both land in Anonymous; only a live persisted session reaches
// Authenticated.
func (m *Manager) Initialize() {
	token, user, err := m.store.Load()

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.state = StateAnonymous
		return
	}
	m.token = token
	m.user = user
	m.state = StateAuthenticated
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsLoading reports whether the persisted session has not been consulted yet.
func (m *Manager) IsLoading() bool {
	return m.State() == StateInitializing
}

// IsAuthenticated reports whether a user is currently logged in.
func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// CurrentUser returns the logged-in user, if any.
func (m *Manager) CurrentUser() (session.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated {
		return session.User{}, false
	}
	return m.user, true
}

// Token returns the raw bearer token of the current session, if any.
func (m *Manager) Token() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated {
		return "", false
	}
	return m.token, true
}

// Login exchanges credentials for a session. The session is persisted before
// the state transition, so no reader can observe Authenticated with an
// unpersisted session. A second call while one is in flight fails with
// ErrLoginInFlight.
func (m *Manager) Login(ctx context.Context, email, password string) (session.User, error) {
	m.mu.Lock()
	if m.inFlight {
		m.mu.Unlock()
		return session.User{}, ErrLoginInFlight
	}
	m.inFlight = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.inFlight = false
		m.mu.Unlock()
	}()

	token, err := m.api.Login(ctx, email, password)
	if err != nil {
		return session.User{}, err
	}

	user, err := DecodeToken(token, email)
	if err != nil {
		return session.User{}, err
	}

	if err := m.store.Save(token, user); err != nil {
		return session.User{}, err
	}

	m.mu.Lock()
	m.token = token
	m.user = user
	m.state = StateAuthenticated
	m.mu.Unlock()

	return user, nil
}

// Logout clears the persisted session, transitions to Anonymous, and forces
// navigation to the login entry point. Idempotent.
func (m *Manager) Logout() {
	_ = m.store.Clear()

	m.mu.Lock()
	m.token = ""
	m.user = session.User{}
	m.state = StateAnonymous
	m.mu.Unlock()

	m.navigate(LoginPath)
}

// HasRole reports whether the current user's role is one of the given roles.
// Always false while not Authenticated.
func (m *Manager) HasRole(roles ...string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated {
		return false
	}
	for _, role := range roles {
		if m.user.Role == role {
			return true
		}
	}
	return false
}

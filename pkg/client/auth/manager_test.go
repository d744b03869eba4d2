package auth

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/colisexpress/delivery-system/pkg/client/session"
)

// stubLoginAPI returns a canned token or error. When block is set, Login
// waits on it so tests can hold a login in flight.
type stubLoginAPI struct {
	token string
	err   error
	block chan struct{}
	calls int32
}

func (s *stubLoginAPI) Login(ctx context.Context, email, password string) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.block != nil {
		<-s.block
	}
	return s.token, s.err
}

// failingStore rejects writes so persistence failures can be exercised.
type failingStore struct {
	session.Store
}

func (failingStore) Save(string, session.User) error {
	return errors.New("disk full")
}

func adminToken(t *testing.T) string {
	t.Helper()
	return makeToken(t, map[string]interface{}{
		"sub":   "u1",
		"email": "jane@example.com",
		"roles": []interface{}{"ROLE_ADMIN"},
	})
}

func TestManagerInitializeEmptyStore(t *testing.T) {
	m := NewManager(&stubLoginAPI{}, session.NewMemoryStore())

	if !m.IsLoading() {
		t.Fatal("manager should start in Initializing")
	}
	m.Initialize()
	if m.State() != StateAnonymous {
		t.Errorf("state = %v, want Anonymous", m.State())
	}
	if m.HasRole(RoleAdmin, RoleManager, RoleClient, RoleLivreur) {
		t.Error("HasRole must be false while Anonymous")
	}
}

func TestManagerInitializeRehydrates(t *testing.T) {
	store := session.NewMemoryStore()
	if err := store.Save("tok-1", session.User{ID: "u1", Role: RoleManager}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	m := NewManager(&stubLoginAPI{}, store)
	m.Initialize()

	if !m.IsAuthenticated() {
		t.Fatal("expected Authenticated after rehydration")
	}
	user, ok := m.CurrentUser()
	if !ok || user.Role != RoleManager {
		t.Errorf("user = %+v ok=%v", user, ok)
	}
	token, ok := m.Token()
	if !ok || token != "tok-1" {
		t.Errorf("token = %q ok=%v", token, ok)
	}
}

func TestManagerLoginSuccess(t *testing.T) {
	store := session.NewMemoryStore()
	api := &stubLoginAPI{token: adminToken(t)}
	m := NewManager(api, store)
	m.Initialize()

	user, err := m.Login(context.Background(), "jane@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Role != RoleAdmin {
		t.Errorf("role = %q, want ADMIN", user.Role)
	}
	if !m.IsAuthenticated() {
		t.Error("expected Authenticated after login")
	}
	if !m.HasRole(RoleAdmin) || m.HasRole(RoleManager) {
		t.Error("HasRole mismatch")
	}

	// The session must be persisted, not just held in memory.
	token, stored, err := store.Load()
	if err != nil {
		t.Fatalf("store.Load: %v", err)
	}
	if token != api.token || stored.ID != "u1" {
		t.Errorf("persisted %q/%+v", token, stored)
	}
}

func TestManagerLoginAPIFailure(t *testing.T) {
	store := session.NewMemoryStore()
	m := NewManager(&stubLoginAPI{err: errors.New("bad credentials")}, store)
	m.Initialize()

	if _, err := m.Login(context.Background(), "jane@example.com", "wrong"); err == nil {
		t.Fatal("expected error")
	}
	if m.IsAuthenticated() {
		t.Error("failed login must not authenticate")
	}
	if _, _, err := store.Load(); !errors.Is(err, session.ErrNoSession) {
		t.Error("failed login must not persist a session")
	}
}

func TestManagerLoginMalformedToken(t *testing.T) {
	store := session.NewMemoryStore()
	m := NewManager(&stubLoginAPI{token: "not.a.token"}, store)
	m.Initialize()

	_, err := m.Login(context.Background(), "jane@example.com", "secret")
	var malformed *MalformedTokenError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want MalformedTokenError", err)
	}
	if m.IsAuthenticated() {
		t.Error("malformed token must not authenticate")
	}
	if _, _, err := store.Load(); !errors.Is(err, session.ErrNoSession) {
		t.Error("malformed token must not persist a session")
	}
}

func TestManagerLoginPersistenceFailure(t *testing.T) {
	m := NewManager(&stubLoginAPI{token: adminToken(t)}, failingStore{Store: session.NewMemoryStore()})
	m.Initialize()

	if _, err := m.Login(context.Background(), "jane@example.com", "secret"); err == nil {
		t.Fatal("expected error")
	}
	if m.IsAuthenticated() {
		t.Error("must not transition to Authenticated when persistence fails")
	}
}

func TestManagerLoginSingleFlight(t *testing.T) {
	api := &stubLoginAPI{token: adminToken(t), block: make(chan struct{})}
	m := NewManager(api, session.NewMemoryStore())
	m.Initialize()

	firstDone := make(chan error, 1)
	go func() {
		_, err := m.Login(context.Background(), "jane@example.com", "secret")
		firstDone <- err
	}()

	// Wait for the first login to reach the API call.
	deadline := time.After(time.Second)
	for atomic.LoadInt32(&api.calls) == 0 {
		select {
		case <-deadline:
			t.Fatal("first login never started")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if _, err := m.Login(context.Background(), "jane@example.com", "secret"); !errors.Is(err, ErrLoginInFlight) {
		t.Fatalf("second login err = %v, want ErrLoginInFlight", err)
	}

	close(api.block)
	if err := <-firstDone; err != nil {
		t.Fatalf("first login: %v", err)
	}
	if !m.IsAuthenticated() {
		t.Error("first login should have completed normally")
	}
}

func TestManagerLogout(t *testing.T) {
	store := session.NewMemoryStore()
	m := NewManager(&stubLoginAPI{token: adminToken(t)}, store)
	m.Initialize()

	var navigated []string
	m.navigate = func(target string) { navigated = append(navigated, target) }

	if _, err := m.Login(context.Background(), "jane@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	m.Logout()
	if m.IsAuthenticated() {
		t.Error("expected Anonymous after logout")
	}
	if m.HasRole(RoleAdmin) {
		t.Error("HasRole must be false after logout")
	}
	if _, _, err := store.Load(); !errors.Is(err, session.ErrNoSession) {
		t.Error("logout must clear the persisted session")
	}
	if len(navigated) != 1 || navigated[0] != LoginPath {
		t.Errorf("navigated = %v, want [%s]", navigated, LoginPath)
	}

	// Idempotent: a second logout only repeats the navigation.
	m.Logout()
	if len(navigated) != 2 {
		t.Errorf("second logout navigated = %v", navigated)
	}
}

package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/colisexpress/delivery-system/pkg/client/session"
)

func storeWith(t *testing.T, token string) *session.MemoryStore {
	t.Helper()
	store := session.NewMemoryStore()
	if err := store.Save(token, session.User{ID: "u1", Role: "CLIENT"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return store
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, storeWith(t, "tok-1"))
	if _, err := c.ListUsers(context.Background()); err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want Bearer tok-1", gotAuth)
	}
}

func TestLoginSkipsAuth(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "fresh"})
	}))
	defer srv.Close()

	// A stale token is persisted; the login call must not send it.
	c := New(srv.URL, storeWith(t, "stale"))
	token, err := c.Login(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
	if token != "fresh" {
		t.Errorf("token = %q, want fresh", token)
	}
}

func TestLoginTokenFieldAlternates(t *testing.T) {
	bodies := []string{
		`{"token":"t1"}`,
		`{"access_token":"t1"}`,
		`{"accessToken":"t1"}`,
	}
	for _, body := range bodies {
		body := body
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		c := New(srv.URL, session.NewMemoryStore())
		token, err := c.Login(context.Background(), "a@b.com", "pw")
		srv.Close()
		if err != nil {
			t.Fatalf("Login with %s: %v", body, err)
		}
		if token != "t1" {
			t.Errorf("Login with %s: token = %q", body, token)
		}
	}
}

func TestLoginMissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"id":"u1"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, session.NewMemoryStore())
	_, err := c.Login(context.Background(), "a@b.com", "pw")
	var authErr *AuthenticationError
	if !errors.As(err, &authErr) {
		t.Fatalf("err = %v, want AuthenticationError", err)
	}
}

func TestLoginRejectedCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, session.NewMemoryStore())
	_, err := c.Login(context.Background(), "a@b.com", "pw")
	var authErr *AuthenticationError
	if !errors.As(err, &authErr) {
		t.Fatalf("err = %v, want AuthenticationError", err)
	}
	if authErr.Message != "invalid credentials" {
		t.Errorf("message = %q", authErr.Message)
	}
}

func TestUnauthorizedTearsDownSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := storeWith(t, "expired")
	var navigated []string
	c := New(srv.URL, store, WithNavigate(func(target string) {
		navigated = append(navigated, target)
	}))

	_, err := c.GetColis(context.Background(), "c1")
	var expired *SessionExpiredError
	if !errors.As(err, &expired) {
		t.Fatalf("err = %v, want SessionExpiredError", err)
	}
	if _, _, err := store.Load(); !errors.Is(err, session.ErrNoSession) {
		t.Error("session must be cleared after a 401")
	}
	if len(navigated) != 1 || navigated[0] != loginPath {
		t.Errorf("navigated = %v, want [%s]", navigated, loginPath)
	}
}

func TestRequestErrorMessageUnwrapping(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"colis not found"}`, "colis not found"},
		{"error field", `{"error":"boom"}`, "boom"},
		{"fallback to status text", `plain text`, http.StatusText(http.StatusNotFound)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(srv.URL, storeWith(t, "tok-1"))
			_, err := c.GetColis(context.Background(), "c1")
			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("err = %v, want RequestError", err)
			}
			if reqErr.Message != tt.want {
				t.Errorf("message = %q, want %q", reqErr.Message, tt.want)
			}
			if reqErr.StatusCode != http.StatusNotFound {
				t.Errorf("status = %d", reqErr.StatusCode)
			}
		})
	}
}

func TestListUnwrapsPaginationEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"content": [{"id":"c1","reference":"CX-1"},{"id":"c2","reference":"CX-2"}],
			"totalElements": 12,
			"totalPages": 6,
			"number": 1,
			"size": 2
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, storeWith(t, "tok-1"))
	items, page, err := c.ListColis(context.Background(), ListColisOptions{Page: 1, Size: 2})
	if err != nil {
		t.Fatalf("ListColis: %v", err)
	}
	if len(items) != 2 || items[0].Reference != "CX-1" {
		t.Errorf("items = %+v", items)
	}
	if page.TotalElements != 12 || page.TotalPages != 6 || page.Number != 1 || page.Size != 2 {
		t.Errorf("page = %+v", page)
	}
}

func TestListAcceptsPlainArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"l1","nom":"Doe"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, storeWith(t, "tok-1"))
	items, err := c.ListLivreurs(context.Background())
	if err != nil {
		t.Fatalf("ListLivreurs: %v", err)
	}
	if len(items) != 1 || items[0].Nom != "Doe" {
		t.Errorf("items = %+v", items)
	}
}

func TestSingleRecordPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"c1","reference":"CX-1","status":"EN_COURS"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, storeWith(t, "tok-1"))
	colis, err := c.GetColis(context.Background(), "c1")
	if err != nil {
		t.Fatalf("GetColis: %v", err)
	}
	if colis.Reference != "CX-1" || colis.Status != "EN_COURS" {
		t.Errorf("colis = %+v", colis)
	}
}

func TestCreateColisIdempotencyHeader(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"c1","reference":"CX-1","status":"CREE"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, storeWith(t, "tok-1"))
	result, err := c.CreateColis(context.Background(), CreateColisInput{
		Poids:       1.5,
		Description: "books",
		Destination: "12 rue de la Paix",
		Priority:    "NORMAL",
	}, "key-42")
	if err != nil {
		t.Fatalf("CreateColis: %v", err)
	}
	if gotKey != "key-42" {
		t.Errorf("Idempotency-Key = %q", gotKey)
	}
	if result.Reference != "CX-1" {
		t.Errorf("result = %+v", result)
	}
}

package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
)

// makeToken builds an unsigned three-segment token around the given claims.
// The signature segment is junk; decoding never verifies it.
func makeToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	if err != nil {
		t.Fatalf("marshal header: %v", err)
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "." + enc.EncodeToString([]byte("sig"))
}

func TestDecodeTokenRoleDerivation(t *testing.T) {
	tests := []struct {
		name   string
		claims map[string]interface{}
		want   string
	}{
		{
			name:   "singular role string used verbatim",
			claims: map[string]interface{}{"role": "MANAGER"},
			want:   "MANAGER",
		},
		{
			name:   "singular role object uses name field",
			claims: map[string]interface{}{"role": map[string]interface{}{"name": "ADMIN"}},
			want:   "ADMIN",
		},
		{
			name:   "roles list strips ROLE_ prefix",
			claims: map[string]interface{}{"roles": []interface{}{"ROLE_ADMIN"}},
			want:   "ADMIN",
		},
		{
			name:   "roles list without prefix",
			claims: map[string]interface{}{"roles": []interface{}{"LIVREUR"}},
			want:   "LIVREUR",
		},
		{
			name: "roles list of objects uses authority field",
			claims: map[string]interface{}{
				"roles": []interface{}{map[string]interface{}{"authority": "ROLE_MANAGER"}},
			},
			want: "MANAGER",
		},
		{
			name: "authorities skips non-role entries",
			claims: map[string]interface{}{
				"authorities": []interface{}{"SCOPE_READ", "ROLE_MANAGER"},
			},
			want: "MANAGER",
		},
		{
			name: "authorities object entries",
			claims: map[string]interface{}{
				"authorities": []interface{}{map[string]interface{}{"authority": "ROLE_LIVREUR"}},
			},
			want: "LIVREUR",
		},
		{
			name:   "no role-bearing field defaults to CLIENT",
			claims: map[string]interface{}{"sub": "u1"},
			want:   "CLIENT",
		},
		{
			name: "singular role wins over roles list",
			claims: map[string]interface{}{
				"role":  "ADMIN",
				"roles": []interface{}{"ROLE_CLIENT"},
			},
			want: "ADMIN",
		},
		{
			name: "roles list wins over authorities",
			claims: map[string]interface{}{
				"roles":       []interface{}{"ROLE_CLIENT"},
				"authorities": []interface{}{"ROLE_ADMIN"},
			},
			want: "CLIENT",
		},
		{
			name:   "unknown role passes through unchanged",
			claims: map[string]interface{}{"role": "AUDITOR"},
			want:   "AUDITOR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := DecodeToken(makeToken(t, tt.claims), "login@example.com")
			if err != nil {
				t.Fatalf("DecodeToken: %v", err)
			}
			if user.Role != tt.want {
				t.Errorf("role = %q, want %q", user.Role, tt.want)
			}
		})
	}
}

func TestDecodeTokenIdentity(t *testing.T) {
	t.Run("sub preferred for id", func(t *testing.T) {
		user, err := DecodeToken(makeToken(t, map[string]interface{}{
			"sub": "u1", "id": "u2", "userId": "u3",
		}), "")
		if err != nil {
			t.Fatalf("DecodeToken: %v", err)
		}
		if user.ID != "u1" {
			t.Errorf("id = %q, want u1", user.ID)
		}
	})

	t.Run("id then userId fallbacks", func(t *testing.T) {
		user, _ := DecodeToken(makeToken(t, map[string]interface{}{"userId": "u3"}), "")
		if user.ID != "u3" {
			t.Errorf("id = %q, want u3", user.ID)
		}
	})

	t.Run("numeric identifier formatted", func(t *testing.T) {
		user, _ := DecodeToken(makeToken(t, map[string]interface{}{"id": float64(42)}), "")
		if user.ID != "42" {
			t.Errorf("id = %q, want 42", user.ID)
		}
	})

	t.Run("email from claims", func(t *testing.T) {
		user, _ := DecodeToken(makeToken(t, map[string]interface{}{"email": "a@b.com"}), "x@y.com")
		if user.Email != "a@b.com" {
			t.Errorf("email = %q, want a@b.com", user.Email)
		}
	})

	t.Run("username claim before login email", func(t *testing.T) {
		user, _ := DecodeToken(makeToken(t, map[string]interface{}{"username": "a@b.com"}), "x@y.com")
		if user.Email != "a@b.com" {
			t.Errorf("email = %q, want a@b.com", user.Email)
		}
	})

	t.Run("login email fallback", func(t *testing.T) {
		user, _ := DecodeToken(makeToken(t, map[string]interface{}{"sub": "u1"}), "x@y.com")
		if user.Email != "x@y.com" {
			t.Errorf("email = %q, want x@y.com", user.Email)
		}
	})

	t.Run("name fields with alternates", func(t *testing.T) {
		user, _ := DecodeToken(makeToken(t, map[string]interface{}{
			"lastName": "Doe", "firstName": "Jane",
		}), "")
		if user.Nom != "Doe" || user.Prenom != "Jane" {
			t.Errorf("name = %q %q, want Doe Jane", user.Nom, user.Prenom)
		}
	})
}

func TestDecodeTokenMalformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"two segments", "aaaa.bbbb"},
		{"payload not base64", "aaaa.!!!.cccc"},
		{"payload not json", "aaaa." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".cccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeToken(tt.token, "")
			var malformed *MalformedTokenError
			if !errors.As(err, &malformed) {
				t.Fatalf("err = %v, want MalformedTokenError", err)
			}
		})
	}
}

package guard

import (
	"testing"

	"github.com/colisexpress/delivery-system/pkg/client/auth"
)

// stubAuthorizer is a fixed session state with a fixed role.
type stubAuthorizer struct {
	loading       bool
	authenticated bool
	role          string
}

func (s stubAuthorizer) IsLoading() bool       { return s.loading }
func (s stubAuthorizer) IsAuthenticated() bool { return s.authenticated }

func (s stubAuthorizer) HasRole(roles ...string) bool {
	if !s.authenticated {
		return false
	}
	for _, role := range roles {
		if role == s.role {
			return true
		}
	}
	return false
}

func TestEvaluateLoading(t *testing.T) {
	result := Evaluate(stubAuthorizer{loading: true}, "/admin", []string{auth.RoleAdmin})
	if result.Decision != DecisionLoading {
		t.Errorf("decision = %v, want loading", result.Decision)
	}
}

func TestEvaluateAnonymousRedirectsToLogin(t *testing.T) {
	result := Evaluate(stubAuthorizer{}, "/manager/colis", []string{auth.RoleManager})

	if result.Decision != DecisionRedirectLogin {
		t.Fatalf("decision = %v, want redirect-login", result.Decision)
	}
	if result.RedirectTo != LoginPath {
		t.Errorf("redirect = %q, want %q", result.RedirectTo, LoginPath)
	}
	if result.From != "/manager/colis" {
		t.Errorf("from = %q, want original location", result.From)
	}
}

func TestEvaluateRoleMismatchRedirectsToUnauthorized(t *testing.T) {
	authz := stubAuthorizer{authenticated: true, role: auth.RoleAdmin}
	result := Evaluate(authz, "/manager", []string{auth.RoleManager})

	if result.Decision != DecisionRedirectUnauthorized {
		t.Fatalf("decision = %v, want redirect-unauthorized", result.Decision)
	}
	if result.RedirectTo != UnauthorizedPath {
		t.Errorf("redirect = %q, want %q", result.RedirectTo, UnauthorizedPath)
	}
}

func TestEvaluateAllowed(t *testing.T) {
	authz := stubAuthorizer{authenticated: true, role: auth.RoleAdmin}
	result := Evaluate(authz, "/admin", []string{auth.RoleAdmin})

	if result.Decision != DecisionAllow {
		t.Errorf("decision = %v, want allow", result.Decision)
	}
}

func TestEvaluateEmptyAllowedRolesAdmitsAnyUser(t *testing.T) {
	authz := stubAuthorizer{authenticated: true, role: "AUDITOR"}
	result := Evaluate(authz, "/profile", nil)

	if result.Decision != DecisionAllow {
		t.Errorf("decision = %v, want allow", result.Decision)
	}
}

func TestEvaluateUnknownRoleFailsClosed(t *testing.T) {
	authz := stubAuthorizer{authenticated: true, role: "AUDITOR"}
	result := Evaluate(authz, "/admin", []string{auth.RoleAdmin})

	if result.Decision != DecisionRedirectUnauthorized {
		t.Errorf("decision = %v, want redirect-unauthorized", result.Decision)
	}
}

func TestDefaultRedirect(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{auth.RoleAdmin, AdminHome},
		{auth.RoleManager, ManagerHome},
		{auth.RoleClient, ClientHome},
		{auth.RoleLivreur, DeliveryHome},
		{"AUDITOR", LoginPath},
		{"", LoginPath},
	}
	for _, tt := range tests {
		if got := DefaultRedirect(tt.role); got != tt.want {
			t.Errorf("DefaultRedirect(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

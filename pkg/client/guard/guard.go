// Package guard decides, for each protected navigation, whether the requested
// view may render. Access is by exact membership in the route's allowed-roles
// set; there is no role hierarchy.
package guard

import (
	"github.com/colisexpress/delivery-system/pkg/client/auth"
	"github.com/colisexpress/delivery-system/pkg/client/session"
)

// Well-known navigation targets.
const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"

	AdminHome    = "/admin"
	ManagerHome  = "/manager"
	ClientHome   = "/client"
	DeliveryHome = "/delivery"
)

// Decision is the outcome of evaluating a navigation.
type Decision int

const (
	// DecisionLoading means the session is still being rehydrated; show a
	// placeholder, make no navigation decision yet.
	DecisionLoading Decision = iota
	// DecisionRedirectLogin means no user is logged in.
	DecisionRedirectLogin
	// DecisionRedirectUnauthorized means the user's role is not in the
	// route's allowed set.
	DecisionRedirectUnauthorized
	// DecisionAllow means the requested view renders.
	DecisionAllow
)

func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionRedirectUnauthorized:
		return "redirect-unauthorized"
	case DecisionAllow:
		return "allow"
	default:
		return "unknown"
	}
}

// Result carries the decision and, for redirects, where to go. From records
// the originally requested location so a post-login flow can return to it.
type Result struct {
	Decision   Decision
	RedirectTo string
	From       string
}

// Authorizer is the slice of the session manager the guard consumes.
type Authorizer interface {
	IsLoading() bool
	IsAuthenticated() bool
	HasRole(roles ...string) bool
}

// Evaluate runs the navigation decision table in order, first applicable
// branch wins. An empty allowedRoles set admits any authenticated user.
func Evaluate(authz Authorizer, location string, allowedRoles []string) Result {
	if authz.IsLoading() {
		return Result{Decision: DecisionLoading}
	}
	if !authz.IsAuthenticated() {
		return Result{
			Decision:   DecisionRedirectLogin,
			RedirectTo: LoginPath,
			From:       location,
		}
	}
	if len(allowedRoles) > 0 && !authz.HasRole(allowedRoles...) {
		return Result{
			Decision:   DecisionRedirectUnauthorized,
			RedirectTo: UnauthorizedPath,
			From:       location,
		}
	}
	return Result{Decision: DecisionAllow}
}

// DefaultRedirect resolves the home view for a role. Unknown roles, including
// the anonymous empty role, land on the login entry point.
func DefaultRedirect(role string) string {
	switch role {
	case auth.RoleAdmin:
		return AdminHome
	case auth.RoleManager:
		return ManagerHome
	case auth.RoleClient:
		return ClientHome
	case auth.RoleLivreur:
		return DeliveryHome
	default:
		return LoginPath
	}
}

// DefaultRedirectFor resolves the home view for a user record.
func DefaultRedirectFor(user session.User) string {
	return DefaultRedirect(user.Role)
}

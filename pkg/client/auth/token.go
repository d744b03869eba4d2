// Package auth turns bearer tokens into user identities and manages the
// login/logout lifecycle of the current session.
package auth

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/colisexpress/delivery-system/pkg/client/session"
)

// Known roles. Unknown role strings are passed through unchanged and fall
// through every allowed-roles check downstream.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleClient  = "CLIENT"
	RoleLivreur = "LIVREUR"
)

const rolePrefix = "ROLE_"

// MalformedTokenError reports a token whose payload segment could not be
// decoded or parsed. The caller must treat it as a login failure, never as a
// partial session.
type MalformedTokenError struct {
	Cause error
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("auth: malformed token: %v", e.Cause)
}

func (e *MalformedTokenError) Unwrap() error {
	return e.Cause
}

// DecodeToken decodes the payload segment of a bearer token without signature
// verification and derives the user record from it. The signature is the
// server's concern; the client trusts issuance and transport security.
//
// loginEmail is the address used at the login call site, consulted only when
// the payload carries no email of its own.
func DecodeToken(token, loginEmail string) (session.User, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return session.User{}, &MalformedTokenError{Cause: err}
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return session.User{}, &MalformedTokenError{Cause: fmt.Errorf("unexpected claims type %T", parsed.Claims)}
	}

	return session.User{
		ID:     firstString(claims, "sub", "id", "userId"),
		Email:  emailFrom(claims, loginEmail),
		Role:   deriveRole(claims),
		Nom:    firstString(claims, "nom", "lastName"),
		Prenom: firstString(claims, "prenom", "firstName"),
	}, nil
}

// roleRule extracts a role from the claims, reporting whether it applied.
type roleRule func(claims jwt.MapClaims) (string, bool)

// roleRules is the role-derivation policy. Rules are tried in order and the
// first match wins; the order is a contract with the backends this client
// talks to and must not be reshuffled.
var roleRules = []roleRule{
	roleFromSingular,
	roleFromRolesList,
	roleFromAuthorities,
}

func deriveRole(claims jwt.MapClaims) string {
	for _, rule := range roleRules {
		if role, ok := rule(claims); ok {
			return role
		}
	}
	return RoleClient
}

// roleFromSingular handles a scalar `role` claim, either a plain string or an
// object with a name field.
func roleFromSingular(claims jwt.MapClaims) (string, bool) {
	switch v := claims["role"].(type) {
	case string:
		if v != "" {
			return v, true
		}
	case map[string]interface{}:
		if name, ok := v["name"].(string); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

// roleFromRolesList handles a `roles` collection, inspecting only the first
// element. Spring-issued tokens carry entries like "ROLE_ADMIN".
func roleFromRolesList(claims jwt.MapClaims) (string, bool) {
	list, ok := claims["roles"].([]interface{})
	if !ok || len(list) == 0 {
		return "", false
	}
	switch v := list[0].(type) {
	case string:
		if v != "" {
			return strings.TrimPrefix(v, rolePrefix), true
		}
	case map[string]interface{}:
		if name, ok := v["name"].(string); ok && name != "" {
			return strings.TrimPrefix(name, rolePrefix), true
		}
		if authority, ok := v["authority"].(string); ok && authority != "" {
			return strings.TrimPrefix(authority, rolePrefix), true
		}
	}
	return "", false
}

// roleFromAuthorities scans an `authorities` collection for the first entry
// shaped like a role ("ROLE_*"), skipping scopes and other authorities.
func roleFromAuthorities(claims jwt.MapClaims) (string, bool) {
	list, ok := claims["authorities"].([]interface{})
	if !ok {
		return "", false
	}
	for _, entry := range list {
		var value string
		switch v := entry.(type) {
		case string:
			value = v
		case map[string]interface{}:
			value, _ = v["authority"].(string)
		}
		if strings.HasPrefix(value, rolePrefix) {
			return strings.TrimPrefix(value, rolePrefix), true
		}
	}
	return "", false
}

func emailFrom(claims jwt.MapClaims, loginEmail string) string {
	if email := firstString(claims, "email", "username"); email != "" {
		return email
	}
	return loginEmail
}

// firstString returns the first of the named claims holding a non-empty
// string. Numeric identifiers are formatted as their decimal representation.
func firstString(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		switch v := claims[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

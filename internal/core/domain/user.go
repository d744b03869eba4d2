package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleClient  = "CLIENT"
	RoleLivreur = "LIVREUR"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether role belongs to the closed role enumeration.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleClient, RoleLivreur:
		return true
	}
	return false
}

// User models an authenticated actor in the system. Exactly one role per
// user; the issued JWT carries it Spring-style as roles: ["ROLE_<role>"].
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Nom          string    `json:"nom,omitempty"`
	Prenom       string    `json:"prenom,omitempty"`
	Telephone    string    `json:"telephone,omitempty"`
	Status       string    `json:"status,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

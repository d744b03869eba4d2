package ports

import (
	"context"

	"github.com/colisexpress/delivery-system/internal/core/domain"
)

// RegisterInput carries the data required to create a new account.
type RegisterInput struct {
	Email     string
	Password  string
	Role      string
	Nom       string
	Prenom    string
	Telephone string
}

// AuthService implements registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token plus the
	// authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

package ports

import (
	"context"

	"github.com/colisexpress/delivery-system/internal/core/domain"
)

// ClientInput carries the editable fields of a client account.
type ClientInput struct {
	Nom       string
	Prenom    string
	Telephone string
	Email     string
	Adresse   string
}

// ClientRepository defines persistence operations for client accounts.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.ClientAccount) (*domain.ClientAccount, error)
	FindByID(ctx context.Context, id string) (*domain.ClientAccount, error)
	List(ctx context.Context) ([]*domain.ClientAccount, error)
	Delete(ctx context.Context, id string) error
}

// ClientService defines use-case operations for client accounts.
type ClientService interface {
	Create(ctx context.Context, input ClientInput) (*domain.ClientAccount, error)
	Get(ctx context.Context, id string) (*domain.ClientAccount, error)
	List(ctx context.Context) ([]*domain.ClientAccount, error)
	Delete(ctx context.Context, id string) error
}

package ports

import (
	"context"

	"github.com/colisexpress/delivery-system/internal/core/domain"
)

// LivreurInput carries the editable fields of a livreur.
type LivreurInput struct {
	Nom       string
	Prenom    string
	Telephone string
	Email     string
	Vehicule  string
	ZoneID    string
}

// LivreurRepository defines persistence operations for livreurs.
type LivreurRepository interface {
	Create(ctx context.Context, l *domain.Livreur) (*domain.Livreur, error)
	FindByID(ctx context.Context, id string) (*domain.Livreur, error)
	List(ctx context.Context) ([]*domain.Livreur, error)
	Update(ctx context.Context, l *domain.Livreur) error
	Delete(ctx context.Context, id string) error
}

// LivreurService defines use-case operations for livreurs.
type LivreurService interface {
	Create(ctx context.Context, input LivreurInput) (*domain.Livreur, error)
	Get(ctx context.Context, id string) (*domain.Livreur, error)
	List(ctx context.Context) ([]*domain.Livreur, error)
	Update(ctx context.Context, id string, input LivreurInput) (*domain.Livreur, error)
	Delete(ctx context.Context, id string) error
}

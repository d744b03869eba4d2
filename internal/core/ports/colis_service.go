package ports

import (
	"context"
	"time"

	"github.com/colisexpress/delivery-system/internal/core/domain"
)

// ProduitInput holds one item of a colis.
type ProduitInput struct {
	Nom      string
	Quantite int
	Poids    float64
}

// DestinataireInput holds the recipient details.
type DestinataireInput struct {
	Nom       string
	Prenom    string
	Telephone string
	Email     string
	Adresse   string
}

// CreateColisInput carries all data needed to create a new colis.
type CreateColisInput struct {
	ClientID       string
	Poids          float64
	Description    string
	Destination    string
	Priority       string
	Produits       []ProduitInput
	Destinataire   DestinataireInput
	CodePostal     string
	IdempotencyKey string
}

// UpdateColisInput carries the mutable fields of an existing colis.
type UpdateColisInput struct {
	ID           string
	Poids        float64
	Description  string
	Destination  string
	Priority     string
	Produits     []ProduitInput
	Destinataire DestinataireInput
	// Role and ClientID enforce RBAC: the client role may only touch its own colis.
	Role     string
	ClientID string
}

// ColisResult is returned by the service after creating a colis.
type ColisResult struct {
	ID          string
	Reference   string
	Status      string
	CreatedAt   time.Time
	EstimatedAt time.Time
	// AlreadyExisted is true when the Idempotency-Key matched an existing colis.
	AlreadyExisted bool
}

// GetColisInput carries the parameters needed to retrieve a single colis.
type GetColisInput struct {
	ID       string
	Role     string
	ClientID string
}

// ListColisInput carries all parameters for the list endpoints.
type ListColisInput struct {
	Role      string
	ClientID  string
	LivreurID string
	Status    string
	Priority  string
	Search    string
	DateFrom  time.Time
	DateTo    time.Time
	Page      int
	Limit     int
}

// ColisPage is a single page of colis plus Spring-style paging metadata.
type ColisPage struct {
	Items         []*domain.Colis
	TotalElements int64
	Page          int
	Size          int
	TotalPages    int
}

// ChangeStatusInput carries a manual status transition request.
type ChangeStatusInput struct {
	ID          string
	Status      string
	Commentaire string
	Role        string
	LivreurID   string
}

// ColisService defines use-case operations for colis.
type ColisService interface {
	Create(ctx context.Context, input CreateColisInput) (*ColisResult, error)
	Get(ctx context.Context, input GetColisInput) (*domain.Colis, error)
	List(ctx context.Context, input ListColisInput) (*ColisPage, error)
	Update(ctx context.Context, input UpdateColisInput) (*domain.Colis, error)
	ChangeStatus(ctx context.Context, input ChangeStatusInput) error
	AssignLivreur(ctx context.Context, colisID, livreurID string) error
	Delete(ctx context.Context, id string) error
}

package ports

import (
	"context"
	"time"

	"github.com/colisexpress/delivery-system/internal/core/domain"
)

// ListColisFilter carries all query parameters for listing colis.
// ClientID and LivreurID scoping is enforced by the service layer (RBAC).
type ListColisFilter struct {
	ClientID  string    // empty = no filter (admin/manager); non-empty = scoped to client
	LivreurID string    // non-empty = scoped to assigned livreur
	Status    string    // optional: filter by colis status
	Priority  string    // optional: filter by priority
	Search    string    // optional: partial match on reference or destinataire.nom
	DateFrom  time.Time // optional: created_at >= DateFrom
	DateTo    time.Time // optional: created_at <= DateTo
	Page      int       // 1-based
	Limit     int       // max rows per page (capped at 100 by service)
}

// ColisRepository defines persistence operations for colis.
type ColisRepository interface {
	Create(ctx context.Context, c *domain.Colis) error
	// FindByID retrieves a colis by its identifier. When clientID is
	// non-empty, the query is additionally filtered by client_id (for RBAC).
	FindByID(ctx context.Context, id string, clientID string) (*domain.Colis, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Colis, error)
	// List returns a page of colis matching filter and the total count.
	List(ctx context.Context, filter ListColisFilter) ([]*domain.Colis, int64, error)
	Update(ctx context.Context, c *domain.Colis) error
	// UpdateStatus atomically applies a status change and appends a history entry.
	UpdateStatus(ctx context.Context, id string, status domain.ColisStatus, ts time.Time, commentaire string) error
	AssignLivreur(ctx context.Context, colisID, livreurID string) error
	Delete(ctx context.Context, id string) error
}

package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/colisexpress/delivery-system/internal/core/domain"
	"github.com/colisexpress/delivery-system/internal/core/ports"
)

const maxPageSize = 100

type ColisService struct {
	repo   ports.ColisRepository
	logger zerolog.Logger
}

func NewColisService(repo ports.ColisRepository, logger zerolog.Logger) *ColisService {
	return &ColisService{repo: repo, logger: logger}
}

// Create creates a new colis. If an idempotency key is provided and already
// seen, the previously created colis is returned without side effects.
func (s *ColisService) Create(ctx context.Context, input ports.CreateColisInput) (*ports.ColisResult, error) {
	if input.IdempotencyKey != "" {
		existing, err := s.repo.FindByIdempotencyKey(ctx, input.IdempotencyKey)
		if err == nil && existing != nil {
			s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("reference", existing.Reference).Msg("idempotent replay")
			return &ports.ColisResult{
				ID:             existing.ID,
				Reference:      existing.Reference,
				Status:         string(existing.Status),
				CreatedAt:      existing.CreatedAt,
				EstimatedAt:    existing.EstimatedAt,
				AlreadyExisted: true,
			}, nil
		}
	}

	now := time.Now().UTC()
	priority := domain.ColisPriority(input.Priority)
	if priority != domain.PriorityExpress {
		priority = domain.PriorityNormal
	}

	produits := make([]domain.Produit, len(input.Produits))
	for i, p := range input.Produits {
		produits[i] = domain.Produit{Nom: p.Nom, Quantite: p.Quantite, Poids: p.Poids}
	}

	colis := &domain.Colis{
		Reference:   generateReference(),
		ClientID:    input.ClientID,
		Poids:       input.Poids,
		Description: input.Description,
		Destination: input.Destination,
		Priority:    priority,
		Status:      domain.StatusCree,
		Produits:    produits,
		Destinataire: domain.Destinataire{
			Nom:       input.Destinataire.Nom,
			Prenom:    input.Destinataire.Prenom,
			Telephone: input.Destinataire.Telephone,
			Email:     input.Destinataire.Email,
			Adresse:   input.Destinataire.Adresse,
		},
		Zone:           domain.Zone{CodePostal: input.CodePostal},
		Historique:     []domain.HistoriqueEntry{{Status: domain.StatusCree, Timestamp: now}},
		CreatedAt:      now,
		UpdatedAt:      now,
		EstimatedAt:    estimatedDelivery(priority, now),
		IdempotencyKey: input.IdempotencyKey,
	}

	if err := s.repo.Create(ctx, colis); err != nil {
		s.logger.Error().Err(err).Msg("failed to create colis")
		return nil, err
	}

	s.logger.Info().Str("reference", colis.Reference).Str("client_id", input.ClientID).Msg("colis created")

	return &ports.ColisResult{
		ID:          colis.ID,
		Reference:   colis.Reference,
		Status:      string(colis.Status),
		CreatedAt:   colis.CreatedAt,
		EstimatedAt: colis.EstimatedAt,
	}, nil
}

// Get retrieves a single colis. The client role only sees its own colis.
func (s *ColisService) Get(ctx context.Context, input ports.GetColisInput) (*domain.Colis, error) {
	clientScope := ""
	if input.Role == domain.RoleClient {
		clientScope = input.ClientID
	}
	return s.repo.FindByID(ctx, input.ID, clientScope)
}

// List returns one page of colis. Scoping by role: clients see their own,
// livreurs see their assignments, admin and manager see everything.
func (s *ColisService) List(ctx context.Context, input ports.ListColisInput) (*ports.ColisPage, error) {
	filter := ports.ListColisFilter{
		Status:   input.Status,
		Priority: input.Priority,
		Search:   input.Search,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
		Page:     input.Page,
		Limit:    input.Limit,
	}
	switch input.Role {
	case domain.RoleClient:
		filter.ClientID = input.ClientID
	case domain.RoleLivreur:
		filter.LivreurID = input.LivreurID
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.ColisPage{
		Items:         items,
		TotalElements: total,
		Page:          filter.Page,
		Size:          filter.Limit,
		TotalPages:    totalPages,
	}, nil
}

// Update modifies the editable fields of a colis. The client role may only
// update its own colis, and only before preparation starts.
func (s *ColisService) Update(ctx context.Context, input ports.UpdateColisInput) (*domain.Colis, error) {
	clientScope := ""
	if input.Role == domain.RoleClient {
		clientScope = input.ClientID
	}
	colis, err := s.repo.FindByID(ctx, input.ID, clientScope)
	if err != nil {
		return nil, err
	}
	if input.Role == domain.RoleClient && colis.Status != domain.StatusCree {
		return nil, domain.ErrForbidden
	}

	colis.Poids = input.Poids
	colis.Description = input.Description
	colis.Destination = input.Destination
	if p := domain.ColisPriority(input.Priority); p == domain.PriorityExpress || p == domain.PriorityNormal {
		colis.Priority = p
	}
	if len(input.Produits) > 0 {
		produits := make([]domain.Produit, len(input.Produits))
		for i, p := range input.Produits {
			produits[i] = domain.Produit{Nom: p.Nom, Quantite: p.Quantite, Poids: p.Poids}
		}
		colis.Produits = produits
	}
	colis.Destinataire = domain.Destinataire{
		Nom:       input.Destinataire.Nom,
		Prenom:    input.Destinataire.Prenom,
		Telephone: input.Destinataire.Telephone,
		Email:     input.Destinataire.Email,
		Adresse:   input.Destinataire.Adresse,
	}
	colis.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, colis); err != nil {
		return nil, err
	}
	return colis, nil
}

// ChangeStatus applies a manual status transition. Livreurs may only move
// their own assignments out of EN_COURS.
func (s *ColisService) ChangeStatus(ctx context.Context, input ports.ChangeStatusInput) error {
	next := domain.ColisStatus(input.Status)
	if !domain.ValidStatus(next) {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTransition, input.Status)
	}

	colis, err := s.repo.FindByID(ctx, input.ID, "")
	if err != nil {
		return err
	}
	if input.Role == domain.RoleLivreur && colis.LivreurID != input.LivreurID {
		return domain.ErrForbidden
	}
	if !colis.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, colis.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, input.ID, next, time.Now().UTC(), input.Commentaire); err != nil {
		return err
	}

	s.logger.Info().Str("colis_id", input.ID).Str("status", input.Status).Msg("status changed")
	return nil
}

// AssignLivreur puts a colis in a livreur's round. Only colis not yet on the
// road can be assigned.
func (s *ColisService) AssignLivreur(ctx context.Context, colisID, livreurID string) error {
	colis, err := s.repo.FindByID(ctx, colisID, "")
	if err != nil {
		return err
	}
	if colis.Status != domain.StatusCree && colis.Status != domain.StatusPreparation {
		return domain.ErrColisNotAssignable
	}

	if err := s.repo.AssignLivreur(ctx, colisID, livreurID); err != nil {
		return err
	}

	s.logger.Info().Str("colis_id", colisID).Str("livreur_id", livreurID).Msg("livreur assigned")
	return nil
}

func (s *ColisService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// generateReference returns a unique colis reference in the format CX-XXXXXXXX.
func generateReference() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("CX-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("CX-%08X", b)
}

// estimatedDelivery calculates the estimated delivery time based on priority.
func estimatedDelivery(priority domain.ColisPriority, from time.Time) time.Time {
	base := time.Date(from.Year(), from.Month(), from.Day(), 18, 0, 0, 0, time.UTC)
	if priority == domain.PriorityExpress {
		return base.AddDate(0, 0, 1)
	}
	return base.AddDate(0, 0, 3)
}

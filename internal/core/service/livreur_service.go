package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/colisexpress/delivery-system/internal/core/domain"
	"github.com/colisexpress/delivery-system/internal/core/ports"
)

type LivreurService struct {
	repo   ports.LivreurRepository
	logger zerolog.Logger
}

func NewLivreurService(repo ports.LivreurRepository, logger zerolog.Logger) *LivreurService {
	return &LivreurService{repo: repo, logger: logger}
}

func (s *LivreurService) Create(ctx context.Context, input ports.LivreurInput) (*domain.Livreur, error) {
	now := time.Now().UTC()
	livreur := &domain.Livreur{
		Nom:       input.Nom,
		Prenom:    input.Prenom,
		Telephone: input.Telephone,
		Email:     input.Email,
		Vehicule:  input.Vehicule,
		ZoneID:    input.ZoneID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, livreur)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("livreur_id", created.ID).Msg("livreur created")
	return created, nil
}

func (s *LivreurService) Get(ctx context.Context, id string) (*domain.Livreur, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *LivreurService) List(ctx context.Context) ([]*domain.Livreur, error) {
	return s.repo.List(ctx)
}

func (s *LivreurService) Update(ctx context.Context, id string, input ports.LivreurInput) (*domain.Livreur, error) {
	livreur, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	livreur.Nom = input.Nom
	livreur.Prenom = input.Prenom
	livreur.Telephone = input.Telephone
	livreur.Email = input.Email
	livreur.Vehicule = input.Vehicule
	livreur.ZoneID = input.ZoneID
	livreur.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, livreur); err != nil {
		return nil, err
	}
	return livreur, nil
}

func (s *LivreurService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/colisexpress/delivery-system/internal/core/domain"
	"github.com/colisexpress/delivery-system/internal/core/ports"
)

type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) Create(ctx context.Context, input ports.ClientInput) (*domain.ClientAccount, error) {
	now := time.Now().UTC()
	client := &domain.ClientAccount{
		Nom:       input.Nom,
		Prenom:    input.Prenom,
		Telephone: input.Telephone,
		Email:     input.Email,
		Adresse:   input.Adresse,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("client_id", created.ID).Msg("client created")
	return created, nil
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.ClientAccount, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context) ([]*domain.ClientAccount, error) {
	return s.repo.List(ctx)
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

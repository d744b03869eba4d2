package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/colisexpress/delivery-system/internal/core/domain"
	"github.com/colisexpress/delivery-system/internal/core/ports"
)

// AccessControlService implements role and permission administration.
type AccessControlService struct {
	repo   ports.AccessRepository
	logger zerolog.Logger
}

func NewAccessControlService(repo ports.AccessRepository, logger zerolog.Logger) *AccessControlService {
	return &AccessControlService{repo: repo, logger: logger}
}

func (s *AccessControlService) CreateRole(ctx context.Context, name string) (*domain.RoleDefinition, error) {
	if name == "" {
		return nil, domain.ErrRoleNotFound
	}
	created, err := s.repo.CreateRole(ctx, &domain.RoleDefinition{Name: name, Permissions: []domain.Permission{}})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("role", name).Msg("role created")
	return created, nil
}

func (s *AccessControlService) ListRoles(ctx context.Context) ([]*domain.RoleDefinition, error) {
	return s.repo.ListRoles(ctx)
}

func (s *AccessControlService) DeleteRole(ctx context.Context, name string) error {
	if err := s.repo.DeleteRole(ctx, name); err != nil {
		return err
	}
	s.logger.Info().Str("role", name).Msg("role deleted")
	return nil
}

func (s *AccessControlService) CreatePermission(ctx context.Context, name, description string) (*domain.Permission, error) {
	if name == "" {
		return nil, domain.ErrPermissionNotFound
	}
	created, err := s.repo.CreatePermission(ctx, &domain.Permission{Name: name, Description: description})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("permission", name).Msg("permission created")
	return created, nil
}

func (s *AccessControlService) ListPermissions(ctx context.Context) ([]*domain.Permission, error) {
	return s.repo.ListPermissions(ctx)
}

func (s *AccessControlService) DeletePermission(ctx context.Context, name string) error {
	if err := s.repo.DeletePermission(ctx, name); err != nil {
		return err
	}
	s.logger.Info().Str("permission", name).Msg("permission deleted")
	return nil
}

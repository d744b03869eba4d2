package ports

import (
	"context"

	"github.com/colisexpress/delivery-system/internal/core/domain"
)

// AccessRepository defines persistence for role definitions and permissions.
type AccessRepository interface {
	CreateRole(ctx context.Context, r *domain.RoleDefinition) (*domain.RoleDefinition, error)
	ListRoles(ctx context.Context) ([]*domain.RoleDefinition, error)
	DeleteRole(ctx context.Context, name string) error
	CreatePermission(ctx context.Context, p *domain.Permission) (*domain.Permission, error)
	ListPermissions(ctx context.Context) ([]*domain.Permission, error)
	DeletePermission(ctx context.Context, name string) error
}

// AccessService defines the role and permission administration use cases.
type AccessService interface {
	CreateRole(ctx context.Context, name string) (*domain.RoleDefinition, error)
	ListRoles(ctx context.Context) ([]*domain.RoleDefinition, error)
	DeleteRole(ctx context.Context, name string) error
	CreatePermission(ctx context.Context, name, description string) (*domain.Permission, error)
	ListPermissions(ctx context.Context) ([]*domain.Permission, error)
	DeletePermission(ctx context.Context, name string) error
}

package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/colisexpress/delivery-system/internal/core/domain"
)

const (
	rolesCollection       = "roles"
	permissionsCollection = "permissions"
)

// AccessRepository persists role definitions and permissions.
type AccessRepository struct {
	roles       *mongo.Collection
	permissions *mongo.Collection
}

func NewAccessRepository(db *mongo.Database) *AccessRepository {
	return &AccessRepository{
		roles:       db.Collection(rolesCollection),
		permissions: db.Collection(permissionsCollection),
	}
}

func (r *AccessRepository) CreateRole(ctx context.Context, role *domain.RoleDefinition) (*domain.RoleDefinition, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if role.ID == "" {
		role.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.roles.InsertOne(ctx, role); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoleExists
		}
		return nil, fmt.Errorf("insert role: %w", err)
	}
	return role, nil
}

func (r *AccessRepository) ListRoles(ctx context.Context) ([]*domain.RoleDefinition, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.roles.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer cur.Close(ctx)

	var roles []*domain.RoleDefinition
	for cur.Next(ctx) {
		var role domain.RoleDefinition
		if err := cur.Decode(&role); err != nil {
			return nil, fmt.Errorf("decode role: %w", err)
		}
		roles = append(roles, &role)
	}
	return roles, cur.Err()
}

func (r *AccessRepository) DeleteRole(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.roles.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

func (r *AccessRepository) CreatePermission(ctx context.Context, p *domain.Permission) (*domain.Permission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.permissions.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPermissionExists
		}
		return nil, fmt.Errorf("insert permission: %w", err)
	}
	return p, nil
}

func (r *AccessRepository) ListPermissions(ctx context.Context) ([]*domain.Permission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.permissions.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer cur.Close(ctx)

	var perms []*domain.Permission
	for cur.Next(ctx) {
		var p domain.Permission
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode permission: %w", err)
		}
		perms = append(perms, &p)
	}
	return perms, cur.Err()
}

func (r *AccessRepository) DeletePermission(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.permissions.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPermissionNotFound
	}
	return nil
}

// EnsureIndexes creates unique name indexes for roles and permissions.
func (r *AccessRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	uniqueName := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.roles.Indexes().CreateOne(ctx, uniqueName); err != nil {
		return err
	}
	_, err := r.permissions.Indexes().CreateOne(ctx, uniqueName)
	return err
}

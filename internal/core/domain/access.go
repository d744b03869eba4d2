package domain

import "errors"

var ErrRoleNotFound = errors.New("role not found")
var ErrRoleExists = errors.New("role already exists")
var ErrPermissionNotFound = errors.New("permission not found")
var ErrPermissionExists = errors.New("permission already exists")

// RoleDefinition is an administrable role with its granted permissions.
// Distinct from the closed role enumeration a User carries: definitions are
// what administrators manage on the access-control screens.
type RoleDefinition struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	Name        string       `json:"name" bson:"name"`
	Permissions []Permission `json:"permissions" bson:"permissions"`
}

// Permission is a named capability attachable to a role definition.
type Permission struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

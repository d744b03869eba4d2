package client

import (
	"context"
	"net/http"
	"net/url"
)

// NameInput is the payload for creating a role or permission.
type NameInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ListRoles returns all role definitions. Admin only.
func (c *Client) ListRoles(ctx context.Context) ([]RoleDefinition, error) {
	var items []RoleDefinition
	if _, err := c.getList(ctx, "/api/roles", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateRole defines a new role.
func (c *Client) CreateRole(ctx context.Context, input NameInput) (*RoleDefinition, error) {
	var role RoleDefinition
	if err := c.do(ctx, http.MethodPost, "/api/roles", input, &role, requestOptions{}); err != nil {
		return nil, err
	}
	return &role, nil
}

// DeleteRole removes a role definition by name.
func (c *Client) DeleteRole(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/api/roles/"+url.PathEscape(name), nil, nil, requestOptions{})
}

// ListPermissions returns all permissions. Admin only.
func (c *Client) ListPermissions(ctx context.Context) ([]Permission, error) {
	var items []Permission
	if _, err := c.getList(ctx, "/api/permissions", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreatePermission defines a new permission.
func (c *Client) CreatePermission(ctx context.Context, input NameInput) (*Permission, error) {
	var permission Permission
	if err := c.do(ctx, http.MethodPost, "/api/permissions", input, &permission, requestOptions{}); err != nil {
		return nil, err
	}
	return &permission, nil
}

// DeletePermission removes a permission by name.
func (c *Client) DeletePermission(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/api/permissions/"+url.PathEscape(name), nil, nil, requestOptions{})
}

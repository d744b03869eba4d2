package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/colisexpress/delivery-system/internal/core/domain"
	"github.com/colisexpress/delivery-system/internal/core/ports"
)

// AccessHandler handles role and permission administration (admin only).
type AccessHandler struct {
	service ports.AccessService
}

func NewAccessHandler(service ports.AccessService) *AccessHandler {
	return &AccessHandler{service: service}
}

type nameRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// ListRoles handles GET /api/roles.
//
// @Summary      List role definitions
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.RoleDefinition
// @Router       /api/roles [get]
func (h *AccessHandler) ListRoles(c echo.Context) error {
	roles, err := h.service.ListRoles(c.Request().Context())
	if err != nil {
		return err
	}
	if roles == nil {
		roles = []*domain.RoleDefinition{}
	}
	return c.JSON(http.StatusOK, roles)
}

// CreateRole handles POST /api/roles.
//
// @Summary      Create a role definition
// @Tags         access
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      nameRequest  true  "Role name"
// @Success      201   {object}  domain.RoleDefinition
// @Failure      409   {object}  map[string]string
// @Router       /api/roles [post]
func (h *AccessHandler) CreateRole(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.service.CreateRole(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, role)
}

// DeleteRole handles DELETE /api/roles/:name.
//
// @Summary      Delete a role definition
// @Tags         access
// @Security     BearerAuth
// @Param        name  path  string  true  "Role name"
// @Success      204  "role deleted"
// @Router       /api/roles/{name} [delete]
func (h *AccessHandler) DeleteRole(c echo.Context) error {
	if err := h.service.DeleteRole(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListPermissions handles GET /api/permissions.
//
// @Summary      List permissions
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Permission
// @Router       /api/permissions [get]
func (h *AccessHandler) ListPermissions(c echo.Context) error {
	perms, err := h.service.ListPermissions(c.Request().Context())
	if err != nil {
		return err
	}
	if perms == nil {
		perms = []*domain.Permission{}
	}
	return c.JSON(http.StatusOK, perms)
}

// CreatePermission handles POST /api/permissions.
//
// @Summary      Create a permission
// @Tags         access
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      nameRequest  true  "Permission name"
// @Success      201   {object}  domain.Permission
// @Failure      409   {object}  map[string]string
// @Router       /api/permissions [post]
func (h *AccessHandler) CreatePermission(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	perm, err := h.service.CreatePermission(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, perm)
}

// DeletePermission handles DELETE /api/permissions/:name.
//
// @Summary      Delete a permission
// @Tags         access
// @Security     BearerAuth
// @Param        name  path  string  true  "Permission name"
// @Success      204  "permission deleted"
// @Router       /api/permissions/{name} [delete]
func (h *AccessHandler) DeletePermission(c echo.Context) error {
	if err := h.service.DeletePermission(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

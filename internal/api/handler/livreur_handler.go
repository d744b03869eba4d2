package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/colisexpress/delivery-system/internal/core/domain"
	"github.com/colisexpress/delivery-system/internal/core/ports"
)

// LivreurHandler handles HTTP requests for livreur management.
type LivreurHandler struct {
	service ports.LivreurService
}

func NewLivreurHandler(service ports.LivreurService) *LivreurHandler {
	return &LivreurHandler{service: service}
}

type livreurRequest struct {
	Nom       string `json:"nom" validate:"required"`
	Prenom    string `json:"prenom" validate:"required"`
	Telephone string `json:"telephone" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Vehicule  string `json:"vehicule" validate:"required"`
	ZoneID    string `json:"zone_id,omitempty"`
}

func (r livreurRequest) toInput() ports.LivreurInput {
	return ports.LivreurInput{
		Nom:       r.Nom,
		Prenom:    r.Prenom,
		Telephone: r.Telephone,
		Email:     r.Email,
		Vehicule:  r.Vehicule,
		ZoneID:    r.ZoneID,
	}
}

// List handles GET /api/livreurs.
//
// @Summary      List livreurs
// @Tags         livreurs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  pageResponse
// @Router       /api/livreurs [get]
func (h *LivreurHandler) List(c echo.Context) error {
	livreurs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if livreurs == nil {
		livreurs = []*domain.Livreur{}
	}
	return c.JSON(http.StatusOK, pageResponse{
		Content:       livreurs,
		TotalElements: int64(len(livreurs)),
		TotalPages:    1,
		Number:        1,
		Size:          len(livreurs),
	})
}

// Get handles GET /api/livreurs/:id.
//
// @Summary      Get a livreur
// @Tags         livreurs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Livreur id"
// @Success      200  {object}  domain.Livreur
// @Failure      404  {object}  map[string]string
// @Router       /api/livreurs/{id} [get]
func (h *LivreurHandler) Get(c echo.Context) error {
	livreur, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, livreur)
}

// Create handles POST /api/livreurs/create.
//
// @Summary      Create a livreur
// @Tags         livreurs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      livreurRequest  true  "Livreur details"
// @Success      201   {object}  domain.Livreur
// @Failure      422   {object}  map[string]string
// @Router       /api/livreurs/create [post]
func (h *LivreurHandler) Create(c echo.Context) error {
	var req livreurRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	livreur, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, livreur)
}

// Update handles PUT /api/livreurs/:id/update.
//
// @Summary      Update a livreur
// @Tags         livreurs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string          true  "Livreur id"
// @Param        body  body  livreurRequest  true  "New livreur details"
// @Success      200   {object}  domain.Livreur
// @Router       /api/livreurs/{id}/update [put]
func (h *LivreurHandler) Update(c echo.Context) error {
	var req livreurRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	livreur, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, livreur)
}

// Delete handles DELETE /api/livreurs/:id/delete.
//
// @Summary      Delete a livreur
// @Tags         livreurs
// @Security     BearerAuth
// @Param        id  path  string  true  "Livreur id"
// @Success      204  "livreur deleted"
// @Router       /api/livreurs/{id}/delete [delete]
func (h *LivreurHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

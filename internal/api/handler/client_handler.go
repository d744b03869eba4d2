package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/colisexpress/delivery-system/internal/core/domain"
	"github.com/colisexpress/delivery-system/internal/core/ports"
)

// ClientHandler handles HTTP requests for client-account management.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

type clientRequest struct {
	Nom       string `json:"nom" validate:"required"`
	Prenom    string `json:"prenom" validate:"required"`
	Telephone string `json:"telephone" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Adresse   string `json:"adresse" validate:"required"`
}

// List handles GET /api/clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  pageResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if clients == nil {
		clients = []*domain.ClientAccount{}
	}
	return c.JSON(http.StatusOK, pageResponse{
		Content:       clients,
		TotalElements: int64(len(clients)),
		TotalPages:    1,
		Number:        1,
		Size:          len(clients),
	})
}

// Get handles GET /api/clients/:id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Client id"
// @Success      200  {object}  domain.ClientAccount
// @Failure      404  {object}  map[string]string
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Create handles POST /api/clients.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientRequest  true  "Client details"
// @Success      201   {object}  domain.ClientAccount
// @Failure      422   {object}  map[string]string
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	client, err := h.service.Create(c.Request().Context(), ports.ClientInput{
		Nom:       req.Nom,
		Prenom:    req.Prenom,
		Telephone: req.Telephone,
		Email:     req.Email,
		Adresse:   req.Adresse,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// Delete handles DELETE /api/clients/:id.
//
// @Summary      Delete a client
// @Tags         clients
// @Security     BearerAuth
// @Param        id  path  string  true  "Client id"
// @Success      204  "client deleted"
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/colisexpress/delivery-system/internal/api/metrics"
	"github.com/colisexpress/delivery-system/internal/core/domain"
	"github.com/colisexpress/delivery-system/internal/core/ports"
)

// ColisHandler handles HTTP requests for colis operations.
type ColisHandler struct {
	service ports.ColisService
}

func NewColisHandler(service ports.ColisService) *ColisHandler {
	return &ColisHandler{service: service}
}

// Create handles POST /api/colis/create.
//
// @Summary      Create a colis
// @Tags         colis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createColisRequest  true  "Colis details"
// @Success      201   {object}  createColisResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/colis/create [post]
func (h *ColisHandler) Create(c echo.Context) error {
	_, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createColisRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), toCreateColisInput(req, userID, c.Request().Header.Get("Idempotency-Key")))
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	} else {
		metrics.ColisCreatedTotal.WithLabelValues(req.Priority).Inc()
	}

	return c.JSON(status, createColisResponse{
		ID:          result.ID,
		Reference:   result.Reference,
		Status:      result.Status,
		CreatedAt:   result.CreatedAt.UTC().Format(time.RFC3339),
		EstimatedAt: result.EstimatedAt.UTC().Format(time.RFC3339),
	})
}

// List handles GET /api/colis. All colis, paginated (admin/manager).
//
// @Summary      List colis
// @Tags         colis
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  pageResponse
// @Router       /api/colis [get]
func (h *ColisHandler) List(c echo.Context) error {
	role, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return h.list(c, listParams(c, role, userID))
}

// ListMine handles GET /api/colis/myColis, the caller's own colis: sent
// colis for clients, assigned colis for livreurs.
//
// @Summary      List own colis
// @Tags         colis
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  pageResponse
// @Router       /api/colis/myColis [get]
func (h *ColisHandler) ListMine(c echo.Context) error {
	role, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	input := listParams(c, role, userID)
	// Force owner scoping even for privileged roles.
	switch role {
	case domain.RoleLivreur:
		input.Role = domain.RoleLivreur
		input.LivreurID = userID
	default:
		input.Role = domain.RoleClient
		input.ClientID = userID
	}
	return h.list(c, input)
}

// ListByUser handles GET /api/colis/user/:userId (admin/manager).
//
// @Summary      List colis sent by a given user
// @Tags         colis
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "User id"
// @Success      200  {object}  pageResponse
// @Router       /api/colis/user/{userId} [get]
func (h *ColisHandler) ListByUser(c echo.Context) error {
	role, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	input := listParams(c, role, userID)
	input.Role = domain.RoleClient
	input.ClientID = c.Param("userId")
	return h.list(c, input)
}

func (h *ColisHandler) list(c echo.Context, input ports.ListColisInput) error {
	page, err := h.service.List(c.Request().Context(), input)
	if err != nil {
		return err
	}

	items := page.Items
	if items == nil {
		items = []*domain.Colis{}
	}
	return c.JSON(http.StatusOK, pageResponse{
		Content:       items,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		Number:        page.Page,
		Size:          page.Size,
	})
}

// Get handles GET /api/colis/:id.
//
// @Summary      Get a colis
// @Tags         colis
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Colis id"
// @Success      200  {object}  domain.Colis
// @Failure      404  {object}  map[string]string
// @Router       /api/colis/{id} [get]
func (h *ColisHandler) Get(c echo.Context) error {
	role, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	colis, err := h.service.Get(c.Request().Context(), ports.GetColisInput{
		ID:       c.Param("id"),
		Role:     role,
		ClientID: userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, colis)
}

// Update handles PUT /api/colis/:id/update.
//
// @Summary      Update a colis
// @Tags         colis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string              true  "Colis id"
// @Param        body  body  updateColisRequest  true  "New colis details"
// @Success      200   {object}  domain.Colis
// @Router       /api/colis/{id}/update [put]
func (h *ColisHandler) Update(c echo.Context) error {
	role, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateColisRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	colis, err := h.service.Update(c.Request().Context(), toUpdateColisInput(req, c.Param("id"), role, userID))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, colis)
}

// ChangeStatus handles PUT /api/colis/:id/status/:status.
//
// @Summary      Transition a colis to a new status
// @Tags         colis
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string  true  "Colis id"
// @Param        status  path  string  true  "New status"
// @Success      204  "status applied"
// @Failure      422  {object}  map[string]string
// @Router       /api/colis/{id}/status/{status} [put]
func (h *ColisHandler) ChangeStatus(c echo.Context) error {
	role, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	status := c.Param("status")
	err = h.service.ChangeStatus(c.Request().Context(), ports.ChangeStatusInput{
		ID:          c.Param("id"),
		Status:      status,
		Commentaire: c.QueryParam("commentaire"),
		Role:        role,
		LivreurID:   userID,
	})
	if err != nil {
		return err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(status).Inc()
	return c.NoContent(http.StatusNoContent)
}

// AssignLivreur handles POST /api/livraison/:colisId/livreur/:livreurId.
//
// @Summary      Assign a livreur to a colis
// @Tags         livraison
// @Produce      json
// @Security     BearerAuth
// @Param        colisId    path  string  true  "Colis id"
// @Param        livreurId  path  string  true  "Livreur id"
// @Success      204  "livreur assigned"
// @Failure      422  {object}  map[string]string
// @Router       /api/livraison/{colisId}/livreur/{livreurId} [post]
func (h *ColisHandler) AssignLivreur(c echo.Context) error {
	if err := h.service.AssignLivreur(c.Request().Context(), c.Param("colisId"), c.Param("livreurId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/colis/:id/delete.
//
// @Summary      Delete a colis
// @Tags         colis
// @Security     BearerAuth
// @Param        id  path  string  true  "Colis id"
// @Success      204  "colis deleted"
// @Router       /api/colis/{id}/delete [delete]
func (h *ColisHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// listParams collects the common query parameters of the list endpoints.
func listParams(c echo.Context, role, userID string) ports.ListColisInput {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("size"))

	input := ports.ListColisInput{
		Role:     role,
		Status:   c.QueryParam("status"),
		Priority: c.QueryParam("priority"),
		Search:   c.QueryParam("search"),
		Page:     page,
		Limit:    limit,
	}
	switch role {
	case domain.RoleClient:
		input.ClientID = userID
	case domain.RoleLivreur:
		input.LivreurID = userID
	}
	if from := c.QueryParam("date_from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			input.DateFrom = t
		}
	}
	if to := c.QueryParam("date_to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			input.DateTo = t
		}
	}
	return input
}

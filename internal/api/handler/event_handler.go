package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/colisexpress/delivery-system/internal/core/ports"
)

// EventDispatcher is the interface the handler uses to enqueue events.
type EventDispatcher interface {
	Enqueue(event ports.DeliveryEventInput)
	EnqueueBatch(events []ports.DeliveryEventInput)
}

// EventHandler handles delivery event ingestion from livreur devices.
type EventHandler struct {
	dispatcher EventDispatcher
}

// NewEventHandler creates an EventHandler backed by the given dispatcher.
func NewEventHandler(dispatcher EventDispatcher) *EventHandler {
	return &EventHandler{dispatcher: dispatcher}
}

// Receive handles POST /api/events. Enqueues a single event and returns 202.
//
// @Summary      Ingest a single delivery event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deliveryEventRequest  true  "Delivery event"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/events [post]
func (h *EventHandler) Receive(c echo.Context) error {
	var req deliveryEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	input, err := toEventInput(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(input)
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "event accepted"})
}

// ReceiveBatch handles POST /api/events/batch. Enqueues a batch and returns 202.
//
// @Summary      Ingest a batch of delivery events
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []deliveryEventRequest  true  "Delivery events"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/events/batch [post]
func (h *EventHandler) ReceiveBatch(c echo.Context) error {
	var reqs []deliveryEventRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	inputs := make([]ports.DeliveryEventInput, 0, len(reqs))
	for _, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		input, err := toEventInput(req)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		inputs = append(inputs, input)
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "events accepted", Count: len(inputs)})
}

func toEventInput(req deliveryEventRequest) (ports.DeliveryEventInput, error) {
	ts, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		return ports.DeliveryEventInput{}, err
	}
	return ports.DeliveryEventInput{
		ColisID:     req.ColisID,
		Status:      req.Status,
		Timestamp:   ts,
		Source:      req.Source,
		Commentaire: req.Commentaire,
	}, nil
}

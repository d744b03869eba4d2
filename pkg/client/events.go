package client

import (
	"context"
	"net/http"
	"time"
)

// DeliveryEvent is a field status report for a colis, typically sent from a
// livreur's device.
type DeliveryEvent struct {
	ColisID     string `json:"colis_id"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Source      string `json:"source"`
	Commentaire string `json:"commentaire,omitempty"`
}

// NewDeliveryEvent builds an event stamped with the given time in RFC 3339.
func NewDeliveryEvent(colisID, status, source string, at time.Time) DeliveryEvent {
	return DeliveryEvent{
		ColisID:   colisID,
		Status:    status,
		Source:    source,
		Timestamp: at.UTC().Format(time.RFC3339),
	}
}

// SendEvent submits a single delivery event for asynchronous processing.
func (c *Client) SendEvent(ctx context.Context, event DeliveryEvent) error {
	return c.do(ctx, http.MethodPost, "/api/events", event, nil, requestOptions{})
}

// SendEvents submits a batch of delivery events, preserving per-colis order.
func (c *Client) SendEvents(ctx context.Context, events []DeliveryEvent) error {
	return c.do(ctx, http.MethodPost, "/api/events/batch", events, nil, requestOptions{})
}

package ports

import (
	"context"
	"time"
)

// DeliveryEventInput is the DTO passed from the transport layer to the
// delivery-event service.
type DeliveryEventInput struct {
	ColisID     string
	Status      string
	Timestamp   time.Time
	Source      string
	Commentaire string
}

// DeliveryEventService processes incoming delivery status events.
type DeliveryEventService interface {
	Process(ctx context.Context, event DeliveryEventInput) error
}

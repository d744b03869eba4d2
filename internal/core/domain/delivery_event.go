package domain

import "time"

// DeliveryEvent represents a status update reported for a colis, typically
// from a livreur's device in the field.
type DeliveryEvent struct {
	ColisID     string
	Status      ColisStatus
	Timestamp   time.Time
	Source      string
	Commentaire string
}

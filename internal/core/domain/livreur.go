package domain

import (
	"errors"
	"time"
)

var ErrLivreurNotFound = errors.New("livreur not found")
var ErrLivreurExists = errors.New("livreur already exists")

// Livreur is a delivery person able to take colis assignments.
type Livreur struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Nom       string    `json:"nom" bson:"nom"`
	Prenom    string    `json:"prenom" bson:"prenom"`
	Telephone string    `json:"telephone" bson:"telephone"`
	Email     string    `json:"email" bson:"email"`
	Vehicule  string    `json:"vehicule" bson:"vehicule"`
	ZoneID    string    `json:"zone_id,omitempty" bson:"zone_id,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

package domain

import (
	"errors"
	"time"
)

var ErrClientNotFound = errors.New("client not found")
var ErrClientExists = errors.New("client already exists")

// ClientAccount is a customer who sends colis. Named to avoid clashing with
// the "client" role string carried by User.
type ClientAccount struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Nom       string    `json:"nom" bson:"nom"`
	Prenom    string    `json:"prenom" bson:"prenom"`
	Telephone string    `json:"telephone" bson:"telephone"`
	Email     string    `json:"email" bson:"email"`
	Adresse   string    `json:"adresse" bson:"adresse"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

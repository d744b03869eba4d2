package domain

import (
	"errors"
	"time"
)

// ColisStatus represents the lifecycle state of a colis.
type ColisStatus string

const (
	StatusCree        ColisStatus = "CREE"
	StatusPreparation ColisStatus = "PREPARATION"
	StatusEnCours     ColisStatus = "EN_COURS"
	StatusLivre       ColisStatus = "LIVRE"
	StatusRetourne    ColisStatus = "RETOURNE"
	StatusAnnule      ColisStatus = "ANNULE"
)

// ColisPriority is the requested delivery speed.
type ColisPriority string

const (
	PriorityExpress ColisPriority = "EXPRESS"
	PriorityNormal  ColisPriority = "NORMAL"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[ColisStatus][]ColisStatus{
	StatusCree:        {StatusPreparation, StatusAnnule},
	StatusPreparation: {StatusEnCours, StatusAnnule},
	StatusEnCours:     {StatusLivre, StatusRetourne},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrColisNotFound = errors.New("colis not found")
var ErrColisNotAssignable = errors.New("colis cannot be assigned in its current status")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s ColisStatus) CanTransitionTo(next ColisStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidStatus reports whether status is a known lifecycle state.
func ValidStatus(status ColisStatus) bool {
	switch status {
	case StatusCree, StatusPreparation, StatusEnCours, StatusLivre, StatusRetourne, StatusAnnule:
		return true
	}
	return false
}

// Produit is a single item inside a colis.
type Produit struct {
	Nom      string  `json:"nom" bson:"nom"`
	Quantite int     `json:"quantite" bson:"quantite"`
	Poids    float64 `json:"poids,omitempty" bson:"poids,omitempty"`
}

// Destinataire is the recipient of a colis.
type Destinataire struct {
	Nom       string `json:"nom" bson:"nom"`
	Prenom    string `json:"prenom" bson:"prenom"`
	Telephone string `json:"telephone" bson:"telephone"`
	Email     string `json:"email,omitempty" bson:"email,omitempty"`
	Adresse   string `json:"adresse" bson:"adresse"`
}

// Zone is the delivery zone a colis is routed through.
type Zone struct {
	CodePostal string `json:"code_postal" bson:"code_postal"`
	Ville      string `json:"ville,omitempty" bson:"ville,omitempty"`
}

// HistoriqueEntry records a single status transition on a colis.
type HistoriqueEntry struct {
	Status      ColisStatus `json:"status" bson:"status"`
	Timestamp   time.Time   `json:"timestamp" bson:"timestamp"`
	Commentaire string      `json:"commentaire,omitempty" bson:"commentaire,omitempty"`
}

// Colis is the core aggregate root: a package tracked through its
// delivery lifecycle.
type Colis struct {
	ID             string            `json:"id" bson:"_id,omitempty"`
	Reference      string            `json:"reference" bson:"reference"`
	ClientID       string            `json:"client_id" bson:"client_id"`
	LivreurID      string            `json:"livreur_id,omitempty" bson:"livreur_id,omitempty"`
	Poids          float64           `json:"poids" bson:"poids"`
	Description    string            `json:"description" bson:"description"`
	Destination    string            `json:"destination" bson:"destination"`
	Priority       ColisPriority     `json:"priority" bson:"priority"`
	Status         ColisStatus       `json:"status" bson:"status"`
	Produits       []Produit         `json:"produits" bson:"produits"`
	Destinataire   Destinataire      `json:"destinataire" bson:"destinataire"`
	Zone           Zone              `json:"zone" bson:"zone"`
	Historique     []HistoriqueEntry `json:"historique_livraison" bson:"historique_livraison"`
	CreatedAt      time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" bson:"updated_at"`
	EstimatedAt    time.Time         `json:"estimated_delivery" bson:"estimated_delivery"`
	IdempotencyKey string            `json:"idempotency_key,omitempty" bson:"idempotency_key,omitempty"`
}

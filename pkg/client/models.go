package client

import "time"

// PageInfo carries the pagination metadata of a list response. Zero-valued
// when the server returned a plain array.
type PageInfo struct {
	TotalElements int64
	TotalPages    int
	Number        int
	Size          int
}

// UserRecord is a user account as managed by administrators.
type UserRecord struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Nom       string    `json:"nom,omitempty"`
	Prenom    string    `json:"prenom,omitempty"`
	Telephone string    `json:"telephone,omitempty"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Produit is a product line inside a colis.
type Produit struct {
	Nom      string  `json:"nom"`
	Quantite int     `json:"quantite"`
	Poids    float64 `json:"poids,omitempty"`
}

// Destinataire is the recipient of a colis.
type Destinataire struct {
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Telephone string `json:"telephone"`
	Email     string `json:"email,omitempty"`
	Adresse   string `json:"adresse"`
}

// Zone is the delivery zone a colis is routed through.
type Zone struct {
	CodePostal string `json:"code_postal"`
	Ville      string `json:"ville,omitempty"`
}

// HistoriqueEntry is one status change in a colis's delivery history.
type HistoriqueEntry struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Commentaire string    `json:"commentaire,omitempty"`
}

// Colis is a package tracked through the delivery lifecycle.
type Colis struct {
	ID           string            `json:"id"`
	Reference    string            `json:"reference"`
	ClientID     string            `json:"client_id"`
	LivreurID    string            `json:"livreur_id,omitempty"`
	Poids        float64           `json:"poids"`
	Description  string            `json:"description"`
	Destination  string            `json:"destination"`
	Priority     string            `json:"priority"`
	Status       string            `json:"status"`
	Produits     []Produit         `json:"produits"`
	Destinataire Destinataire      `json:"destinataire"`
	Zone         Zone              `json:"zone"`
	Historique   []HistoriqueEntry `json:"historique_livraison"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	EstimatedAt  time.Time         `json:"estimated_delivery"`
}

// Livreur is a delivery person.
type Livreur struct {
	ID        string    `json:"id"`
	Nom       string    `json:"nom"`
	Prenom    string    `json:"prenom"`
	Telephone string    `json:"telephone"`
	Email     string    `json:"email"`
	Vehicule  string    `json:"vehicule"`
	ZoneID    string    `json:"zone_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientAccount is a sender account managed by staff.
type ClientAccount struct {
	ID        string    `json:"id"`
	Nom       string    `json:"nom"`
	Prenom    string    `json:"prenom"`
	Telephone string    `json:"telephone"`
	Email     string    `json:"email"`
	Adresse   string    `json:"adresse"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoleDefinition is a named role and its permissions.
type RoleDefinition struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}

// Permission is a named capability.
type Permission struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

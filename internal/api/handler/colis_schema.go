package handler

// --- Request / Response types ---

type produitRequest struct {
	Nom      string  `json:"nom" validate:"required"`
	Quantite int     `json:"quantite" validate:"required,gt=0"`
	Poids    float64 `json:"poids,omitempty"`
}

type destinataireRequest struct {
	Nom       string `json:"nom" validate:"required"`
	Prenom    string `json:"prenom" validate:"required"`
	Telephone string `json:"telephone" validate:"required"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Adresse   string `json:"adresse" validate:"required"`
}

type createColisRequest struct {
	Poids        float64             `json:"poids" validate:"required,gt=0"`
	Description  string              `json:"description" validate:"required"`
	Destination  string              `json:"destination" validate:"required"`
	Priority     string              `json:"priority" validate:"required,oneof=EXPRESS NORMAL"`
	CodePostal   string              `json:"code_postal,omitempty"`
	Produits     []produitRequest    `json:"produits" validate:"dive"`
	Destinataire destinataireRequest `json:"destinataire" validate:"required"`
}

type updateColisRequest struct {
	Poids        float64             `json:"poids" validate:"required,gt=0"`
	Description  string              `json:"description" validate:"required"`
	Destination  string              `json:"destination" validate:"required"`
	Priority     string              `json:"priority" validate:"omitempty,oneof=EXPRESS NORMAL"`
	Produits     []produitRequest    `json:"produits" validate:"dive"`
	Destinataire destinataireRequest `json:"destinataire" validate:"required"`
}

type createColisResponse struct {
	ID          string `json:"id"`
	Reference   string `json:"reference"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	EstimatedAt string `json:"estimated_delivery"`
}

// pageResponse is the Spring-style pagination envelope list endpoints return.
// Existing dashboard front-ends unwrap the content field.
type pageResponse struct {
	Content       interface{} `json:"content"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
	Number        int         `json:"number"`
	Size          int         `json:"size"`
}

type deliveryEventRequest struct {
	ColisID     string `json:"colis_id" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=PREPARATION EN_COURS LIVRE RETOURNE ANNULE"`
	Timestamp   string `json:"timestamp" validate:"required"`
	Source      string `json:"source" validate:"required"`
	Commentaire string `json:"commentaire,omitempty"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

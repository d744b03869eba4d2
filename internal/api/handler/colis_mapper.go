package handler

import (
	"github.com/colisexpress/delivery-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateColisInput(req createColisRequest, clientID, idempotencyKey string) ports.CreateColisInput {
	return ports.CreateColisInput{
		ClientID:       clientID,
		Poids:          req.Poids,
		Description:    req.Description,
		Destination:    req.Destination,
		Priority:       req.Priority,
		CodePostal:     req.CodePostal,
		Produits:       toProduitInputs(req.Produits),
		Destinataire:   toDestinataireInput(req.Destinataire),
		IdempotencyKey: idempotencyKey,
	}
}

func toUpdateColisInput(req updateColisRequest, id, role, clientID string) ports.UpdateColisInput {
	return ports.UpdateColisInput{
		ID:           id,
		Poids:        req.Poids,
		Description:  req.Description,
		Destination:  req.Destination,
		Priority:     req.Priority,
		Produits:     toProduitInputs(req.Produits),
		Destinataire: toDestinataireInput(req.Destinataire),
		Role:         role,
		ClientID:     clientID,
	}
}

func toProduitInputs(produits []produitRequest) []ports.ProduitInput {
	out := make([]ports.ProduitInput, len(produits))
	for i, p := range produits {
		out[i] = ports.ProduitInput{Nom: p.Nom, Quantite: p.Quantite, Poids: p.Poids}
	}
	return out
}

func toDestinataireInput(d destinataireRequest) ports.DestinataireInput {
	return ports.DestinataireInput{
		Nom:       d.Nom,
		Prenom:    d.Prenom,
		Telephone: d.Telephone,
		Email:     d.Email,
		Adresse:   d.Adresse,
	}
}

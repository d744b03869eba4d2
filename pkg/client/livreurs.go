package client

import (
	"context"
	"net/http"
	"net/url"
)

// LivreurInput is the payload for creating or updating a livreur.
type LivreurInput struct {
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Telephone string `json:"telephone"`
	Email     string `json:"email"`
	Vehicule  string `json:"vehicule"`
	ZoneID    string `json:"zone_id,omitempty"`
}

// ListLivreurs returns all livreurs. Staff only.
func (c *Client) ListLivreurs(ctx context.Context) ([]Livreur, error) {
	var items []Livreur
	if _, err := c.getList(ctx, "/api/livreurs", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetLivreur returns one livreur by id.
func (c *Client) GetLivreur(ctx context.Context, id string) (*Livreur, error) {
	var livreur Livreur
	if err := c.do(ctx, http.MethodGet, "/api/livreurs/"+url.PathEscape(id), nil, &livreur, requestOptions{}); err != nil {
		return nil, err
	}
	return &livreur, nil
}

// CreateLivreur registers a new livreur.
func (c *Client) CreateLivreur(ctx context.Context, input LivreurInput) (*Livreur, error) {
	var livreur Livreur
	if err := c.do(ctx, http.MethodPost, "/api/livreurs/create", input, &livreur, requestOptions{}); err != nil {
		return nil, err
	}
	return &livreur, nil
}

// UpdateLivreur replaces a livreur's details.
func (c *Client) UpdateLivreur(ctx context.Context, id string, input LivreurInput) (*Livreur, error) {
	var livreur Livreur
	if err := c.do(ctx, http.MethodPut, "/api/livreurs/"+url.PathEscape(id)+"/update", input, &livreur, requestOptions{}); err != nil {
		return nil, err
	}
	return &livreur, nil
}

// DeleteLivreur removes a livreur.
func (c *Client) DeleteLivreur(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/livreurs/"+url.PathEscape(id)+"/delete", nil, nil, requestOptions{})
}

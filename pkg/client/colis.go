package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListColisOptions are the query parameters of the colis list endpoints.
// Zero values are omitted from the request.
type ListColisOptions struct {
	Page     int
	Size     int
	Status   string
	Priority string
	Search   string
}

func (o ListColisOptions) query() string {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Size > 0 {
		q.Set("size", strconv.Itoa(o.Size))
	}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	if o.Priority != "" {
		q.Set("priority", o.Priority)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// CreateColisInput is the payload for creating a colis.
type CreateColisInput struct {
	Poids        float64      `json:"poids"`
	Description  string       `json:"description"`
	Destination  string       `json:"destination"`
	Priority     string       `json:"priority"`
	CodePostal   string       `json:"code_postal,omitempty"`
	Produits     []Produit    `json:"produits"`
	Destinataire Destinataire `json:"destinataire"`
}

// CreateColisResult is the creation acknowledgment.
type CreateColisResult struct {
	ID          string `json:"id"`
	Reference   string `json:"reference"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	EstimatedAt string `json:"estimated_delivery"`
}

// ListColis returns all colis, paginated. Staff only.
func (c *Client) ListColis(ctx context.Context, opts ListColisOptions) ([]Colis, PageInfo, error) {
	var items []Colis
	page, err := c.getList(ctx, "/api/colis"+opts.query(), &items)
	if err != nil {
		return nil, PageInfo{}, err
	}
	return items, page, nil
}

// MyColis returns the caller's own colis: sent colis for clients, assigned
// colis for livreurs.
func (c *Client) MyColis(ctx context.Context, opts ListColisOptions) ([]Colis, PageInfo, error) {
	var items []Colis
	page, err := c.getList(ctx, "/api/colis/myColis"+opts.query(), &items)
	if err != nil {
		return nil, PageInfo{}, err
	}
	return items, page, nil
}

// ColisByUser returns the colis sent by the given user. Staff only.
func (c *Client) ColisByUser(ctx context.Context, userID string, opts ListColisOptions) ([]Colis, PageInfo, error) {
	var items []Colis
	page, err := c.getList(ctx, "/api/colis/user/"+url.PathEscape(userID)+opts.query(), &items)
	if err != nil {
		return nil, PageInfo{}, err
	}
	return items, page, nil
}

// GetColis returns one colis by id.
func (c *Client) GetColis(ctx context.Context, id string) (*Colis, error) {
	var colis Colis
	if err := c.do(ctx, http.MethodGet, "/api/colis/"+url.PathEscape(id), nil, &colis, requestOptions{}); err != nil {
		return nil, err
	}
	return &colis, nil
}

// CreateColis creates a colis. A non-empty idempotencyKey lets the server
// replay the original acknowledgment on retries instead of creating twice.
func (c *Client) CreateColis(ctx context.Context, input CreateColisInput, idempotencyKey string) (*CreateColisResult, error) {
	opts := requestOptions{}
	if idempotencyKey != "" {
		opts.headers = map[string]string{"Idempotency-Key": idempotencyKey}
	}

	var result CreateColisResult
	if err := c.do(ctx, http.MethodPost, "/api/colis/create", input, &result, opts); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateColis replaces the editable fields of a colis.
func (c *Client) UpdateColis(ctx context.Context, id string, input CreateColisInput) (*Colis, error) {
	var colis Colis
	if err := c.do(ctx, http.MethodPut, "/api/colis/"+url.PathEscape(id)+"/update", input, &colis, requestOptions{}); err != nil {
		return nil, err
	}
	return &colis, nil
}

// ChangeColisStatus transitions a colis to a new lifecycle status.
func (c *Client) ChangeColisStatus(ctx context.Context, id, status, commentaire string) error {
	path := fmt.Sprintf("/api/colis/%s/status/%s", url.PathEscape(id), url.PathEscape(status))
	if commentaire != "" {
		path += "?commentaire=" + url.QueryEscape(commentaire)
	}
	return c.do(ctx, http.MethodPut, path, nil, nil, requestOptions{})
}

// AssignLivreur assigns a livreur to a colis. Staff only.
func (c *Client) AssignLivreur(ctx context.Context, colisID, livreurID string) error {
	path := fmt.Sprintf("/api/livraison/%s/livreur/%s", url.PathEscape(colisID), url.PathEscape(livreurID))
	return c.do(ctx, http.MethodPost, path, nil, nil, requestOptions{})
}

// DeleteColis removes a colis. Staff only.
func (c *Client) DeleteColis(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/colis/"+url.PathEscape(id)+"/delete", nil, nil, requestOptions{})
}

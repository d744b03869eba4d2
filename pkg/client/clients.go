package client

import (
	"context"
	"net/http"
	"net/url"
)

// ClientAccountInput is the payload for registering a sender account.
type ClientAccountInput struct {
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Telephone string `json:"telephone"`
	Email     string `json:"email"`
	Adresse   string `json:"adresse"`
}

// ListClients returns all sender accounts. Staff only.
func (c *Client) ListClients(ctx context.Context) ([]ClientAccount, error) {
	var items []ClientAccount
	if _, err := c.getList(ctx, "/api/clients", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetClient returns one sender account by id.
func (c *Client) GetClient(ctx context.Context, id string) (*ClientAccount, error) {
	var account ClientAccount
	if err := c.do(ctx, http.MethodGet, "/api/clients/"+url.PathEscape(id), nil, &account, requestOptions{}); err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateClient registers a new sender account.
func (c *Client) CreateClient(ctx context.Context, input ClientAccountInput) (*ClientAccount, error) {
	var account ClientAccount
	if err := c.do(ctx, http.MethodPost, "/api/clients", input, &account, requestOptions{}); err != nil {
		return nil, err
	}
	return &account, nil
}

// DeleteClient removes a sender account.
func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/clients/"+url.PathEscape(id), nil, nil, requestOptions{})
}

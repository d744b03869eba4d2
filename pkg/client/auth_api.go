package client

import (
	"context"
	"errors"
	"net/http"
)

// loginResponse tolerates the token field names different backends use.
type loginResponse struct {
	Token       string      `json:"token"`
	AccessToken string      `json:"access_token"`
	AltToken    string      `json:"accessToken"`
	User        *UserRecord `json:"user,omitempty"`
}

func (r loginResponse) token() string {
	switch {
	case r.Token != "":
		return r.Token
	case r.AccessToken != "":
		return r.AccessToken
	default:
		return r.AltToken
	}
}

// Login exchanges credentials for a bearer token. The call opts out of auth
// so a stale persisted token can never pollute a fresh login. A non-success
// status or a response with no token field is an AuthenticationError.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp, requestOptions{skipAuth: true})
	if err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) {
			return "", &AuthenticationError{Message: reqErr.Message}
		}
		return "", err
	}

	token := resp.token()
	if token == "" {
		return "", &AuthenticationError{Message: "login response carried no token"}
	}
	return token, nil
}

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
	Nom       string `json:"nom,omitempty"`
	Prenom    string `json:"prenom,omitempty"`
	Telephone string `json:"telephone,omitempty"`
}

// Register creates a new account. Unauthenticated by design, like Login.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*UserRecord, error) {
	var resp struct {
		User *UserRecord `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/register", input, &resp, requestOptions{skipAuth: true})
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

// ListUsers returns all user accounts. Admin only.
func (c *Client) ListUsers(ctx context.Context) ([]UserRecord, error) {
	var users []UserRecord
	if _, err := c.getList(ctx, "/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Package client is the HTTP gateway to the delivery API. It attaches the
// session's bearer token to every request, tears the session down on any 401,
// normalizes paginated responses, and unwraps server error bodies.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colisexpress/delivery-system/pkg/client/session"
)

const (
	defaultTimeout = 30 * time.Second
	loginPath      = "/login"
)

// Client is the single HTTP gateway. The token is read from the session store
// on every request rather than cached, so login and logout take effect
// immediately.
type Client struct {
	baseURL  string
	httpc    *http.Client
	store    session.Store
	navigate func(target string)
	log      zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithNavigate sets the hook invoked when a 401 forces navigation to the
// login entry point.
func WithNavigate(fn func(target string)) Option {
	return func(c *Client) {
		c.navigate = fn
	}
}

// WithLogger attaches a logger for request failures.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a Client talking to baseURL, reading credentials from store.
func New(baseURL string, store session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpc:    &http.Client{Timeout: defaultTimeout},
		store:    store,
		navigate: func(string) {},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// requestOptions controls per-call behavior for do.
type requestOptions struct {
	skipAuth bool
	headers  map[string]string
}

// do performs a request and decodes a 2xx JSON body into out (when non-nil).
// A 401 on an authenticated call clears the session, forces navigation to the
// login entry point, and fails with SessionExpiredError, regardless of which
// endpoint produced it.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, opts requestOptions) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range opts.headers {
		req.Header.Set(k, v)
	}

	if !opts.skipAuth {
		if token, _, err := c.store.Load(); err == nil {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("client: read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && !opts.skipAuth {
		_ = c.store.Clear()
		c.navigate(loginPath)
		return &SessionExpiredError{}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(data, resp.StatusCode)
		c.log.Debug().Str("method", method).Str("path", path).
			Int("status", resp.StatusCode).Str("message", msg).
			Msg("request failed")
		return &RequestError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the server-supplied message from an error body,
// trying the message field, then error, then falling back to status text.
func errorMessage(data []byte, status int) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return http.StatusText(status)
}

// pageEnvelope is the Spring-style pagination wrapper list endpoints return.
type pageEnvelope struct {
	Content       json.RawMessage `json:"content"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
	Number        int             `json:"number"`
	Size          int             `json:"size"`
}

// decodeList normalizes a list response into items. Enveloped responses are
// unwrapped to their content sequence; plain arrays pass through as-is with
// zero-valued page metadata.
func decodeList(data []byte, items interface{}) (PageInfo, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(data, items); err != nil {
			return PageInfo{}, fmt.Errorf("client: decode list: %w", err)
		}
		return PageInfo{}, nil
	}

	var env pageEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return PageInfo{}, fmt.Errorf("client: decode page: %w", err)
	}
	if env.Content != nil {
		if err := json.Unmarshal(env.Content, items); err != nil {
			return PageInfo{}, fmt.Errorf("client: decode page content: %w", err)
		}
	}
	return PageInfo{
		TotalElements: env.TotalElements,
		TotalPages:    env.TotalPages,
		Number:        env.Number,
		Size:          env.Size,
	}, nil
}

// getList performs a GET and normalizes the paginated or plain-array body.
func (c *Client) getList(ctx context.Context, path string, items interface{}) (PageInfo, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw, requestOptions{}); err != nil {
		return PageInfo{}, err
	}
	return decodeList(raw, items)
}

package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/tafuta/internal/common"
)

// Wire shapes shared with the HTTP stub server.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPClient implements API against a backend exposing
// POST /api/login, /api/register and /api/logout with JSON bodies.
// It maps 401 to common.ErrInvalidCredentials and 409 to
// common.ErrDuplicateAccount, preserving the mock's error taxonomy.
type HTTPClient struct {
	endpointURL string
	hc          *http.Client
}

func NewHTTPClient(endpointURL string) *HTTPClient {
	return &HTTPClient{endpointURL: endpointURL, hc: &http.Client{}}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*Result, error) {
	return c.authenticate(ctx, "/api/login", email, password)
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (*Result, error) {
	return c.authenticate(ctx, "/api/register", email, password)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	resp, err := c.post(ctx, "/api/logout", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("logout: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *HTTPClient) authenticate(ctx context.Context, path, email, password string) (*Result, error) {
	body, err := json.Marshal(CredentialsRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := c.post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var result Result
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return nil, fmt.Errorf("decode auth response: %w", err)
		}
		return &result, nil
	case http.StatusUnauthorized:
		return nil, common.ErrInvalidCredentials
	case http.StatusConflict:
		return nil, common.ErrDuplicateAccount
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("auth request failed: status %d: %s", resp.StatusCode, msg)
	}
}

func (c *HTTPClient) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.hc.Do(req)
}

package vaultsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to a passvault server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an account with a default vault.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AccountResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/v1/register", "", req)
	if err != nil {
		return nil, err
	}

	var account AccountResponse
	if err := decodeJSON(resp, &account, http.StatusCreated); err != nil {
		return nil, err
	}
	return &account, nil
}

// Login exchanges email and password for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.do(ctx, http.MethodPost, "/v1/login", "", LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var login LoginResponse
	if err := decodeJSON(resp, &login, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, &login), nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness checks if the service is ready to serve traffic.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

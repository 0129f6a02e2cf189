// Package api implements the HTTP client for the RefKeeper sync backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/refkeeper/refkeeper/pkg/api"
)

//go:generate go tool moq -out client_mock.go . ClientAPI

// ClientAPI is the remote sync client contract consumed by the orchestrator
// and the auth session layer. Any transport or HTTP-level failure surfaces as
// an error; the caller decides whether the attempt is retryable.
type ClientAPI interface {
	// Register creates a new account on the server
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// Login authenticates with username/password and returns a token pair
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// Refresh exchanges a refresh token for a fresh token pair
	Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error)

	// FetchFull downloads the complete remote dataset plus the server checkpoint
	FetchFull(ctx context.Context, accessToken string) (*api.FullFetchResponse, error)

	// Exchange submits pending local changes and receives server changes
	// accumulated since the given checkpoint
	Exchange(ctx context.Context, accessToken string, req api.ExchangeRequest) (*api.ExchangeResponse, error)

	// GetStatus returns the server's checkpoint and record counts
	GetStatus(ctx context.Context, accessToken string) (*api.StatusResponse, error)
}

// Client is the HTTP implementation of ClientAPI.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// NewClient creates an API client for the given server base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Authorization is not propagated across redirects by default
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register creates a new account on the server
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates with username/password
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh exchanges a refresh token for a fresh token pair
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	req := api.RefreshRequest{RefreshToken: refreshToken}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", "", req, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// FetchFull downloads the complete remote dataset
func (c *Client) FetchFull(ctx context.Context, accessToken string) (*api.FullFetchResponse, error) {
	var resp api.FullFetchResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/library/full", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("full fetch request failed: %w", err)
	}
	return &resp, nil
}

// Exchange submits pending local changes and receives server changes
func (c *Client) Exchange(ctx context.Context, accessToken string, req api.ExchangeRequest) (*api.ExchangeResponse, error) {
	var resp api.ExchangeResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/library/sync", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("exchange request failed: %w", err)
	}
	return &resp, nil
}

// GetStatus returns the server's checkpoint and record counts
func (c *Client) GetStatus(ctx context.Context, accessToken string) (*api.StatusResponse, error) {
	var resp api.StatusResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/library/status", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	return &resp, nil
}

// doRequest executes one HTTP request with JSON encoding on both sides
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

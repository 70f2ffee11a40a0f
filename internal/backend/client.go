package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/voyago/admin-panel/internal/config"
	"github.com/voyago/admin-panel/internal/domain"
	"github.com/voyago/admin-panel/internal/tokenstore"
)

// APIError carries a backend rejection: the response body's message field
// (or a generic fallback) plus the HTTP status.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.StatusCode)
}

// errNotAuthenticated is raised locally when an authenticated call is
// attempted with no stored token; no network call is made.
func errNotAuthenticated() *APIError {
	return &APIError{Message: "Not authenticated", StatusCode: http.StatusUnauthorized}
}

// Client handles communication with the travel-platform backend API. All
// business logic and authorization enforcement live on the other side of it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     tokenstore.Store
	log        *zap.Logger
}

// NewClient creates a backend client.
func NewClient(cfg config.BackendConfig, tokens tokenstore.Store, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.ClientTimeout(),
		},
		tokens: tokens,
		log:    logger,
	}
}

// AuthResponse is the login payload: the token pair plus a user summary.
type AuthResponse struct {
	AccessToken  string             `json:"accessToken"`
	RefreshToken string             `json:"refreshToken"`
	User         domain.UserSummary `json:"user"`
}

// Login authenticates against the backend. On success the returned token
// pair is persisted before the response is handed back.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, false, &resp); err != nil {
		return nil, err
	}
	if err := c.tokens.Save(ctx, resp.AccessToken, resp.RefreshToken); err != nil {
		c.log.Warn("token save failed", zap.Error(err))
	}
	return &resp, nil
}

// CurrentUser fetches the full record for the token's identity. Fails
// locally with a 401 when no token is stored.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout tells the backend to end the session, then clears local tokens.
// The local clear runs even when the remote call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, true, nil)
	if clearErr := c.tokens.Clear(ctx); clearErr != nil {
		c.log.Warn("token clear failed", zap.Error(clearErr))
	}
	return err
}

// IsAuthenticated reports token presence only, never validity.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	_, ok := c.tokens.Read(ctx)
	return ok
}

// ClearTokens discards the stored pair, used whenever a token is found to be
// untrustworthy.
func (c *Client) ClearTokens(ctx context.Context) {
	if err := c.tokens.Clear(ctx); err != nil {
		c.log.Warn("token clear failed", zap.Error(err))
	}
}

// do issues one backend request and decodes the response into result when
// result is non-nil. Non-2xx responses become APIErrors carrying the body's
// message field.
func (c *Client) do(ctx context.Context, method, path string, body any, authed bool, result any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if authed {
		token, ok := c.tokens.Read(ctx)
		if !ok {
			return errNotAuthenticated()
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: "Network error. Please try again.", StatusCode: 0}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{
		Message:    fmt.Sprintf("Request failed with status %d", resp.StatusCode),
		StatusCode: resp.StatusCode,
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}
	return apiErr
}

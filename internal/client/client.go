// Package client provides the HTTP client for the dashboard backend API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/seancribb/holdview/internal/common"
	"github.com/seancribb/holdview/internal/models"
)

const (
	DefaultBaseURL   = "http://127.0.0.1:5000/api"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second

	defaultSessionCookie = "holdview_session"
)

// Sentinel errors for the failure branches the dashboard distinguishes.
var (
	// ErrUnreachable wraps transport-level failures (backend down, DNS, …).
	ErrUnreachable = errors.New("backend not reachable")

	// ErrUnauthorized marks a 401 on an authenticated call: the session
	// has expired or the token is invalid.
	ErrUnauthorized = errors.New("unauthorized")
)

// Client talks to the dashboard backend. It carries a cookie jar so the
// session cookie set at login rides along on later requests, matching the
// credentialed fetches the browser frontend performs.
type Client struct {
	baseURL       string
	sessionCookie string
	httpClient    *http.Client
	logger        *common.Logger
	limiter       *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL (no trailing slash).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithSessionCookie overrides the session cookie name cleared on logout.
func WithSessionCookie(name string) ClientOption {
	return func(c *Client) {
		c.sessionCookie = name
	}
}

// NewClient creates a new API client.
func NewClient(opts ...ClientOption) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL:       DefaultBaseURL,
		sessionCookie: defaultSessionCookie,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Jar:     jar,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Login exchanges credentials for a session token. Any non-2xx status is a
// failure; the HTTP status is carried verbatim in the error message. The
// returned token may be empty when the backend relies on the cookie alone.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("failed to encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("login failed (%d)", resp.StatusCode)
	}

	var loginResp models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}

	c.logger.Debug().Str("username", username).Msg("Login succeeded")
	return loginResp.Token, nil
}

// FetchPortfolio retrieves the portfolio envelope. The bearer token may be
// empty when the session cookie carries the auth. A 401 returns
// ErrUnauthorized so callers can branch to the session-expired flow; other
// non-2xx statuses are generic backend failures.
func (c *Client) FetchPortfolio(ctx context.Context, token string) (*models.PortfolioResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/portfolio", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build portfolio request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("portfolio request failed (%d)", resp.StatusCode)
	}

	var portfolio models.PortfolioResponse
	if err := json.NewDecoder(resp.Body).Decode(&portfolio); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio response: %w", err)
	}

	return &portfolio, nil
}

// ClearSession expires the session cookie client-side. Best effort: the
// backend has no logout endpoint, so logout is purely local.
func (c *Client) ClearSession() {
	jar := c.httpClient.Jar
	if jar == nil {
		return
	}
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return
	}
	jar.SetCookies(u, []*http.Cookie{{
		Name:   c.sessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	}})
}

// Package interfaces defines service contracts for Holdview
package interfaces

import (
	"context"

	"github.com/seancribb/holdview/internal/models"
)

// PortfolioProvider supplies the raw portfolio payload for an authenticated
// user. The in-repo implementation returns mock data shaped like the IBKR
// gateway response; a real gateway client satisfies the same contract.
type PortfolioProvider interface {
	// FetchPortfolio returns the wire envelope for the given user.
	FetchPortfolio(ctx context.Context, username string) (*models.PortfolioResponse, error)
}

// SessionStore tracks issued session tokens for cookie-based auth.
// Tokens are process-local and expire; nothing survives a restart.
type SessionStore interface {
	// Put records a token for a username.
	Put(token, username string)

	// Get returns the username for a token, or false if unknown/expired.
	Get(token string) (string, bool)

	// Delete removes a token.
	Delete(token string)
}

// APIClient is the dashboard's view of the backend HTTP contract.
type APIClient interface {
	// Login exchanges credentials for a session token.
	Login(ctx context.Context, username, password string) (string, error)

	// FetchPortfolio retrieves the portfolio using the given bearer token
	// (may be empty when relying on the session cookie alone).
	FetchPortfolio(ctx context.Context, token string) (*models.PortfolioResponse, error)

	// ClearSession expires the session cookie client-side. Best effort;
	// the backend has no logout endpoint.
	ClearSession()
}

// TokenStore persists the session token across runs.
type TokenStore interface {
	// Load returns the stored token, or "" when none is stored.
	Load() string

	// Save stores the token.
	Save(token string) error

	// Clear removes the stored token.
	Clear() error
}

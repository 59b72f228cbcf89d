package client

import (
	"os"
	"path/filepath"
	"strings"
)

// tokenFileName is the fixed key the session token persists under, the
// file-based analog of the browser's localStorage entry.
const tokenFileName = "token"

// TokenStore persists the session token between runs. A missing file is
// simply "no stored token", never an error.
type TokenStore struct {
	path string
}

// NewTokenStore creates a store at the given path. An empty path resolves
// to <user-config-dir>/holdview/token.
func NewTokenStore(path string) *TokenStore {
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "holdview", tokenFileName)
		} else {
			path = filepath.Join(".", "."+tokenFileName)
		}
	}
	return &TokenStore{path: path}
}

// Path returns the backing file path.
func (t *TokenStore) Path() string {
	return t.path
}

// Load returns the stored token, or "" when none is stored.
func (t *TokenStore) Load() string {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Save writes the token, creating parent directories as needed.
func (t *TokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(t.path, []byte(token+"\n"), 0o600)
}

// Clear removes the stored token. Clearing an absent token is a no-op.
func (t *TokenStore) Clear() error {
	err := os.Remove(t.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

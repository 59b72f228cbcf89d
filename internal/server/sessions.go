package server

import (
	"sync"
	"time"
)

// sessionEntry pairs a username with the session's expiry instant.
type sessionEntry struct {
	username string
	expires  time.Time
}

// SessionStore is a process-local token registry. Sessions do not survive
// a restart, matching the single-session lifecycle of the dashboard: a
// restarted backend answers 401 and the client falls back to the login flow.
type SessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]sessionEntry
	now      func() time.Time
}

// NewSessionStore creates a session store whose entries expire after ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]sessionEntry),
		now:      time.Now,
	}
}

// Put records a token for a username.
func (s *SessionStore) Put(token, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = sessionEntry{
		username: username,
		expires:  s.now().Add(s.ttl),
	}
}

// Get returns the username for a token. Expired entries are dropped lazily.
func (s *SessionStore) Get(token string) (string, bool) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if s.now().After(entry.expires) {
		s.Delete(token)
		return "", false
	}
	return entry.username, true
}

// Delete removes a token.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Len returns the number of live sessions (expired entries included until
// their next lookup).
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/seancribb/holdview/internal/common"
	"github.com/seancribb/holdview/internal/models"
)

// --- JWT helpers ---

// signJWT creates a signed HMAC-SHA256 JWT for the given username.
func signJWT(username string, config *common.AuthConfig) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"iss": "holdview-server",
		"iat": now.Unix(),
		"exp": now.Add(config.GetTokenExpiry()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// validateJWT parses and validates a JWT token string using the given secret.
func validateJWT(tokenString string, secret []byte) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// authenticate checks credentials against the configured users. With no
// users configured the server runs in mock mode and accepts any non-empty
// pair, mirroring the gateway stub this service fronts for.
func (s *Server) authenticate(username, password string) bool {
	if username == "" || password == "" {
		return false
	}

	users := s.config.Auth.Users
	if len(users) == 0 {
		return true
	}

	for _, u := range users {
		if u.Username != username {
			continue
		}
		passwordBytes := []byte(password)
		if len(passwordBytes) > 72 {
			passwordBytes = passwordBytes[:72]
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), passwordBytes) == nil
	}
	return false
}

// handleLogin handles POST /api/login: authenticate and issue a session.
// The token is returned in the body and also set as an HttpOnly session
// cookie so both bearer and cookie clients work.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if !s.loginLimiter.Allow() {
		WriteError(w, http.StatusTooManyRequests, "too many login attempts")
		return
	}

	var req models.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if !s.authenticate(req.Username, req.Password) {
		s.logger.Info().Str("username", req.Username).Msg("Login rejected")
		WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := signJWT(req.Username, &s.config.Auth)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to sign JWT")
		WriteError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}

	s.sessions.Put(token, req.Username)

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.Auth.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.config.IsProduction(),
		MaxAge:   int(s.config.Auth.GetTokenExpiry().Seconds()),
	})

	s.logger.Info().Str("username", req.Username).Msg("Login succeeded")
	WriteJSON(w, http.StatusOK, models.LoginResponse{OK: true, Token: token})
}

// requestToken extracts the session token from the session cookie or the
// Authorization: Bearer header, cookie first.
func (s *Server) requestToken(r *http.Request) string {
	if c, err := r.Cookie(s.config.Auth.SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

// authorizedUser validates the request's token and returns the username.
// A token must both verify as a JWT and still be present in the session
// store; sessions are process-local, so a restarted server answers 401
// and clients fall back to the login flow.
func (s *Server) authorizedUser(r *http.Request) (string, bool) {
	token := s.requestToken(r)
	if token == "" {
		return "", false
	}

	claims, err := validateJWT(token, []byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", false
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", false
	}

	username, ok := s.sessions.Get(token)
	if !ok || username != sub {
		return "", false
	}
	return username, true
}

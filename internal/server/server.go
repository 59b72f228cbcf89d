package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/seancribb/holdview/internal/common"
	"github.com/seancribb/holdview/internal/interfaces"
)

// Server wraps the HTTP server for the dashboard backend.
type Server struct {
	config       *common.Config
	logger       *common.Logger
	provider     interfaces.PortfolioProvider
	sessions     interfaces.SessionStore
	loginLimiter *rate.Limiter
	server       *http.Server
}

// NewServer creates the REST API server. A nil provider falls back to the
// mock gateway payload.
func NewServer(config *common.Config, logger *common.Logger, provider interfaces.PortfolioProvider) *Server {
	if provider == nil {
		provider = NewMockProvider()
	}

	loginRate := config.Auth.LoginRate
	if loginRate <= 0 {
		loginRate = 5
	}

	s := &Server{
		config:       config,
		logger:       logger,
		provider:     provider,
		sessions:     NewSessionStore(config.Auth.GetTokenExpiry()),
		loginLimiter: rate.NewLimiter(rate.Limit(loginRate), loginRate*2),
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	handler := applyMiddleware(mux, logger, config)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	s.logger.Info().
		Str("addr", s.server.Addr).
		Msg("Starting REST API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

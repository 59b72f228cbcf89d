package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/seancribb/holdview/internal/common"
	"github.com/seancribb/holdview/internal/server"
)

func main() {
	// .env is optional; real env vars still win inside LoadConfig.
	_ = godotenv.Load()

	common.LoadVersionFromFile()

	config, err := common.LoadConfig(os.Getenv("HOLDVIEW_CONFIG"), "holdview.toml", "config/holdview.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLoggerFromConfig(config.Logging)
	common.PrintBanner(config, logger)

	if config.IsProduction() && config.Auth.JWTSecret == common.NewDefaultConfig().Auth.JWTSecret {
		logger.Fatal().Msg("Refusing to start in production with the default JWT secret")
	}

	srv := server.NewServer(config, logger, nil)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	logger.Info().
		Str("url", fmt.Sprintf("http://%s:%d", config.Server.Host, config.Server.Port)).
		Int("users", len(config.Auth.Users)).
		Msg("Server ready")
	if len(config.Auth.Users) == 0 {
		logger.Warn().Msg("No users configured, accepting any non-empty credentials (mock mode)")
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	common.PrintShutdownBanner(logger)
}

// Package common provides shared utilities for Holdview
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Holdview
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Client      ClientConfig  `toml:"client"`
	Auth        AuthConfig    `toml:"auth"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host    string   `toml:"host"`
	Port    int      `toml:"port"`
	Origins []string `toml:"origins"` // allowed CORS origins for browser frontends
}

// ClientConfig holds dashboard client configuration
type ClientConfig struct {
	BaseURL   string `toml:"base_url"`
	Timeout   string `toml:"timeout"`
	RateLimit int    `toml:"rate_limit"`
	TokenPath string `toml:"token_path"` // where the session token persists between runs
}

// GetTimeout parses and returns the client timeout duration
func (c *ClientConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// AuthConfig holds authentication configuration.
// When Users is empty the server runs in mock mode and accepts any
// non-empty username/password pair.
type AuthConfig struct {
	JWTSecret     string       `toml:"jwt_secret"`
	TokenExpiry   string       `toml:"token_expiry"`   // duration string, default "4h"
	SessionCookie string       `toml:"session_cookie"` // cookie name, default "holdview_session"
	LoginRate     int          `toml:"login_rate"`     // login attempts per second, default 5
	Users         []UserConfig `toml:"users"`
}

// UserConfig holds one configured user account.
type UserConfig struct {
	Username     string `toml:"username"`
	PasswordHash string `toml:"password_hash"` // bcrypt hash
}

// GetTokenExpiry parses and returns the token expiry duration.
func (c *AuthConfig) GetTokenExpiry() time.Duration {
	d, err := time.ParseDuration(c.TokenExpiry)
	if err != nil {
		return 4 * time.Hour
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host:    "127.0.0.1",
			Port:    5000,
			Origins: []string{"http://localhost:8000", "http://127.0.0.1:8000"},
		},
		Client: ClientConfig{
			BaseURL:   "http://127.0.0.1:5000/api",
			Timeout:   "30s",
			RateLimit: 5,
		},
		Auth: AuthConfig{
			JWTSecret:     "dev-jwt-secret-change-in-production",
			TokenExpiry:   "4h",
			SessionCookie: "holdview_session",
			LoginRate:     5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("HOLDVIEW_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("HOLDVIEW_HOST"); host != "" {
		config.Server.Host = host
	}

	// PORT is honored for parity with the original deployment scripts.
	for _, key := range []string{"PORT", "HOLDVIEW_PORT"} {
		if port := os.Getenv(key); port != "" {
			if p, err := strconv.Atoi(port); err == nil {
				config.Server.Port = p
			}
		}
	}

	// Comma-separated list, same contract as the FRONTEND_ORIGINS variable
	// the original deployment used.
	if origins := os.Getenv("FRONTEND_ORIGINS"); origins != "" {
		var parsed []string
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				parsed = append(parsed, o)
			}
		}
		if len(parsed) > 0 {
			config.Server.Origins = parsed
		}
	}

	if level := os.Getenv("HOLDVIEW_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if v := os.Getenv("HOLDVIEW_AUTH_JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("HOLDVIEW_AUTH_TOKEN_EXPIRY"); v != "" {
		config.Auth.TokenExpiry = v
	}

	if v := os.Getenv("HOLDVIEW_API_BASE"); v != "" {
		config.Client.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("HOLDVIEW_TOKEN_PATH"); v != "" {
		config.Client.TokenPath = v
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	if config.Server.Port != 5000 {
		t.Errorf("port = %d, want 5000", config.Server.Port)
	}
	if config.Auth.GetTokenExpiry() != 4*time.Hour {
		t.Errorf("token expiry = %v, want 4h", config.Auth.GetTokenExpiry())
	}
	if config.Auth.SessionCookie != "holdview_session" {
		t.Errorf("session cookie = %q", config.Auth.SessionCookie)
	}
	if config.IsProduction() {
		t.Error("default environment is production")
	}
}

func TestLoadConfig_FileMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "holdview.toml")
	content := `
environment = "production"

[server]
port = 8080
origins = ["https://dash.example.com"]

[auth]
jwt_secret = "file-secret"
token_expiry = "1h"

[[auth.users]]
username = "alice"
password_hash = "$2a$10$abcdefghijklmnopqrstuv"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if !config.IsProduction() {
		t.Error("environment not merged")
	}
	if config.Server.Port != 8080 {
		t.Errorf("port = %d", config.Server.Port)
	}
	if len(config.Server.Origins) != 1 || config.Server.Origins[0] != "https://dash.example.com" {
		t.Errorf("origins = %v", config.Server.Origins)
	}
	if config.Auth.GetTokenExpiry() != time.Hour {
		t.Errorf("token expiry = %v", config.Auth.GetTokenExpiry())
	}
	if len(config.Auth.Users) != 1 || config.Auth.Users[0].Username != "alice" {
		t.Errorf("users = %+v", config.Auth.Users)
	}
	// Defaults survive a partial file.
	if config.Client.BaseURL == "" {
		t.Error("client defaults lost on merge")
	}
}

func TestLoadConfig_MissingFileSkipped(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadConfig with missing file: %v", err)
	}
	if config.Server.Port != 5000 {
		t.Errorf("port = %d, want default", config.Server.Port)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HOLDVIEW_PORT", "9999")
	t.Setenv("FRONTEND_ORIGINS", "http://localhost:3000, http://localhost:5173")
	t.Setenv("HOLDVIEW_AUTH_JWT_SECRET", "env-secret")
	t.Setenv("HOLDVIEW_LOG_LEVEL", "debug")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if config.Server.Port != 9999 {
		t.Errorf("port = %d, want 9999", config.Server.Port)
	}
	if len(config.Server.Origins) != 2 || config.Server.Origins[1] != "http://localhost:5173" {
		t.Errorf("origins = %v", config.Server.Origins)
	}
	if config.Auth.JWTSecret != "env-secret" {
		t.Errorf("jwt secret = %q", config.Auth.JWTSecret)
	}
	if config.Logging.Level != "debug" {
		t.Errorf("log level = %q", config.Logging.Level)
	}
}

func TestGetTimeout_Invalid(t *testing.T) {
	c := ClientConfig{Timeout: "not-a-duration"}
	if c.GetTimeout() != 30*time.Second {
		t.Errorf("invalid timeout did not fall back, got %v", c.GetTimeout())
	}
}

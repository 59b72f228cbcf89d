package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seancribb/holdview/internal/client"
	"github.com/seancribb/holdview/internal/common"
	"github.com/seancribb/holdview/internal/models"
	"github.com/seancribb/holdview/internal/server"
)

// End-to-end flows over real HTTP: the dispatcher driving the real client
// against the real server (happy path) and a scripted backend (expiry path).

func TestEndToEnd_LoginShowsApp(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Auth.LoginRate = 1000
	srv := httptest.NewServer(server.NewServer(cfg, common.NewSilentLogger(), nil).Handler())
	defer srv.Close()

	api := client.NewClient(client.WithBaseURL(srv.URL + "/api"))
	tokens := client.NewTokenStore(filepath.Join(t.TempDir(), "token"))
	c := NewController(api, tokens, nil)

	state, _ := c.Bootstrap(context.Background())
	require.Equal(t, ScreenLoggedOut, state.Screen, "fresh bootstrap must land on the login shell")

	state, effects := c.Dispatch(context.Background(), state, Action{
		Kind: ActionLogin, Username: "demo", Password: "demo",
	})

	require.Equal(t, ScreenLoggedIn, state.Screen, "login failed: %s", state.Status)
	assert.True(t, hasEffect(effects, EffectShowApp))
	assert.GreaterOrEqual(t, len(state.Positions), 1, "position list empty after login")
	assert.NotEmpty(t, tokens.Load(), "token not persisted")

	// The persisted token restores the session in a fresh controller.
	c2 := NewController(client.NewClient(client.WithBaseURL(srv.URL+"/api")), tokens, nil)
	restored, _ := c2.Bootstrap(context.Background())
	assert.Equal(t, ScreenLoggedIn, restored.Screen, "restore failed: %s", restored.Status)
}

func TestEndToEnd_ExpiredSessionReturnsToLogin(t *testing.T) {
	var expired bool
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			json.NewEncoder(w).Encode(models.LoginResponse{OK: true, Token: "tok-e2e"})
		case "/api/portfolio":
			if expired {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}
			json.NewEncoder(w).Encode(models.PortfolioResponse{
				Positions: []models.RawPosition{{Symbol: "AAPL", Quantity: 120, Price: 187.42}},
			})
		}
	}))
	defer backend.Close()

	api := client.NewClient(client.WithBaseURL(backend.URL + "/api"))
	tokens := client.NewTokenStore(filepath.Join(t.TempDir(), "token"))
	c := NewController(api, tokens, nil)

	state, _ := c.Dispatch(context.Background(), NewState(), Action{
		Kind: ActionLogin, Username: "demo", Password: "demo",
	})
	require.Equal(t, ScreenLoggedIn, state.Screen, "login failed: %s", state.Status)

	expired = true
	state, effects := c.Dispatch(context.Background(), state, Action{Kind: ActionReload})

	assert.Equal(t, ScreenLoggedOut, state.Screen, "401 must force the login shell")
	assert.Equal(t, MsgSessionExpired, state.Status)
	assert.True(t, hasEffect(effects, EffectShowLogin))
	assert.Empty(t, tokens.Load(), "expired token still persisted")
}

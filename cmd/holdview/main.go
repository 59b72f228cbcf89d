// holdview is the terminal dashboard client: login, portfolio view, chart
// export, and an interactive dashboard loop against the backend API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/seancribb/holdview/internal/client"
	"github.com/seancribb/holdview/internal/common"
	"github.com/seancribb/holdview/internal/dashboard"
)

var verbose = flag.Bool("v", false, "verbose logging")

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&loginCmd{}, "session")
	commander.Register(&logoutCmd{}, "session")
	commander.Register(&portfolioCmd{}, "portfolio")
	commander.Register(&chartCmd{}, "portfolio")
	commander.Register(&dashCmd{}, "portfolio")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// appEnv bundles the collaborators every command needs.
type appEnv struct {
	config     *common.Config
	logger     *common.Logger
	api        *client.Client
	tokens     *client.TokenStore
	controller *dashboard.Controller
}

func newAppEnv() (*appEnv, error) {
	_ = godotenv.Load()

	config, err := common.LoadConfig(os.Getenv("HOLDVIEW_CONFIG"), "holdview.toml", "config/holdview.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewSilentLogger()
	if *verbose {
		logger = common.NewLogger("debug")
	}

	api := client.NewClient(
		client.WithBaseURL(config.Client.BaseURL),
		client.WithTimeout(config.Client.GetTimeout()),
		client.WithRateLimit(config.Client.RateLimit),
		client.WithSessionCookie(config.Auth.SessionCookie),
		client.WithLogger(logger),
	)
	tokens := client.NewTokenStore(config.Client.TokenPath)

	return &appEnv{
		config:     config,
		logger:     logger,
		api:        api,
		tokens:     tokens,
		controller: dashboard.NewController(api, tokens, logger),
	}, nil
}

// restore bootstraps a session from the stored token. Commands that need a
// live session call this and bail out with the bootstrap status when the
// dashboard stays logged out.
func (e *appEnv) restore(ctx context.Context) (dashboard.State, error) {
	state, _ := e.controller.Bootstrap(ctx)
	if state.Screen != dashboard.ScreenLoggedIn {
		return state, fmt.Errorf("%s (run 'holdview login')", state.Status)
	}
	return state, nil
}

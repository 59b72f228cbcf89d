package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/seancribb/holdview/internal/dashboard"
)

type loginCmd struct {
	username string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "authenticate and store a session token" }
func (*loginCmd) Usage() string {
	return `login -u <username> [-p <password>]

  Authenticates against the backend and persists the session token.
  With no -p the password is read from stdin.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "username")
	f.StringVar(&c.password, "p", "", "password (read from stdin when omitted)")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" {
		fmt.Fprintln(os.Stderr, "-u is required")
		return subcommands.ExitUsageError
	}
	if c.password == "" {
		fmt.Fprint(os.Stderr, "password: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read password: %v\n", err)
			return subcommands.ExitFailure
		}
		c.password = strings.TrimRight(line, "\r\n")
	}

	env, err := newAppEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	state, _ := env.controller.Dispatch(ctx, dashboard.NewState(), dashboard.Action{
		Kind:     dashboard.ActionLogin,
		Username: c.username,
		Password: c.password,
	})
	if state.Screen != dashboard.ScreenLoggedIn {
		fmt.Fprintln(os.Stderr, state.Status)
		return subcommands.ExitFailure
	}

	fmt.Printf("logged in as %s, token stored at %s\n", c.username, env.tokens.Path())
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "clear the stored session token" }
func (*logoutCmd) Usage() string {
	return `logout

  Removes the stored session token and expires the local session cookie.
`
}

func (*logoutCmd) SetFlags(*flag.FlagSet) {}

func (*logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	env, err := newAppEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	state := dashboard.NewState()
	state.Screen = dashboard.ScreenLoggedIn
	if _, effects := env.controller.Dispatch(ctx, state, dashboard.Action{Kind: dashboard.ActionLogout}); len(effects) == 0 {
		fmt.Fprintln(os.Stderr, "logout did not complete")
		return subcommands.ExitFailure
	}

	fmt.Println("logged out")
	return subcommands.ExitSuccess
}

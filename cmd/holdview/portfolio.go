package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/seancribb/holdview/internal/dashboard"
)

type portfolioCmd struct {
	filter string
	asJSON bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "fetch and display the portfolio" }
func (*portfolioCmd) Usage() string {
	return `portfolio [-f <term>] [-json]

  Fetches the portfolio with the stored session and renders the summary
  tiles and position table. -f filters positions by symbol or name.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filter, "f", "", "filter term (substring of symbol or name)")
	f.BoolVar(&c.asJSON, "json", false, "print normalized positions as JSON")
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	env, err := newAppEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	state, err := env.restore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.filter != "" {
		state, _ = env.controller.Dispatch(ctx, state, dashboard.Action{
			Kind: dashboard.ActionFilter, Term: c.filter,
		})
	}

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(state.Visible); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode positions: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	frame := dashboard.NewFrame(os.Stdout)
	frame.AppHeader(state)
	frame.Summary(state)
	frame.FilterPill(state)
	frame.Positions(state)
	return subcommands.ExitSuccess
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/seancribb/holdview/internal/dashboard"
	"github.com/seancribb/holdview/internal/interfaces"
	"github.com/seancribb/holdview/internal/models"
	"github.com/seancribb/holdview/internal/portfolio"
)

type chartCmd struct {
	horizon string
	tab     string
	out     string
	width   int
	height  int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the portfolio chart to a PNG file" }
func (*chartCmd) Usage() string {
	return `chart [-horizon 1D|1W|1M|YTD] [-tab value|performance] [-o <file>]

  Synthesizes the chart series for the selected horizon and writes the
  chart image. The curve is a deterministic approximation anchored to the
  current total, not real history.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.horizon, "horizon", "1M", "chart horizon: 1D, 1W, 1M or YTD")
	f.StringVar(&c.tab, "tab", "value", "chart tab: value or performance")
	f.StringVar(&c.out, "o", "holdview-chart.png", "output PNG path")
	f.IntVar(&c.width, "width", 900, "image width")
	f.IntVar(&c.height, "height", 400, "image height")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	horizon := models.Horizon(c.horizon)
	if !horizon.Valid() {
		fmt.Fprintf(os.Stderr, "unknown horizon %q\n", c.horizon)
		return subcommands.ExitUsageError
	}
	tab := models.ChartTab(c.tab)
	if !tab.Valid() {
		fmt.Fprintf(os.Stderr, "unknown tab %q\n", c.tab)
		return subcommands.ExitUsageError
	}

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

	state, _ = env.controller.Dispatch(ctx, state, dashboard.Action{Kind: dashboard.ActionSelectHorizon, Horizon: horizon})
	state, _ = env.controller.Dispatch(ctx, state, dashboard.Action{Kind: dashboard.ActionSelectTab, Tab: tab})

	renderer := dashboard.NewFileRenderer(c.out, c.width, c.height)
	style := interfaces.SeriesStyle{
		Tab:     state.ActiveTab,
		Horizon: state.ActiveHorizon,
		Note:    portfolio.ChartNote(state.ActiveHorizon),
	}
	if err := renderer.RenderSeries(dashboard.ActivePoints(state), style); err != nil {
		fmt.Fprintf(os.Stderr, "failed to render chart: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s  %s\n", c.out, portfolio.ChartReadout(state.Series, state.ActiveTab, "USD"))
	return subcommands.ExitSuccess
}

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/seancribb/holdview/internal/dashboard"
	"github.com/seancribb/holdview/internal/interfaces"
	"github.com/seancribb/holdview/internal/models"
	"github.com/seancribb/holdview/internal/portfolio"
)

type dashCmd struct {
	chartPath string
}

func (*dashCmd) Name() string     { return "dash" }
func (*dashCmd) Synopsis() string { return "interactive dashboard loop" }
func (*dashCmd) Usage() string {
	return `dash [-chart <file>]

  Interactive dashboard. Commands:
    filter <term>      filter positions (empty term clears)
    tab <name>         switch chart tab (value, performance)
    horizon <name>     switch chart horizon (1D, 1W, 1M, YTD)
    reload             re-fetch the portfolio
    logout             clear the session and exit
    quit               exit
`
}

func (c *dashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.chartPath, "chart", "holdview-chart.png", "chart PNG path, rewritten on every chart change")
}

func (c *dashCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	loop := dashLoop{
		controller: env.controller,
		frame:      dashboard.NewFrame(os.Stdout),
		renderer:   dashboard.NewFileRenderer(c.chartPath, 900, 400),
		out:        os.Stdout,
	}
	return loop.run(ctx, state, os.Stdin)
}

// dashLoop drives the dispatcher from a line-based command stream and
// applies the returned effects to the terminal frame and chart renderer.
type dashLoop struct {
	controller *dashboard.Controller
	frame      *dashboard.Frame
	renderer   *dashboard.FileRenderer
	out        io.Writer
}

func (l *dashLoop) run(ctx context.Context, state dashboard.State, input io.Reader) subcommands.ExitStatus {
	l.apply(state, []dashboard.Effect{
		dashboard.EffectShowApp, dashboard.EffectSummary, dashboard.EffectPositions,
		dashboard.EffectFilter, dashboard.EffectChart,
	})

	scanner := bufio.NewScanner(input)
	fmt.Fprint(l.out, "> ")
	for scanner.Scan() {
		action, quit, ok := parseCommand(scanner.Text())
		if quit {
			return subcommands.ExitSuccess
		}
		if !ok {
			fmt.Fprintln(l.out, "unknown command (filter, tab, horizon, reload, logout, quit)")
			fmt.Fprint(l.out, "> ")
			continue
		}

		var effects []dashboard.Effect
		state, effects = l.controller.Dispatch(ctx, state, action)
		l.apply(state, effects)

		if action.Kind == dashboard.ActionLogout {
			return subcommands.ExitSuccess
		}
		if state.Screen == dashboard.ScreenLoggedOut {
			// Session expired mid-loop; the status line already said so.
			return subcommands.ExitFailure
		}
		fmt.Fprint(l.out, "> ")
	}
	return subcommands.ExitSuccess
}

func (l *dashLoop) apply(state dashboard.State, effects []dashboard.Effect) {
	l.frame.Apply(state, effects)
	for _, effect := range effects {
		if effect != dashboard.EffectChart && effect != dashboard.EffectResizeChart {
			continue
		}
		style := interfaces.SeriesStyle{
			Tab:     state.ActiveTab,
			Horizon: state.ActiveHorizon,
			Note:    portfolio.ChartNote(state.ActiveHorizon),
		}
		if err := l.renderer.RenderSeries(dashboard.ActivePoints(state), style); err != nil {
			fmt.Fprintf(l.out, "chart render failed: %v\n", err)
			continue
		}
		fmt.Fprintf(l.out, "chart written to %s\n", l.renderer.Path())
	}
}

// parseCommand maps one input line to a dispatcher action. The second
// return is true for quit, the third is false for unparseable input.
func parseCommand(line string) (dashboard.Action, bool, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return dashboard.Action{}, false, false
	}

	arg := ""
	if len(fields) > 1 {
		arg = strings.Join(fields[1:], " ")
	}

	switch fields[0] {
	case "quit", "exit", "q":
		return dashboard.Action{}, true, false
	case "filter":
		return dashboard.Action{Kind: dashboard.ActionFilter, Term: arg}, false, true
	case "tab":
		return dashboard.Action{Kind: dashboard.ActionSelectTab, Tab: models.ChartTab(arg)}, false, true
	case "horizon":
		return dashboard.Action{Kind: dashboard.ActionSelectHorizon, Horizon: models.Horizon(arg)}, false, true
	case "reload":
		return dashboard.Action{Kind: dashboard.ActionReload}, false, true
	case "logout":
		return dashboard.Action{Kind: dashboard.ActionLogout}, false, true
	default:
		return dashboard.Action{}, false, false
	}
}

package dashboard

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/seancribb/holdview/internal/common"
	"github.com/seancribb/holdview/internal/models"
	"github.com/seancribb/holdview/internal/portfolio"
)

// defaultCurrency labels the summary tiles; per-position currencies come
// from the positions themselves.
const defaultCurrency = "USD"

// Frame renders state into the terminal surface. Each method maps to one
// region of the app shell, mirroring the effect names the dispatcher emits.
type Frame struct {
	w io.Writer
}

// NewFrame creates a frame writing to w.
func NewFrame(w io.Writer) *Frame {
	return &Frame{w: w}
}

// Apply redraws the regions named by the effects, in order.
func (f *Frame) Apply(state State, effects []Effect) {
	for _, effect := range effects {
		switch effect {
		case EffectShowLogin:
			f.LoginShell(state)
		case EffectShowApp:
			f.AppHeader(state)
		case EffectStatus:
			f.Status(state)
		case EffectSummary:
			f.Summary(state)
		case EffectFilter:
			f.FilterPill(state)
		case EffectPositions:
			f.Positions(state)
		case EffectChart:
			f.ChartCaption(state)
		}
	}
}

// LoginShell draws the logged-out view.
func (f *Frame) LoginShell(state State) {
	fmt.Fprintln(f.w, "holdview · sign in")
	fmt.Fprintln(f.w, strings.Repeat("-", 40))
}

// AppHeader draws the logged-in banner line.
func (f *Frame) AppHeader(state State) {
	fmt.Fprintf(f.w, "holdview · %s\n", state.Username)
	fmt.Fprintln(f.w, strings.Repeat("=", 40))
}

// Status draws the status line, or nothing when the status is empty.
func (f *Frame) Status(state State) {
	if state.Status == "" {
		return
	}
	fmt.Fprintf(f.w, "! %s\n", state.Status)
}

// Summary draws the three headline tiles: total value, today's P&L, and the
// top mover. An empty portfolio renders dashes instead of faulting on the
// absent top mover.
func (f *Frame) Summary(state State) {
	s := state.Summary
	fmt.Fprintf(f.w, "Total value   %s\n", common.FormatMoney(s.TotalValue, defaultCurrency))
	fmt.Fprintf(f.w, "P&L today     %s\n", common.FormatSignedMoney(s.PnLToday, defaultCurrency))
	if s.TopMover != nil {
		fmt.Fprintf(f.w, "Top mover     %s (%s)\n",
			s.TopMover.Symbol, common.FormatSignedMoney(s.TopMover.Change, s.TopMover.Currency))
	} else {
		fmt.Fprintln(f.w, "Top mover     --")
	}
	if state.Cash != 0 {
		fmt.Fprintf(f.w, "Cash          %s\n", common.FormatMoney(state.Cash, defaultCurrency))
	}
}

// FilterPill draws the filter indicator.
func (f *Frame) FilterPill(state State) {
	fmt.Fprintf(f.w, "[%s]\n", state.FilterLabel)
}

// Positions draws the visible positions as a table.
func (f *Frame) Positions(state State) {
	if len(state.Visible) == 0 {
		fmt.Fprintln(f.w, "no matching positions")
		return
	}

	tw := tabwriter.NewWriter(f.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tNAME\tQTY\tPRICE\tCHANGE\tVALUE\tSECTOR")
	for _, p := range state.Visible {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Symbol,
			p.Name,
			common.FormatQuantity(p.Quantity),
			common.FormatMoney(p.Price, p.Currency),
			common.FormatSignedMoney(p.Change, p.Currency),
			common.FormatMoney(p.MarketValue(), p.Currency),
			p.Sector,
		)
	}
	tw.Flush()
}

// ChartCaption draws the chart note and readout for the active tab. The
// chart image itself goes through a SeriesRenderer; the caption is the
// textual half of the chart region.
func (f *Frame) ChartCaption(state State) {
	note := portfolio.ChartNote(state.ActiveHorizon)
	readout := portfolio.ChartReadout(state.Series, state.ActiveTab, defaultCurrency)
	if readout == "" {
		fmt.Fprintf(f.w, "chart: %s (no data)\n", note)
		return
	}
	fmt.Fprintf(f.w, "chart [%s]: %s  %s\n", state.ActiveTab, note, readout)
}

// ActivePoints returns the series slice for the active tab, the points a
// SeriesRenderer draws.
func ActivePoints(state State) []float64 {
	if state.ActiveTab == models.TabPerformance {
		return state.Series.Perf
	}
	return state.Series.Values
}

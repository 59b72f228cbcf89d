package portfolio

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/seancribb/holdview/internal/models"
)

// ChartNote builds the descriptive caption naming the horizon and point
// count, flagged as synthetic so nobody mistakes the curve for real history.
func ChartNote(horizon models.Horizon) string {
	return fmt.Sprintf("%s — %d synthetic points", horizon.Label(), horizon.Points())
}

// ChartReadout formats the delta/percentage readout for the series under
// the given tab: absolute+relative move for the value tab, relative move
// for the performance tab.
func ChartReadout(s models.ChartSeries, tab models.ChartTab, currency string) string {
	if s.Empty() {
		return ""
	}
	last := len(s.Values) - 1
	if tab == models.TabPerformance {
		return fmtSignedPct(s.Perf[last])
	}
	delta := s.Values[last] - s.Values[0]
	return fmt.Sprintf("%+.2f %s (%s)", delta, currency, fmtSignedPct(s.Perf[last]))
}

func fmtSignedPct(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// RenderChartPNG renders the selected series as a PNG line chart.
// The value tab draws the absolute series in blue with a dollar axis; the
// performance tab draws the percentage series in emerald with a percent
// axis and a dashed zero baseline. Returns raw PNG bytes.
func RenderChartPNG(s models.ChartSeries, tab models.ChartTab, width, height int) ([]byte, error) {
	if s.Empty() {
		return nil, fmt.Errorf("series for %s has no points to draw", s.Horizon)
	}
	if width <= 0 {
		width = 900
	}
	if height <= 0 {
		height = 400
	}

	points := s.Values
	name := "Portfolio Value"
	strokeColor := drawing.ColorFromHex("2563eb") // blue-600
	formatY := func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return fmt.Sprintf("$%.0f", f)
		}
		return ""
	}
	if tab == models.TabPerformance {
		points = s.Perf
		name = "Performance"
		strokeColor = drawing.ColorFromHex("059669") // emerald-600
		formatY = func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return fmt.Sprintf("%.2f%%", f)
			}
			return ""
		}
	}

	xValues := make([]float64, len(points))
	for i := range points {
		xValues[i] = float64(i)
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name: name,
			Style: chart.Style{
				StrokeColor: strokeColor,
				StrokeWidth: 2.5,
			},
			XValues: xValues,
			YValues: points,
		},
	}

	if tab == models.TabPerformance {
		zero := make([]float64, len(points))
		series = append(series, chart.ContinuousSeries{
			Name: "Baseline",
			Style: chart.Style{
				StrokeColor:     drawing.ColorFromHex("9ca3af"), // gray-400
				StrokeWidth:     1.0,
				StrokeDashArray: []float64{5.0, 3.0},
			},
			XValues: xValues,
			YValues: zero,
		})
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s · %s", name, ChartNote(s.Horizon)),
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: formatY,
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

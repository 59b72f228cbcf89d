package interfaces

import "github.com/seancribb/holdview/internal/models"

// SeriesStyle carries the presentation parameters for one chart draw.
type SeriesStyle struct {
	Tab     models.ChartTab
	Horizon models.Horizon
	// Note is the descriptive caption naming the horizon and point count.
	Note string
}

// SeriesRenderer abstracts the charting backend so the chart state machine
// can be exercised without a real drawing library.
type SeriesRenderer interface {
	// RenderSeries draws the given points under the style's tab.
	RenderSeries(points []float64, style SeriesStyle) error

	// Resize triggers a layout-only redraw of the last rendered series.
	Resize(width, height int) error
}

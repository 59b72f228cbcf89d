package dashboard

import (
	"os"
	"path/filepath"

	"github.com/seancribb/holdview/internal/interfaces"
	"github.com/seancribb/holdview/internal/models"
	"github.com/seancribb/holdview/internal/portfolio"
)

// FileRenderer draws chart series to a PNG file, the terminal client's
// stand-in for an on-screen canvas. Resize redraws the last series at the
// new dimensions without touching the data.
type FileRenderer struct {
	path   string
	width  int
	height int

	lastPoints []float64
	lastStyle  interfaces.SeriesStyle
	rendered   bool
}

var _ interfaces.SeriesRenderer = (*FileRenderer)(nil)

// NewFileRenderer creates a renderer targeting the given path. Zero
// dimensions fall back to the chart package defaults.
func NewFileRenderer(path string, width, height int) *FileRenderer {
	return &FileRenderer{path: path, width: width, height: height}
}

// Path returns the output file path.
func (r *FileRenderer) Path() string {
	return r.path
}

// RenderSeries draws the points under the style's tab and horizon.
func (r *FileRenderer) RenderSeries(points []float64, style interfaces.SeriesStyle) error {
	series := models.ChartSeries{Horizon: style.Horizon}
	if style.Tab == models.TabPerformance {
		series.Values = points // Empty() keys off Values
		series.Perf = points
	} else {
		series.Values = points
		series.Perf = portfolio.PerfSeries(points)
	}

	png, err := portfolio.RenderChartPNG(series, style.Tab, r.width, r.height)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(r.path, png, 0o644); err != nil {
		return err
	}

	r.lastPoints = points
	r.lastStyle = style
	r.rendered = true
	return nil
}

// Resize redraws the last rendered series at the new dimensions. A resize
// before any render just records the dimensions.
func (r *FileRenderer) Resize(width, height int) error {
	r.width = width
	r.height = height
	if !r.rendered {
		return nil
	}
	return r.RenderSeries(r.lastPoints, r.lastStyle)
}

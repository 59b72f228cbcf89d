package models

// Horizon is a user-selected time window controlling synthetic chart density.
type Horizon string

const (
	HorizonDay   Horizon = "1D"
	HorizonWeek  Horizon = "1W"
	HorizonMonth Horizon = "1M"
	HorizonYTD   Horizon = "YTD"
)

// Horizons lists all selectable horizons in display order.
var Horizons = []Horizon{HorizonDay, HorizonWeek, HorizonMonth, HorizonYTD}

// Points returns the synthetic sample count for the horizon. The counts are
// a presentation choice, not real sampling density.
func (h Horizon) Points() int {
	switch h {
	case HorizonDay:
		return 12
	case HorizonWeek:
		return 18
	case HorizonMonth:
		return 30
	case HorizonYTD:
		return 90
	default:
		return 0
	}
}

// Valid reports whether h is one of the selectable horizons.
func (h Horizon) Valid() bool {
	return h.Points() > 0
}

// Label returns a human-readable name for the horizon.
func (h Horizon) Label() string {
	switch h {
	case HorizonDay:
		return "1 day"
	case HorizonWeek:
		return "1 week"
	case HorizonMonth:
		return "1 month"
	case HorizonYTD:
		return "year to date"
	default:
		return string(h)
	}
}

// ChartTab selects which derived series the chart displays.
type ChartTab string

const (
	TabValue       ChartTab = "value"
	TabPerformance ChartTab = "performance"
)

// Valid reports whether t is a known chart tab.
func (t ChartTab) Valid() bool {
	return t == TabValue || t == TabPerformance
}

// ChartSeries holds the two parallel synthetic sequences for one horizon:
// absolute value per synthetic time step, and percentage return relative to
// the first element. Regenerated on demand, never persisted.
type ChartSeries struct {
	Horizon Horizon   `json:"horizon"`
	Values  []float64 `json:"values"`
	Perf    []float64 `json:"perf"`
}

// Empty reports whether the series has no drawable points.
func (s ChartSeries) Empty() bool {
	return len(s.Values) == 0
}

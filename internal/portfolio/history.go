package portfolio

import (
	"math"

	"github.com/seancribb/holdview/internal/models"
)

// Bounds for the synthetic curve: the opening value stays within ±8% of
// today's value regardless of the size of today's move, and no trough dips
// below 60% of today's value.
const (
	maxStartSwing = 0.08
	troughFloor   = 0.6
)

// Synthesize generates a smooth pseudo-historical value series anchored to
// today's real totals. The curve is deterministic for identical inputs:
// two sinusoidal ripples (full-window and 0.4-window periods, 1% and 0.3%
// amplitudes) over a linear drift toward today's change, with the final
// element forced to exactly totalValue. The series is an approximation for
// display only, not historical prices.
//
// Fewer than two points yields an empty series (nothing to chart).
func Synthesize(totalValue, pnlToday float64, points int) []float64 {
	if points < 2 {
		return nil
	}

	pctChange := 0.0
	if totalValue != 0 {
		pctChange = pnlToday / totalValue
	}

	start := totalValue * (1 - clamp(pctChange*4, -maxStartSwing, maxStartSwing))
	floor := troughFloor * totalValue

	series := make([]float64, points)
	for i := 0; i < points; i++ {
		progress := float64(i) / float64(points-1)
		wave := 0.01*math.Sin(2*math.Pi*progress) + 0.003*math.Sin(2*math.Pi*progress/0.4)
		drift := pctChange * 0.7 * progress
		v := start * (1 + drift + wave)
		if v < floor {
			v = floor
		}
		series[i] = v
	}

	// The chart must end precisely at today's real number.
	series[points-1] = totalValue
	return series
}

// PerfSeries derives the percentage-return series relative to the first
// element. A zero first element propagates NaN, matching the unguarded
// arithmetic elsewhere in the pipeline.
func PerfSeries(history []float64) []float64 {
	if len(history) == 0 {
		return nil
	}
	base := history[0]
	perf := make([]float64, len(history))
	for i, v := range history {
		perf[i] = (v - base) / base * 100
	}
	return perf
}

// BuildSeries synthesizes both chart sequences for a horizon from the
// current totals.
func BuildSeries(totalValue, pnlToday float64, horizon models.Horizon) models.ChartSeries {
	values := Synthesize(totalValue, pnlToday, horizon.Points())
	return models.ChartSeries{
		Horizon: horizon,
		Values:  values,
		Perf:    PerfSeries(values),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package portfolio

import (
	"math"
	"testing"

	"github.com/seancribb/holdview/internal/models"
)

func TestSynthesize_FewerThanTwoPoints(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if got := Synthesize(1000, 10, n); len(got) != 0 {
			t.Errorf("Synthesize(points=%d) len = %d, want 0", n, len(got))
		}
	}
}

func TestSynthesize_EndsExactlyAtTotalValue(t *testing.T) {
	cases := []struct {
		name       string
		totalValue float64
		pnlToday   float64
		points     int
	}{
		{"quiet day", 100000, 120, 30},
		{"big up day", 52430.55, 9000, 12},
		{"big down day", 52430.55, -9000, 90},
		{"flat", 817.25, 0, 18},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			series := Synthesize(tc.totalValue, tc.pnlToday, tc.points)
			if len(series) != tc.points {
				t.Fatalf("len = %d, want %d", len(series), tc.points)
			}
			if series[len(series)-1] != tc.totalValue {
				t.Errorf("last = %v, want exactly %v", series[len(series)-1], tc.totalValue)
			}
			floor := 0.6 * tc.totalValue
			for i, v := range series {
				if v < floor {
					t.Errorf("series[%d] = %v below floor %v", i, v, floor)
				}
			}
		})
	}
}

func TestSynthesize_StartBoundedDespiteExtremeSwing(t *testing.T) {
	// pctChange×4 would be 2.0; the clamp holds the opening value to ±8%.
	series := Synthesize(1000, 500, 30)
	if !approxEqual(series[0], 1000*(1-0.08), 1e-9) {
		t.Errorf("start = %v, want %v", series[0], 1000*0.92)
	}

	series = Synthesize(1000, -500, 30)
	if !approxEqual(series[0], 1000*(1+0.08), 1e-9) {
		t.Errorf("start = %v, want %v", series[0], 1000*1.08)
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	a := Synthesize(98765.43, -321.0, 90)
	b := Synthesize(98765.43, -321.0, 90)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("series differ at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSynthesize_ZeroTotalValue(t *testing.T) {
	series := Synthesize(0, 500, 12)
	for i, v := range series {
		if v != 0 {
			t.Errorf("series[%d] = %v, want 0 when total value is 0", i, v)
		}
	}
}

func TestPerfSeries_RelativeToFirstElement(t *testing.T) {
	perf := PerfSeries([]float64{100, 110, 95, 100})
	want := []float64{0, 10, -5, 0}
	for i := range want {
		if !approxEqual(perf[i], want[i], 1e-9) {
			t.Errorf("perf[%d] = %v, want %v", i, perf[i], want[i])
		}
	}
}

func TestPerfSeries_ZeroBasePropagatesNaN(t *testing.T) {
	perf := PerfSeries([]float64{0, 0})
	if !math.IsNaN(perf[0]) {
		t.Errorf("perf[0] = %v, want NaN from zero base", perf[0])
	}
}

func TestBuildSeries_HorizonPointCounts(t *testing.T) {
	cases := map[models.Horizon]int{
		models.HorizonDay:   12,
		models.HorizonWeek:  18,
		models.HorizonMonth: 30,
		models.HorizonYTD:   90,
	}

	for horizon, want := range cases {
		s := BuildSeries(50000, 250, horizon)
		if len(s.Values) != want {
			t.Errorf("%s values len = %d, want %d", horizon, len(s.Values), want)
		}
		if len(s.Perf) != want {
			t.Errorf("%s perf len = %d, want %d", horizon, len(s.Perf), want)
		}
		if s.Perf[0] != 0 {
			t.Errorf("%s perf[0] = %v, want 0", horizon, s.Perf[0])
		}
	}
}

package portfolio

import (
	"math"

	"github.com/seancribb/holdview/internal/models"
)

// Summarize aggregates the headline numbers from a position list.
// TopMover is the position with the greatest absolute per-share change;
// ties keep the first occurrence. For an empty list the totals are zero
// and TopMover is nil; renderers must guard.
func Summarize(positions []models.Position) models.Summary {
	var s models.Summary
	for i := range positions {
		p := positions[i]
		s.TotalValue += p.Price * p.Quantity
		s.PnLToday += p.Change * p.Quantity

		if s.TopMover == nil || math.Abs(p.Change) > math.Abs(s.TopMover.Change) {
			s.TopMover = &positions[i]
		}
	}
	return s
}

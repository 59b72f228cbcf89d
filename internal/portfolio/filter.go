package portfolio

import (
	"fmt"
	"strings"

	"github.com/seancribb/holdview/internal/models"
)

// AllPositionsLabel is the filter pill text when no filter is active.
const AllPositionsLabel = "All positions"

// Filter returns the positions whose symbol or name contains term as a
// case-insensitive substring, plus the label the filter pill should show.
// An empty (or whitespace-only) term returns the input slice unchanged.
// The input is never mutated.
func Filter(term string, positions []models.Position) ([]models.Position, string) {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return positions, AllPositionsLabel
	}

	filtered := make([]models.Position, 0, len(positions))
	for _, p := range positions {
		if strings.Contains(strings.ToLower(p.Symbol), needle) ||
			strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered, fmt.Sprintf("Filter: %s", needle)
}

// Package portfolio implements the dashboard's data pipeline: payload
// normalization, filtering, summary aggregation, and synthetic history.
package portfolio

import "github.com/seancribb/holdview/internal/models"

// Normalize converts the wire envelope into the canonical position list.
// When the payload carries no positions the fallback list is returned
// unchanged, so the dashboard never renders with zero rows.
//
// Per-share change tolerates backends that report only aggregate pnl:
// change := provided change, else pnl/quantity when quantity is non-zero,
// else 0. Malformed numeric fields are not validated here; NaN propagates.
func Normalize(resp *models.PortfolioResponse, fallback []models.Position) []models.Position {
	if resp == nil || len(resp.Positions) == 0 {
		return fallback
	}

	out := make([]models.Position, 0, len(resp.Positions))
	for _, raw := range resp.Positions {
		p := models.Position{
			Symbol:   raw.Symbol,
			Name:     raw.Name,
			Quantity: raw.Quantity,
			Price:    raw.Price,
			Currency: raw.Currency,
			Sector:   raw.Sector,
		}

		switch {
		case raw.Change != nil:
			p.Change = *raw.Change
		case raw.PnL != nil && raw.Quantity != 0:
			p.Change = *raw.PnL / raw.Quantity
		default:
			p.Change = 0
		}

		if p.Name == "" {
			p.Name = p.Symbol
		}
		if p.Currency == "" {
			p.Currency = "USD"
		}
		if p.Sector == "" {
			p.Sector = "N/A"
		}

		out = append(out, p)
	}
	return out
}

package portfolio

import "github.com/seancribb/holdview/internal/models"

// FallbackPositions returns the built-in sample holdings shown whenever the
// backend responds with an empty or absent position list. The dashboard
// must never render with zero rows.
func FallbackPositions() []models.Position {
	return []models.Position{
		{Symbol: "AAPL", Name: "Apple Inc.", Quantity: 120, Price: 187.42, Change: 1.18, Currency: "USD", Sector: "Technology"},
		{Symbol: "MSFT", Name: "Microsoft Corp.", Quantity: 80, Price: 422.15, Change: -0.64, Currency: "USD", Sector: "Technology"},
		{Symbol: "JNJ", Name: "Johnson & Johnson", Quantity: 60, Price: 158.03, Change: 0.41, Currency: "USD", Sector: "Healthcare"},
		{Symbol: "VTI", Name: "Vanguard Total Stock Market ETF", Quantity: 45, Price: 263.70, Change: 0.92, Currency: "USD", Sector: "ETF"},
	}
}

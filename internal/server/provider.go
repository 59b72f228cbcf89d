package server

import (
	"context"

	"github.com/seancribb/holdview/internal/models"
)

// MockProvider serves a fixed portfolio payload shaped like the IBKR
// gateway response. The rows are deliberately sparse (no name, change,
// currency, or sector) so the client-side normalizer fallbacks stay
// exercised end to end. Swap in a real gateway client behind the same
// interface when one is wired.
type MockProvider struct{}

// NewMockProvider returns the stub portfolio provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// FetchPortfolio returns the mock payload; the username is ignored.
func (m *MockProvider) FetchPortfolio(_ context.Context, _ string) (*models.PortfolioResponse, error) {
	pnl := func(v float64) *float64 { return &v }
	return &models.PortfolioResponse{
		Positions: []models.RawPosition{
			{Symbol: "AAPL", Quantity: 120, Price: 187.42, PnL: pnl(141.6)},
			{Symbol: "MSFT", Quantity: 80, Price: 422.15, PnL: pnl(-51.2)},
			{Symbol: "DMSO", Quantity: 800, Price: 1000.00, PnL: pnl(1000)},
		},
		Cash: 18250,
	}, nil
}

// Package models defines data structures for Holdview
package models

// Position is one fully-populated portfolio holding. It is the canonical
// shape the dashboard pipeline works with, produced once by normalization.
// Quantity is never negative; Change is the signed per-share delta for the
// current session in Currency.
type Position struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Change   float64 `json:"change"`
	Currency string  `json:"currency"`
	Sector   string  `json:"sector"`
}

// MarketValue returns the position's current market value.
func (p Position) MarketValue() float64 {
	return p.Price * p.Quantity
}

// DayPnL returns the position's signed profit/loss for the current session.
func (p Position) DayPnL() float64 {
	return p.Change * p.Quantity
}

// RawPosition is the partially-optional wire shape received from the backend.
// Pointer fields distinguish "absent" from zero; it exists only as input to
// normalization and is never stored.
type RawPosition struct {
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name,omitempty"`
	Quantity float64  `json:"quantity"`
	Price    float64  `json:"price"`
	Change   *float64 `json:"change,omitempty"`
	PnL      *float64 `json:"pnl,omitempty"`
	Currency string   `json:"currency,omitempty"`
	Sector   string   `json:"sector,omitempty"`
}

// PortfolioResponse is the wire envelope returned by GET /api/portfolio.
type PortfolioResponse struct {
	Positions []RawPosition `json:"positions,omitempty"`
	Cash      float64       `json:"cash,omitempty"`
}

// LoginRequest is the JSON body for POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the JSON body returned on successful login.
type LoginResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token,omitempty"`
}

// Summary aggregates the dashboard headline numbers. TopMover is nil when
// the position list is empty; renderers must guard.
type Summary struct {
	TotalValue float64   `json:"total_value"`
	PnLToday   float64   `json:"pnl_today"`
	TopMover   *Position `json:"top_mover,omitempty"`
}

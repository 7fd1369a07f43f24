package entity

import "time"

type Stock struct {
	StockID      string    `db:"stock_id" json:"stock_id"`
	Symbol       string    `db:"symbol" json:"symbol"`
	Name         string    `db:"name" json:"name"`
	CategoryID   *string   `db:"category_id" json:"category_id,omitempty"`
	CurrentPrice float64   `db:"current_price" json:"current_price"`
	BasePrice    float64   `db:"base_price" json:"base_price"`
	Volatility   float64   `db:"volatility" json:"volatility"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// StockPricePoint rows are append-only history.
type StockPricePoint struct {
	StockID string  `db:"stock_id" json:"stock_id"`
	Date    string  `db:"price_date" json:"date"`
	Price   float64 `db:"price" json:"price"`
}

// StockHolding tracks a position with a weighted average cost basis.
// Deleted when quantity reaches zero.
type StockHolding struct {
	HoldingID       string    `db:"holding_id" json:"holding_id"`
	UserID          string    `db:"user_id" json:"user_id"`
	StockID         string    `db:"stock_id" json:"stock_id"`
	Quantity        int       `db:"quantity" json:"quantity"`
	AverageBuyPrice float64   `db:"average_buy_price" json:"average_buy_price"`
	TotalInvested   float64   `db:"total_invested" json:"total_invested"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

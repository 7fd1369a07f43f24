package model

type ListStocksRequest struct {
	CategoryID string `json:"-" validate:"max=100"`
}

type GetStockRequest struct {
	StockID string `json:"-" validate:"required,max=100"`
}

type StockResponse struct {
	StockID      string  `json:"stock_id"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	CategoryID   *string `json:"category_id,omitempty"`
	CurrentPrice float64 `json:"current_price"`
}

type StockDetailResponse struct {
	StockResponse
	BasePrice    float64              `json:"base_price"`
	Volatility   float64              `json:"volatility"`
	PriceHistory []PricePointResponse `json:"price_history"`
}

type PricePointResponse struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type TradeRequest struct {
	UserID   string `json:"-" validate:"required,max=100"`
	StockID  string `json:"stock_id" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type BuyStockResponse struct {
	Message         string  `json:"message"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	TotalCost       float64 `json:"total_cost"`
	AverageBuyPrice float64 `json:"average_buy_price"`
	TransactionID   string  `json:"transaction_id"`
}

type SellStockResponse struct {
	Message        string  `json:"message"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	Proceeds       float64 `json:"proceeds"`
	RealizedProfit float64 `json:"realized_profit"`
	TransactionID  string  `json:"transaction_id"`
}

type GetPortfolioRequest struct {
	UserID string `json:"-" validate:"required,max=100"`
}

type HoldingResponse struct {
	StockID         string  `json:"stock_id"`
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	AverageBuyPrice float64 `json:"average_buy_price"`
	TotalInvested   float64 `json:"total_invested"`
	CurrentPrice    float64 `json:"current_price"`
	CurrentValue    float64 `json:"current_value"`
	ProfitLoss      float64 `json:"profit_loss"`
}

type PortfolioResponse struct {
	Holdings          []HoldingResponse `json:"holdings"`
	TotalInvested     float64           `json:"total_invested"`
	TotalCurrentValue float64           `json:"total_current_value"`
	TotalProfitLoss   float64           `json:"total_profit_loss"`
	IsMarketOpen      bool              `json:"is_market_open"`
}

package model

import "time"

type GetFarmRequest struct {
	UserID string `json:"-" validate:"required,max=100"`
}

type PlotResponse struct {
	PlotID         string     `json:"plot_id"`
	PlantID        *string    `json:"plant_id,omitempty"`
	PlantName      string     `json:"plant_name,omitempty"`
	PlantedAt      *time.Time `json:"planted_at,omitempty"`
	LastWatered    *time.Time `json:"last_watered,omitempty"`
	GrowthProgress float64    `json:"growth_progress"`
	Status         string     `json:"status"`
}

type SeedResponse struct {
	PlantID            string  `json:"plant_id"`
	Name               string  `json:"name"`
	SeedCost           float64 `json:"seed_cost"`
	GrowthTimeHours    float64 `json:"growth_time_hours"`
	WaterIntervalHours float64 `json:"water_interval_hours"`
	HarvestYield       int     `json:"harvest_yield"`
	YieldUnit          string  `json:"yield_unit"`
	BaseSellPrice      float64 `json:"base_sell_price"`
}

type InventoryResponse struct {
	PlantID   string `json:"plant_id"`
	PlantName string `json:"plant_name,omitempty"`
	Quantity  int    `json:"quantity"`
}

type MarketPriceResponse struct {
	PlantID      string  `json:"plant_id"`
	Date         string  `json:"date"`
	CurrentPrice float64 `json:"current_price"`
}

type FarmResponse struct {
	Plots        []PlotResponse        `json:"plots"`
	Seeds        []SeedResponse        `json:"seeds"`
	Inventory    []InventoryResponse   `json:"inventory"`
	MarketPrices []MarketPriceResponse `json:"market_prices"`
	IsMarketOpen bool                  `json:"is_market_open"`
	PlotCost     float64               `json:"plot_cost"`
}

type PlantRequest struct {
	UserID  string `json:"-" validate:"required,max=100"`
	PlotID  string `json:"plot_id" validate:"required,max=100"`
	PlantID string `json:"plant_id" validate:"required,max=100"`
}

type PlantResponse struct {
	Message  string  `json:"message"`
	SeedCost float64 `json:"seed_cost"`
}

type WaterRequest struct {
	UserID string `json:"-" validate:"required,max=100"`
	PlotID string `json:"-" validate:"required,max=100"`
}

type WaterResponse struct {
	Message string `json:"message"`
}

type HarvestRequest struct {
	UserID string `json:"-" validate:"required,max=100"`
	PlotID string `json:"-" validate:"required,max=100"`
}

type HarvestResponse struct {
	Message   string `json:"message"`
	PlantID   string `json:"plant_id"`
	Yield     int    `json:"yield"`
	YieldUnit string `json:"yield_unit"`
}

type SellProduceRequest struct {
	UserID   string `json:"-" validate:"required,max=100"`
	PlantID  string `json:"plant_id" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type SellProduceResponse struct {
	Message       string  `json:"message"`
	UnitPrice     float64 `json:"unit_price"`
	Proceeds      float64 `json:"proceeds"`
	TransactionID string  `json:"transaction_id"`
}

type BuyPlotRequest struct {
	UserID string `json:"-" validate:"required,max=100"`
}

type BuyPlotResponse struct {
	Message string  `json:"message"`
	PlotID  string  `json:"plot_id"`
	Cost    float64 `json:"cost"`
}

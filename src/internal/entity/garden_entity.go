package entity

import "time"

const (
	PlotEmpty       = "empty"
	PlotGrowing     = "growing"
	PlotWaterNeeded = "water_needed"
	PlotWilting     = "wilting"
	PlotDead        = "dead"
	PlotReady       = "ready"
)

type GardenPlot struct {
	PlotID         string     `db:"plot_id" json:"plot_id"`
	UserID         string     `db:"user_id" json:"user_id"`
	PlantID        *string    `db:"plant_id" json:"plant_id,omitempty"`
	PlantedAt      *time.Time `db:"planted_at" json:"planted_at,omitempty"`
	LastWatered    *time.Time `db:"last_watered" json:"last_watered,omitempty"`
	GrowthProgress float64    `db:"growth_progress" json:"growth_progress"`
	Status         string     `db:"status" json:"status"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// PlantSpecies is reference data seeded by migrations.
type PlantSpecies struct {
	PlantID                 string  `db:"plant_id" json:"plant_id"`
	Name                    string  `db:"name" json:"name"`
	SeedCost                float64 `db:"seed_cost" json:"seed_cost"`
	GrowthTimeHours         float64 `db:"growth_time_hours" json:"growth_time_hours"`
	WaterIntervalHours      float64 `db:"water_interval_hours" json:"water_interval_hours"`
	HarvestYield            int     `db:"harvest_yield" json:"harvest_yield"`
	YieldUnit               string  `db:"yield_unit" json:"yield_unit"`
	PriceFluctuationPercent float64 `db:"price_fluctuation_percent" json:"price_fluctuation_percent"`
	BaseSellPrice           float64 `db:"base_sell_price" json:"base_sell_price"`
}

type HarvestInventory struct {
	InventoryID string `db:"inventory_id" json:"inventory_id"`
	UserID      string `db:"user_id" json:"user_id"`
	PlantID     string `db:"plant_id" json:"plant_id"`
	Quantity    int    `db:"quantity" json:"quantity"`
}

// MarketPrice is the daily produce price snapshot, created lazily on the
// first sale of the day or by the scheduler.
type MarketPrice struct {
	PlantID      string  `db:"plant_id" json:"plant_id"`
	Date         string  `db:"price_date" json:"date"`
	CurrentPrice float64 `db:"current_price" json:"current_price"`
}

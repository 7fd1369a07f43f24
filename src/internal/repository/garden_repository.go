package repository

import (
	"context"
	"time"

	"investment-service/src/internal/entity"
	"investment-service/src/pkg/databases/mysql"

	"github.com/google/uuid"
)

type GardenRepository struct {
	DB mysql.DBInterface
}

func NewGardenRepository(db mysql.DBInterface) *GardenRepository {
	return &GardenRepository{
		DB: db,
	}
}

func (r *GardenRepository) FindPlots(ctx context.Context, userID string) ([]entity.GardenPlot, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var plots []entity.GardenPlot
	query := `
		SELECT plot_id, user_id, plant_id, planted_at, last_watered, growth_progress, status, created_at, updated_at
		FROM garden_plots
		WHERE user_id = ?
		ORDER BY created_at`

	err = db.SelectContext(ctx, &plots, query, userID)
	if err != nil {
		return nil, err
	}

	return plots, nil
}

func (r *GardenRepository) FindPlot(ctx context.Context, userID, plotID string) (*entity.GardenPlot, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var plot entity.GardenPlot
	query := `
		SELECT plot_id, user_id, plant_id, planted_at, last_watered, growth_progress, status, created_at, updated_at
		FROM garden_plots
		WHERE user_id = ? AND plot_id = ?`

	err = db.GetContext(ctx, &plot, query, userID, plotID)
	if err != nil {
		return nil, err
	}

	return &plot, nil
}

func (r *GardenRepository) FindAllSpecies(ctx context.Context) ([]entity.PlantSpecies, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var species []entity.PlantSpecies
	query := `
		SELECT plant_id, name, seed_cost, growth_time_hours, water_interval_hours, harvest_yield, yield_unit, price_fluctuation_percent, base_sell_price
		FROM plant_species
		ORDER BY seed_cost`

	err = db.SelectContext(ctx, &species, query)
	if err != nil {
		return nil, err
	}

	return species, nil
}

func (r *GardenRepository) FindSpecies(ctx context.Context, plantID string) (*entity.PlantSpecies, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var species entity.PlantSpecies
	query := `
		SELECT plant_id, name, seed_cost, growth_time_hours, water_interval_hours, harvest_yield, yield_unit, price_fluctuation_percent, base_sell_price
		FROM plant_species
		WHERE plant_id = ?`

	err = db.GetContext(ctx, &species, query, plantID)
	if err != nil {
		return nil, err
	}

	return &species, nil
}

// UpdatePlotLifecycle persists a lazily evaluated plot state (decay
// transitions, watering, dead-plot reset).
func (r *GardenRepository) UpdatePlotLifecycle(ctx context.Context, plot *entity.GardenPlot) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE garden_plots
		SET plant_id = ?, planted_at = ?, last_watered = ?, growth_progress = ?, status = ?, updated_at = NOW()
		WHERE plot_id = ? AND user_id = ?`

	_, err = db.ExecContext(ctx, query,
		plot.PlantID, plot.PlantedAt, plot.LastWatered, plot.GrowthProgress, plot.Status,
		plot.PlotID, plot.UserID)
	return err
}

type PlantParams struct {
	Plot            *entity.GardenPlot
	Species         *entity.PlantSpecies
	SpendingAccount *entity.WalletAccount
	Now             time.Time
}

// Plant seeds an empty plot and debits the seed cost atomically. The status
// guard in the UPDATE rejects a concurrent plant into the same plot.
func (r *GardenRepository) Plant(ctx context.Context, params PlantParams) (*entity.Transaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE garden_plots
		SET plant_id = ?, planted_at = ?, last_watered = ?, growth_progress = 0, status = ?, updated_at = NOW()
		WHERE plot_id = ? AND user_id = ? AND status = ?`,
		params.Species.PlantID, params.Now, params.Now, entity.PlotGrowing,
		params.Plot.PlotID, params.Plot.UserID, entity.PlotEmpty)
	if err != nil {
		return nil, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrInvalidState
	}

	if err := debitIfSufficientTx(ctx, tx, params.SpendingAccount.AccountID, params.Species.SeedCost); err != nil {
		return nil, err
	}

	record := &entity.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          params.Plot.UserID,
		FromAccount:     &params.SpendingAccount.AccountType,
		Amount:          params.Species.SeedCost,
		TransactionType: "seed_purchase",
		Description:     "Planted " + params.Species.Name,
		CreatedAt:       params.Now,
	}
	if err := insertTransactionTx(ctx, tx, record); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return record, nil
}

type HarvestParams struct {
	Plot    *entity.GardenPlot
	Species *entity.PlantSpecies
}

// Harvest clears a ready plot and adds the yield to the harvest inventory.
func (r *GardenRepository) Harvest(ctx context.Context, params HarvestParams) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE garden_plots
		SET plant_id = NULL, planted_at = NULL, last_watered = NULL, growth_progress = 0, status = ?, updated_at = NOW()
		WHERE plot_id = ? AND user_id = ? AND status = ?`,
		entity.PlotEmpty, params.Plot.PlotID, params.Plot.UserID, entity.PlotReady)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrInvalidState
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO harvest_inventory (inventory_id, user_id, plant_id, quantity)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)`,
		uuid.NewString(), params.Plot.UserID, params.Species.PlantID, params.Species.HarvestYield)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *GardenRepository) FindInventory(ctx context.Context, userID string) ([]entity.HarvestInventory, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var inventory []entity.HarvestInventory
	query := `
		SELECT inventory_id, user_id, plant_id, quantity
		FROM harvest_inventory
		WHERE user_id = ?`

	err = db.SelectContext(ctx, &inventory, query, userID)
	if err != nil {
		return nil, err
	}

	return inventory, nil
}

type SellProduceParams struct {
	UserID          string
	Species         *entity.PlantSpecies
	Quantity        int
	UnitPrice       float64
	Proceeds        float64
	SpendingAccount *entity.WalletAccount
	Now             time.Time
}

// SellProduce decrements inventory (guarded against overselling), credits the
// spending account and appends the ledger row in one transaction.
func (r *GardenRepository) SellProduce(ctx context.Context, params SellProduceParams) (*entity.Transaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE harvest_inventory
		SET quantity = quantity - ?
		WHERE user_id = ? AND plant_id = ? AND quantity >= ?`,
		params.Quantity, params.UserID, params.Species.PlantID, params.Quantity)
	if err != nil {
		return nil, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrInsufficientInventory
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM harvest_inventory
		WHERE user_id = ? AND plant_id = ? AND quantity = 0`,
		params.UserID, params.Species.PlantID)
	if err != nil {
		return nil, err
	}

	if err := creditTx(ctx, tx, params.SpendingAccount.AccountID, params.Proceeds); err != nil {
		return nil, err
	}

	record := &entity.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          params.UserID,
		ToAccount:       &params.SpendingAccount.AccountType,
		Amount:          params.Proceeds,
		TransactionType: "produce_sale",
		Description:     "Sold " + params.Species.Name,
		CreatedAt:       params.Now,
	}
	if err := insertTransactionTx(ctx, tx, record); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return record, nil
}

type BuyPlotParams struct {
	UserID          string
	Cost            float64
	SpendingAccount *entity.WalletAccount
	Now             time.Time
}

func (r *GardenRepository) BuyPlot(ctx context.Context, params BuyPlotParams) (string, *entity.Transaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return "", nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return "", nil, err
	}
	defer tx.Rollback()

	if err := debitIfSufficientTx(ctx, tx, params.SpendingAccount.AccountID, params.Cost); err != nil {
		return "", nil, err
	}

	plotID := uuid.NewString()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO garden_plots (plot_id, user_id, growth_progress, status, created_at, updated_at)
		VALUES (?, ?, 0, ?, NOW(), NOW())`,
		plotID, params.UserID, entity.PlotEmpty)
	if err != nil {
		return "", nil, err
	}

	record := &entity.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          params.UserID,
		FromAccount:     &params.SpendingAccount.AccountType,
		Amount:          params.Cost,
		TransactionType: "plot_purchase",
		Description:     "Bought a garden plot",
		CreatedAt:       params.Now,
	}
	if err := insertTransactionTx(ctx, tx, record); err != nil {
		return "", nil, err
	}

	if err := tx.Commit(); err != nil {
		return "", nil, err
	}

	return plotID, record, nil
}

func (r *GardenRepository) FindMarketPrice(ctx context.Context, plantID, date string) (*entity.MarketPrice, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var price entity.MarketPrice
	query := `
		SELECT plant_id, price_date, current_price
		FROM market_prices
		WHERE plant_id = ? AND price_date = ?`

	err = db.GetContext(ctx, &price, query, plantID, date)
	if err != nil {
		return nil, err
	}

	return &price, nil
}

func (r *GardenRepository) FindMarketPrices(ctx context.Context, date string) ([]entity.MarketPrice, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var prices []entity.MarketPrice
	query := `
		SELECT plant_id, price_date, current_price
		FROM market_prices
		WHERE price_date = ?`

	err = db.SelectContext(ctx, &prices, query, date)
	if err != nil {
		return nil, err
	}

	return prices, nil
}

// UpsertMarketPrice keeps the first price written for the day; a concurrent
// lazy create and the scheduler never overwrite each other.
func (r *GardenRepository) UpsertMarketPrice(ctx context.Context, price *entity.MarketPrice) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT IGNORE INTO market_prices (plant_id, price_date, current_price)
		VALUES (?, ?, ?)`,
		price.PlantID, price.Date, price.CurrentPrice)
	return err
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"investment-service/src/internal/entity"
	"investment-service/src/pkg/databases/mysql"
	"investment-service/src/pkg/utils"

	"github.com/google/uuid"
)

type StockRepository struct {
	DB mysql.DBInterface
}

func NewStockRepository(db mysql.DBInterface) *StockRepository {
	return &StockRepository{
		DB: db,
	}
}

func (r *StockRepository) FindStocks(ctx context.Context, categoryID string) ([]entity.Stock, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var stocks []entity.Stock
	query := `
		SELECT stock_id, symbol, name, category_id, current_price, base_price, volatility, is_active, updated_at
		FROM stocks
		WHERE is_active = 1`
	args := []interface{}{}
	if categoryID != "" {
		query += ` AND category_id = ?`
		args = append(args, categoryID)
	}
	query += ` ORDER BY symbol`

	err = db.SelectContext(ctx, &stocks, query, args...)
	if err != nil {
		return nil, err
	}

	return stocks, nil
}

func (r *StockRepository) FindStock(ctx context.Context, stockID string) (*entity.Stock, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var stock entity.Stock
	query := `
		SELECT stock_id, symbol, name, category_id, current_price, base_price, volatility, is_active, updated_at
		FROM stocks
		WHERE stock_id = ?`

	err = db.GetContext(ctx, &stock, query, stockID)
	if err != nil {
		return nil, err
	}

	return &stock, nil
}

func (r *StockRepository) FindPriceHistory(ctx context.Context, stockID string, limit int) ([]entity.StockPricePoint, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var history []entity.StockPricePoint
	query := `
		SELECT stock_id, price_date, price
		FROM stock_price_history
		WHERE stock_id = ?
		ORDER BY price_date DESC
		LIMIT ?`

	err = db.SelectContext(ctx, &history, query, stockID, limit)
	if err != nil {
		return nil, err
	}

	return history, nil
}

func (r *StockRepository) FindHoldings(ctx context.Context, userID string) ([]entity.StockHolding, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var holdings []entity.StockHolding
	query := `
		SELECT holding_id, user_id, stock_id, quantity, average_buy_price, total_invested, updated_at
		FROM stock_holdings
		WHERE user_id = ?`

	err = db.SelectContext(ctx, &holdings, query, userID)
	if err != nil {
		return nil, err
	}

	return holdings, nil
}

type BuyStockParams struct {
	UserID           string
	Stock            *entity.Stock
	Quantity         int
	Cost             float64
	InvestingAccount *entity.WalletAccount
	Now              time.Time
}

// Buy debits the investing account and folds the lot into the holding's
// weighted average cost basis, all in one transaction.
func (r *StockRepository) Buy(ctx context.Context, params BuyStockParams) (*entity.Transaction, *entity.StockHolding, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	if err := debitIfSufficientTx(ctx, tx, params.InvestingAccount.AccountID, params.Cost); err != nil {
		return nil, nil, err
	}

	var holding entity.StockHolding
	err = tx.QueryRowxContext(ctx, `
		SELECT holding_id, user_id, stock_id, quantity, average_buy_price, total_invested, updated_at
		FROM stock_holdings
		WHERE user_id = ? AND stock_id = ?
		FOR UPDATE`,
		params.UserID, params.Stock.StockID).StructScan(&holding)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, nil, err
	}

	if errors.Is(err, sql.ErrNoRows) {
		holding = entity.StockHolding{
			HoldingID:       uuid.NewString(),
			UserID:          params.UserID,
			StockID:         params.Stock.StockID,
			Quantity:        params.Quantity,
			AverageBuyPrice: utils.Round2(params.Cost / float64(params.Quantity)),
			TotalInvested:   params.Cost,
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO stock_holdings (holding_id, user_id, stock_id, quantity, average_buy_price, total_invested, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, NOW())`,
			holding.HoldingID, holding.UserID, holding.StockID,
			holding.Quantity, holding.AverageBuyPrice, holding.TotalInvested)
		if err != nil {
			return nil, nil, err
		}
	} else {
		holding.Quantity += params.Quantity
		holding.TotalInvested = utils.Round2(holding.TotalInvested + params.Cost)
		holding.AverageBuyPrice = utils.Round2(holding.TotalInvested / float64(holding.Quantity))
		_, err = tx.ExecContext(ctx, `
			UPDATE stock_holdings
			SET quantity = ?, average_buy_price = ?, total_invested = ?, updated_at = NOW()
			WHERE holding_id = ?`,
			holding.Quantity, holding.AverageBuyPrice, holding.TotalInvested, holding.HoldingID)
		if err != nil {
			return nil, nil, err
		}
	}

	record := &entity.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          params.UserID,
		FromAccount:     &params.InvestingAccount.AccountType,
		Amount:          params.Cost,
		TransactionType: "stock_buy",
		Description:     "Bought " + params.Stock.Symbol,
		CreatedAt:       params.Now,
	}
	if err := insertTransactionTx(ctx, tx, record); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	return record, &holding, nil
}

type SellStockParams struct {
	UserID           string
	Stock            *entity.Stock
	Quantity         int
	Proceeds         float64
	InvestingAccount *entity.WalletAccount
	Now              time.Time
}

type SellStockResult struct {
	Transaction     *entity.Transaction
	AverageBuyPrice float64
	RemainingQty    int
}

// Sell reduces the holding proportionally, deletes it at zero quantity and
// credits the investing account.
func (r *StockRepository) Sell(ctx context.Context, params SellStockParams) (*SellStockResult, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var holding entity.StockHolding
	err = tx.QueryRowxContext(ctx, `
		SELECT holding_id, user_id, stock_id, quantity, average_buy_price, total_invested, updated_at
		FROM stock_holdings
		WHERE user_id = ? AND stock_id = ?
		FOR UPDATE`,
		params.UserID, params.Stock.StockID).StructScan(&holding)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsufficientShares
		}
		return nil, err
	}
	if holding.Quantity < params.Quantity {
		return nil, ErrInsufficientShares
	}

	remaining := holding.Quantity - params.Quantity
	if remaining == 0 {
		_, err = tx.ExecContext(ctx, `DELETE FROM stock_holdings WHERE holding_id = ?`, holding.HoldingID)
		if err != nil {
			return nil, err
		}
	} else {
		newInvested := utils.Round2(holding.TotalInvested * (1 - float64(params.Quantity)/float64(holding.Quantity)))
		_, err = tx.ExecContext(ctx, `
			UPDATE stock_holdings
			SET quantity = ?, total_invested = ?, updated_at = NOW()
			WHERE holding_id = ?`,
			remaining, newInvested, holding.HoldingID)
		if err != nil {
			return nil, err
		}
	}

	if err := creditTx(ctx, tx, params.InvestingAccount.AccountID, params.Proceeds); err != nil {
		return nil, err
	}

	record := &entity.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          params.UserID,
		ToAccount:       &params.InvestingAccount.AccountType,
		Amount:          params.Proceeds,
		TransactionType: "stock_sell",
		Description:     "Sold " + params.Stock.Symbol,
		CreatedAt:       params.Now,
	}
	if err := insertTransactionTx(ctx, tx, record); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &SellStockResult{
		Transaction:     record,
		AverageBuyPrice: holding.AverageBuyPrice,
		RemainingQty:    remaining,
	}, nil
}

// UpdatePriceWithHistory writes the walked price and appends the daily
// history point in one transaction.
func (r *StockRepository) UpdatePriceWithHistory(ctx context.Context, stockID string, price float64, date string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE stocks
		SET current_price = ?, updated_at = NOW()
		WHERE stock_id = ?`,
		price, stockID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO stock_price_history (stock_id, price_date, price)
		VALUES (?, ?, ?)`,
		stockID, date, price)
	if err != nil {
		return err
	}

	return tx.Commit()
}

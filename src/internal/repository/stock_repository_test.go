package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"investment-service/src/internal/entity"
	"investment-service/src/pkg/databases/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupStockMock(t *testing.T) (*StockRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewStockRepository(mysql.NewFromDB(sqlxDB))

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func holdingColumns() []string {
	return []string{"holding_id", "user_id", "stock_id", "quantity", "average_buy_price", "total_invested", "updated_at"}
}

func testStock() *entity.Stock {
	return &entity.Stock{StockID: "stk-1", Symbol: "LEMON", Name: "Lemonade Stand Co", CurrentPrice: 25.0, IsActive: true}
}

func investingAccount() *entity.WalletAccount {
	return &entity.WalletAccount{AccountID: "acc-inv", AccountType: entity.AccountInvesting}
}

func TestBuy_CreatesNewHolding(t *testing.T) {
	repo, mock, close := setupStockMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallet_accounts SET balance = balance - ?")).
		WithArgs(75.0, "acc-inv", 75.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT holding_id, user_id, stock_id, quantity, average_buy_price, total_invested, updated_at FROM stock_holdings")).
		WithArgs("user-1", "stk-1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO stock_holdings")).
		WithArgs(sqlmock.AnyArg(), "user-1", "stk-1", 3, 25.0, 75.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(sqlmock.AnyArg(), "user-1", "investing", nil, 75.0, "stock_buy", "Bought LEMON", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	record, holding, err := repo.Buy(ctx, BuyStockParams{
		UserID:           "user-1",
		Stock:            testStock(),
		Quantity:         3,
		Cost:             75.0,
		InvestingAccount: investingAccount(),
		Now:              time.Now(),
	})
	require.NoError(t, err)
	require.Equal(t, "stock_buy", record.TransactionType)
	require.Equal(t, 3, holding.Quantity)
	require.Equal(t, 25.0, holding.AverageBuyPrice)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBuy_AveragesCostBasis(t *testing.T) {
	repo, mock, close := setupStockMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	// holding 3 shares at 20.00; buying 2 more for 50.00 lands on 5 at 22.00
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallet_accounts SET balance = balance - ?")).
		WithArgs(50.0, "acc-inv", 50.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT holding_id, user_id, stock_id, quantity, average_buy_price, total_invested, updated_at FROM stock_holdings")).
		WithArgs("user-1", "stk-1").
		WillReturnRows(sqlmock.NewRows(holdingColumns()).
			AddRow("hold-1", "user-1", "stk-1", 3, 20.0, 60.0, now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE stock_holdings SET quantity = ?, average_buy_price = ?, total_invested = ?")).
		WithArgs(5, 22.0, 110.0, "hold-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(sqlmock.AnyArg(), "user-1", "investing", nil, 50.0, "stock_buy", "Bought LEMON", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	_, holding, err := repo.Buy(ctx, BuyStockParams{
		UserID:           "user-1",
		Stock:            testStock(),
		Quantity:         2,
		Cost:             50.0,
		InvestingAccount: investingAccount(),
		Now:              now,
	})
	require.NoError(t, err)
	require.Equal(t, 5, holding.Quantity)
	require.Equal(t, 22.0, holding.AverageBuyPrice)
	require.Equal(t, 110.0, holding.TotalInvested)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBuy_InsufficientFunds(t *testing.T) {
	repo, mock, close := setupStockMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallet_accounts SET balance = balance - ?")).
		WithArgs(75.0, "acc-inv", 75.0).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, _, err := repo.Buy(ctx, BuyStockParams{
		UserID:           "user-1",
		Stock:            testStock(),
		Quantity:         3,
		Cost:             75.0,
		InvestingAccount: investingAccount(),
		Now:              time.Now(),
	})
	require.True(t, errors.Is(err, ErrInsufficientFunds))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSell_ReducesInvestedProportionally(t *testing.T) {
	repo, mock, close := setupStockMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	// selling 2 of 5 keeps 3/5 of the invested amount
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT holding_id, user_id, stock_id, quantity, average_buy_price, total_invested, updated_at FROM stock_holdings")).
		WithArgs("user-1", "stk-1").
		WillReturnRows(sqlmock.NewRows(holdingColumns()).
			AddRow("hold-1", "user-1", "stk-1", 5, 22.0, 110.0, now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE stock_holdings SET quantity = ?, total_invested = ?")).
		WithArgs(3, 66.0, "hold-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallet_accounts SET balance = balance + ?")).
		WithArgs(60.0, "acc-inv").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(sqlmock.AnyArg(), "user-1", nil, "investing", 60.0, "stock_sell", "Sold LEMON", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	result, err := repo.Sell(ctx, SellStockParams{
		UserID:           "user-1",
		Stock:            testStock(),
		Quantity:         2,
		Proceeds:         60.0,
		InvestingAccount: investingAccount(),
		Now:              now,
	})
	require.NoError(t, err)
	require.Equal(t, 3, result.RemainingQty)
	require.Equal(t, 22.0, result.AverageBuyPrice)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSell_DeletesHoldingAtZero(t *testing.T) {
	repo, mock, close := setupStockMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT holding_id, user_id, stock_id, quantity, average_buy_price, total_invested, updated_at FROM stock_holdings")).
		WithArgs("user-1", "stk-1").
		WillReturnRows(sqlmock.NewRows(holdingColumns()).
			AddRow("hold-1", "user-1", "stk-1", 2, 22.0, 44.0, now))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM stock_holdings WHERE holding_id = ?")).
		WithArgs("hold-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallet_accounts SET balance = balance + ?")).
		WithArgs(50.0, "acc-inv").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(sqlmock.AnyArg(), "user-1", nil, "investing", 50.0, "stock_sell", "Sold LEMON", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	result, err := repo.Sell(ctx, SellStockParams{
		UserID:           "user-1",
		Stock:            testStock(),
		Quantity:         2,
		Proceeds:         50.0,
		InvestingAccount: investingAccount(),
		Now:              now,
	})
	require.NoError(t, err)
	require.Equal(t, 0, result.RemainingQty)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSell_InsufficientShares(t *testing.T) {
	repo, mock, close := setupStockMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT holding_id, user_id, stock_id, quantity, average_buy_price, total_invested, updated_at FROM stock_holdings")).
		WithArgs("user-1", "stk-1").
		WillReturnRows(sqlmock.NewRows(holdingColumns()).
			AddRow("hold-1", "user-1", "stk-1", 1, 22.0, 22.0, now))
	mock.ExpectRollback()

	_, err := repo.Sell(ctx, SellStockParams{
		UserID:           "user-1",
		Stock:            testStock(),
		Quantity:         2,
		Proceeds:         50.0,
		InvestingAccount: investingAccount(),
		Now:              now,
	})
	require.True(t, errors.Is(err, ErrInsufficientShares))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSell_NoHolding(t *testing.T) {
	repo, mock, close := setupStockMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT holding_id, user_id, stock_id, quantity, average_buy_price, total_invested, updated_at FROM stock_holdings")).
		WithArgs("user-1", "stk-1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Sell(ctx, SellStockParams{
		UserID:           "user-1",
		Stock:            testStock(),
		Quantity:         1,
		Proceeds:         25.0,
		InvestingAccount: investingAccount(),
		Now:              time.Now(),
	})
	require.True(t, errors.Is(err, ErrInsufficientShares))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePriceWithHistory(t *testing.T) {
	repo, mock, close := setupStockMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE stocks SET current_price = ?")).
		WithArgs(26.5, "stk-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO stock_price_history (stock_id, price_date, price)")).
		WithArgs("stk-1", "2026-08-31", 26.5).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.UpdatePriceWithHistory(ctx, "stk-1", 26.5, "2026-08-31")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

package usecase

import (
	"context"
	"regexp"
	"testing"
	"time"

	"investment-service/src/internal/gateway/messaging"
	"investment-service/src/internal/model"
	"investment-service/src/internal/repository"
	"investment-service/src/pkg/clock"
	"investment-service/src/pkg/databases/mysql"
	httpError "investment-service/src/pkg/http-error"
	"investment-service/src/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupStockUseCase(t *testing.T, clk clock.Clock) (*StockUseCase, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	cfg := testConfig()
	log.InitLogger(cfg)
	logger := log.GetLogger()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	dbi := mysql.NewFromDB(sqlxDB)
	producer := messaging.NewTransactionProducer(nil, logger)
	uc := NewStockUseCase(
		logger,
		validator.New(),
		repository.NewStockRepository(dbi),
		repository.NewWalletRepository(dbi),
		cfg,
		producer,
		clk,
	)

	closer := func() { sqlxDB.Close() }
	return uc, mock, closer
}

func stockColumns() []string {
	return []string{"stock_id", "symbol", "name", "category_id", "current_price", "base_price", "volatility", "is_active", "updated_at"}
}

func accountColumns() []string {
	return []string{"account_id", "user_id", "account_type", "balance", "created_at", "updated_at"}
}

func TestBuy_ClosedMarket(t *testing.T) {
	// 20:00 is outside the 09:00-15:00 stock window
	now := time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)
	uc, _, close := setupStockUseCase(t, clock.Fixed{T: now})
	defer close()

	result := uc.Buy(context.Background(), &model.TradeRequest{
		UserID:   "user-1",
		StockID:  "stk-1",
		Quantity: 1,
	})
	require.Error(t, result.Error)
	commonErr, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	require.Equal(t, 400, commonErr.Code)
}

func TestBuy_AveragesCostBasis(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	uc, mock, close := setupStockUseCase(t, clock.Fixed{T: now})
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock_id, symbol, name, category_id, current_price, base_price, volatility, is_active, updated_at FROM stocks WHERE stock_id = ?")).
		WithArgs("stk-1").
		WillReturnRows(sqlmock.NewRows(stockColumns()).
			AddRow("stk-1", "LEMON", "Lemonade Stand Co", nil, 25.0, 20.0, 0.05, true, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT account_id, user_id, account_type, balance, created_at, updated_at FROM wallet_accounts WHERE user_id = ? AND account_type = ?")).
		WithArgs("user-1", "investing").
		WillReturnRows(sqlmock.NewRows(accountColumns()).
			AddRow("acc-inv", "user-1", "investing", 200.0, now, now))

	// 3 held at 20.00 plus 2 bought at 25.00 averages to 22.00
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallet_accounts SET balance = balance - ?")).
		WithArgs(50.0, "acc-inv", 50.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT holding_id, user_id, stock_id, quantity, average_buy_price, total_invested, updated_at FROM stock_holdings")).
		WithArgs("user-1", "stk-1").
		WillReturnRows(sqlmock.NewRows([]string{"holding_id", "user_id", "stock_id", "quantity", "average_buy_price", "total_invested", "updated_at"}).
			AddRow("hold-1", "user-1", "stk-1", 3, 20.0, 60.0, now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE stock_holdings SET quantity = ?, average_buy_price = ?, total_invested = ?")).
		WithArgs(5, 22.0, 110.0, "hold-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(sqlmock.AnyArg(), "user-1", "investing", nil, 50.0, "stock_buy", "Bought LEMON", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	result := uc.Buy(context.Background(), &model.TradeRequest{
		UserID:   "user-1",
		StockID:  "stk-1",
		Quantity: 2,
	})
	require.Nil(t, result.Error)

	response := result.Data.(*model.BuyStockResponse)
	require.Equal(t, 50.0, response.TotalCost)
	require.Equal(t, 22.0, response.AverageBuyPrice)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBuy_InactiveStock(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	uc, mock, close := setupStockUseCase(t, clock.Fixed{T: now})
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock_id, symbol, name, category_id, current_price, base_price, volatility, is_active, updated_at FROM stocks WHERE stock_id = ?")).
		WithArgs("stk-1").
		WillReturnRows(sqlmock.NewRows(stockColumns()).
			AddRow("stk-1", "LEMON", "Lemonade Stand Co", nil, 25.0, 20.0, 0.05, false, now))

	result := uc.Buy(context.Background(), &model.TradeRequest{
		UserID:   "user-1",
		StockID:  "stk-1",
		Quantity: 1,
	})
	require.Error(t, result.Error)
	commonErr, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	require.Equal(t, 400, commonErr.Code)
}

func TestSell_RealizedProfit(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	uc, mock, close := setupStockUseCase(t, clock.Fixed{T: now})
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock_id, symbol, name, category_id, current_price, base_price, volatility, is_active, updated_at FROM stocks WHERE stock_id = ?")).
		WithArgs("stk-1").
		WillReturnRows(sqlmock.NewRows(stockColumns()).
			AddRow("stk-1", "LEMON", "Lemonade Stand Co", nil, 25.0, 20.0, 0.05, true, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT account_id, user_id, account_type, balance, created_at, updated_at FROM wallet_accounts WHERE user_id = ? AND account_type = ?")).
		WithArgs("user-1", "investing").
		WillReturnRows(sqlmock.NewRows(accountColumns()).
			AddRow("acc-inv", "user-1", "investing", 200.0, now, now))

	// bought at an average of 20.00, sold at 25.00: 2 shares net 10.00
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT holding_id, user_id, stock_id, quantity, average_buy_price, total_invested, updated_at FROM stock_holdings")).
		WithArgs("user-1", "stk-1").
		WillReturnRows(sqlmock.NewRows([]string{"holding_id", "user_id", "stock_id", "quantity", "average_buy_price", "total_invested", "updated_at"}).
			AddRow("hold-1", "user-1", "stk-1", 5, 20.0, 100.0, now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE stock_holdings SET quantity = ?, total_invested = ?")).
		WithArgs(3, 60.0, "hold-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallet_accounts SET balance = balance + ?")).
		WithArgs(50.0, "acc-inv").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(sqlmock.AnyArg(), "user-1", nil, "investing", 50.0, "stock_sell", "Sold LEMON", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	result := uc.Sell(context.Background(), &model.TradeRequest{
		UserID:   "user-1",
		StockID:  "stk-1",
		Quantity: 2,
	})
	require.Nil(t, result.Error)

	response := result.Data.(*model.SellStockResponse)
	require.Equal(t, 50.0, response.Proceeds)
	require.Equal(t, 10.0, response.RealizedProfit)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPortfolio_Totals(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	uc, mock, close := setupStockUseCase(t, clock.Fixed{T: now})
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT holding_id, user_id, stock_id, quantity, average_buy_price, total_invested, updated_at FROM stock_holdings WHERE user_id = ?")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"holding_id", "user_id", "stock_id", "quantity", "average_buy_price", "total_invested", "updated_at"}).
			AddRow("hold-1", "user-1", "stk-1", 4, 20.0, 80.0, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock_id, symbol, name, category_id, current_price, base_price, volatility, is_active, updated_at FROM stocks WHERE stock_id = ?")).
		WithArgs("stk-1").
		WillReturnRows(sqlmock.NewRows(stockColumns()).
			AddRow("stk-1", "LEMON", "Lemonade Stand Co", nil, 25.0, 20.0, 0.05, true, now))

	result := uc.Portfolio(context.Background(), &model.GetPortfolioRequest{UserID: "user-1"})
	require.Nil(t, result.Error)

	response := result.Data.(*model.PortfolioResponse)
	require.Len(t, response.Holdings, 1)
	require.Equal(t, 80.0, response.TotalInvested)
	require.Equal(t, 100.0, response.TotalCurrentValue)
	require.Equal(t, 20.0, response.TotalProfitLoss)
	require.True(t, response.IsMarketOpen)
	require.NoError(t, mock.ExpectationsWereMet())
}

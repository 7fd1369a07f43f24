package usecase

import (
	"context"
	mathrand "math/rand"
	"regexp"
	"testing"
	"time"

	"investment-service/src/internal/entity"
	"investment-service/src/internal/gateway/messaging"
	"investment-service/src/internal/model"
	"investment-service/src/internal/repository"
	"investment-service/src/pkg/clock"
	"investment-service/src/pkg/databases/mysql"
	"investment-service/src/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	driver "github.com/go-sql-driver/mysql"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupSchedulerUseCase(t *testing.T, clk clock.Clock) (*SchedulerUseCase, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Set("scheduler.enabled", true)
	cfg.Set("scheduler.daily_hour", 0)
	log.InitLogger(cfg)
	logger := log.GetLogger()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	dbi := mysql.NewFromDB(sqlxDB)
	producer := messaging.NewTransactionProducer(nil, logger)
	// nothing listens on this address; cache invalidation failures are logged only
	redisClient := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	uc := NewSchedulerUseCase(
		logger,
		repository.NewStockRepository(dbi),
		repository.NewGardenRepository(dbi),
		repository.NewSchedulerRepository(dbi),
		cfg,
		redisClient,
		producer,
		clk,
		mathrand.New(mathrand.NewSource(42)),
	)

	closer := func() { sqlxDB.Close() }
	return uc, mock, closer
}

func schedulerLogColumns() []string {
	return []string{"log_id", "task", "run_date", "status", "details", "created_at"}
}

func TestHandleDailySimulation_SkipsWhenAlreadyRan(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 5, 0, 0, time.UTC)
	uc, mock, close := setupSchedulerUseCase(t, clock.Fixed{T: now})
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT log_id, task, run_date, status, details, created_at FROM scheduler_logs")).
		WithArgs(entity.TaskDailySimulation, "2026-08-31").
		WillReturnRows(sqlmock.NewRows(schedulerLogColumns()).
			AddRow("log-1", entity.TaskDailySimulation, "2026-08-31", "success", "", now))

	err := uc.HandleDailySimulation(context.Background(), asynq.NewTask(entity.TaskDailySimulation, nil))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleDailySimulation_RunsAndLogs(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 5, 0, 0, time.UTC)
	uc, mock, close := setupSchedulerUseCase(t, clock.Fixed{T: now})
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT log_id, task, run_date, status, details, created_at FROM scheduler_logs")).
		WithArgs(entity.TaskDailySimulation, "2026-08-31").
		WillReturnRows(sqlmock.NewRows(schedulerLogColumns()))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock_id, symbol, name, category_id, current_price, base_price, volatility, is_active, updated_at FROM stocks WHERE is_active = 1")).
		WillReturnRows(sqlmock.NewRows(stockColumns()).
			AddRow("stk-1", "LEMON", "Lemonade Stand Co", nil, 25.0, 20.0, 0.05, true, now))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE stocks SET current_price = ?")).
		WithArgs(sqlmock.AnyArg(), "stk-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO stock_price_history")).
		WithArgs("stk-1", "2026-08-31", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT plant_id, name, seed_cost, growth_time_hours, water_interval_hours, harvest_yield, yield_unit, price_fluctuation_percent, base_sell_price FROM plant_species")).
		WillReturnRows(sqlmock.NewRows(speciesColumns()).
			AddRow("plant-carrot", "Carrot", 5.0, 48.0, 24.0, 3, "carrots", 10.0, 2.0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT IGNORE INTO market_prices")).
		WithArgs("plant-carrot", "2026-08-31", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scheduler_logs")).
		WithArgs(sqlmock.AnyArg(), entity.TaskDailySimulation, "2026-08-31", entity.SchedulerStatusSuccess, "stocks_updated=1 prices_refreshed=1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := uc.HandleDailySimulation(context.Background(), asynq.NewTask(entity.TaskDailySimulation, nil))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleDailySimulation_ConcurrentRunLogsOnce(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 5, 0, 0, time.UTC)
	uc, mock, close := setupSchedulerUseCase(t, clock.Fixed{T: now})
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT log_id, task, run_date, status, details, created_at FROM scheduler_logs")).
		WithArgs(entity.TaskDailySimulation, "2026-08-31").
		WillReturnRows(sqlmock.NewRows(schedulerLogColumns()))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock_id, symbol, name, category_id, current_price, base_price, volatility, is_active, updated_at FROM stocks WHERE is_active = 1")).
		WillReturnRows(sqlmock.NewRows(stockColumns()))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT plant_id, name, seed_cost, growth_time_hours, water_interval_hours, harvest_yield, yield_unit, price_fluctuation_percent, base_sell_price FROM plant_species")).
		WillReturnRows(sqlmock.NewRows(speciesColumns()))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scheduler_logs")).
		WithArgs(sqlmock.AnyArg(), entity.TaskDailySimulation, "2026-08-31", entity.SchedulerStatusSuccess, "stocks_updated=0 prices_refreshed=0").
		WillReturnError(&driver.MySQLError{Number: 1062, Message: "Duplicate entry"})

	err := uc.HandleDailySimulation(context.Background(), asynq.NewTask(entity.TaskDailySimulation, nil))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSchedulerStatus(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	uc, mock, close := setupSchedulerUseCase(t, clock.Fixed{T: now})
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT log_id, task, run_date, status, details, created_at FROM scheduler_logs")).
		WithArgs(entity.TaskDailySimulation, "2026-08-31").
		WillReturnRows(sqlmock.NewRows(schedulerLogColumns()).
			AddRow("log-1", entity.TaskDailySimulation, "2026-08-31", "success", "", now))

	result := uc.Status(context.Background())
	require.Nil(t, result.Error)

	response := result.Data.(*model.SchedulerStatusResponse)
	require.True(t, response.SchedulerRunning)
	require.True(t, response.RanToday)
	require.Len(t, response.Jobs, 1)
	// midnight already passed, next run is tomorrow
	require.Equal(t, "2026-09-01T00:00:00Z", response.Jobs[0].NextRunTime)
	require.NoError(t, mock.ExpectationsWereMet())
}

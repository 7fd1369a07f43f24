package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"investment-service/src/internal/entity"
	"investment-service/src/pkg/databases/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	driver "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupSchedulerMock(t *testing.T) (*SchedulerRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewSchedulerRepository(mysql.NewFromDB(sqlxDB))

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func TestInsertLog(t *testing.T) {
	repo, mock, close := setupSchedulerMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scheduler_logs")).
		WithArgs("log-1", entity.TaskDailySimulation, "2026-08-31", entity.SchedulerStatusSuccess, "stocks_updated=4 prices_refreshed=3").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.InsertLog(ctx, &entity.SchedulerLog{
		LogID:   "log-1",
		Task:    entity.TaskDailySimulation,
		RunDate: "2026-08-31",
		Status:  entity.SchedulerStatusSuccess,
		Details: "stocks_updated=4 prices_refreshed=3",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertLog_DuplicateDay(t *testing.T) {
	repo, mock, close := setupSchedulerMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scheduler_logs")).
		WithArgs("log-2", entity.TaskDailySimulation, "2026-08-31", entity.SchedulerStatusSuccess, "").
		WillReturnError(&driver.MySQLError{Number: 1062, Message: "Duplicate entry"})

	err := repo.InsertLog(ctx, &entity.SchedulerLog{
		LogID:   "log-2",
		Task:    entity.TaskDailySimulation,
		RunDate: "2026-08-31",
		Status:  entity.SchedulerStatusSuccess,
	})
	require.True(t, errors.Is(err, ErrAlreadyProcessed))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindLog(t *testing.T) {
	repo, mock, close := setupSchedulerMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT log_id, task, run_date, status, details, created_at FROM scheduler_logs")).
		WithArgs(entity.TaskDailySimulation, "2026-08-31").
		WillReturnRows(sqlmock.NewRows([]string{"log_id", "task", "run_date", "status", "details", "created_at"}).
			AddRow("log-1", entity.TaskDailySimulation, "2026-08-31", "success", "", time.Now()))

	found, err := repo.FindLog(ctx, entity.TaskDailySimulation, "2026-08-31")
	require.NoError(t, err)
	require.Equal(t, "success", found.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

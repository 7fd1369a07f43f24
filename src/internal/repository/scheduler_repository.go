package repository

import (
	"context"
	"errors"

	"investment-service/src/internal/entity"
	"investment-service/src/pkg/databases/mysql"

	driver "github.com/go-sql-driver/mysql"
)

type SchedulerRepository struct {
	DB mysql.DBInterface
}

func NewSchedulerRepository(db mysql.DBInterface) *SchedulerRepository {
	return &SchedulerRepository{
		DB: db,
	}
}

func (r *SchedulerRepository) FindLog(ctx context.Context, task, date string) (*entity.SchedulerLog, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var log entity.SchedulerLog
	query := `
		SELECT log_id, task, run_date, status, details, created_at
		FROM scheduler_logs
		WHERE task = ? AND run_date = ?`

	err = db.GetContext(ctx, &log, query, task, date)
	if err != nil {
		return nil, err
	}

	return &log, nil
}

// InsertLog maps the (task, run_date) unique-key violation to
// ErrAlreadyProcessed so two same-day runs cannot both record success.
func (r *SchedulerRepository) InsertLog(ctx context.Context, log *entity.SchedulerLog) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO scheduler_logs (log_id, task, run_date, status, details, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())`,
		log.LogID, log.Task, log.RunDate, log.Status, log.Details)
	if err != nil {
		var mysqlErr *driver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrAlreadyProcessed
		}
		return err
	}

	return nil
}

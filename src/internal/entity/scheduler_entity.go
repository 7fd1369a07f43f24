package entity

import "time"

const (
	SchedulerStatusSuccess = "success"
	SchedulerStatusFailure = "failure"

	TaskDailySimulation = "daily-investment-simulation"
)

// SchedulerLog has one row per calendar day per task; its presence makes
// the daily job idempotent.
type SchedulerLog struct {
	LogID     string    `db:"log_id" json:"log_id"`
	Task      string    `db:"task" json:"task"`
	RunDate   string    `db:"run_date" json:"date"`
	Status    string    `db:"status" json:"status"`
	Details   string    `db:"details" json:"details"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

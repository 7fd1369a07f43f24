package model

type SchedulerJobResponse struct {
	ID          string `json:"id"`
	Trigger     string `json:"trigger"`
	NextRunTime string `json:"next_run_time"`
}

type SchedulerStatusResponse struct {
	SchedulerRunning bool                   `json:"scheduler_running"`
	Jobs             []SchedulerJobResponse `json:"jobs"`
	RanToday         bool                   `json:"ran_today"`
}

type SimulateDayResponse struct {
	Message         string `json:"message"`
	Date            string `json:"date"`
	StocksUpdated   int    `json:"stocks_updated"`
	PricesRefreshed int    `json:"prices_refreshed"`
}

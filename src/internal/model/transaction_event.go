package model

import "time"

type Event interface {
	GetId() string
}

// TransactionEvent is published for every appended ledger row so the
// notification and achievement services can react to it.
type TransactionEvent struct {
	EventID         string    `json:"event_id"`
	UserID          string    `json:"user_id"`
	TransactionID   string    `json:"transaction_id"`
	FromAccount     *string   `json:"from_account,omitempty"`
	ToAccount       *string   `json:"to_account,omitempty"`
	Amount          float64   `json:"amount"`
	TransactionType string    `json:"transaction_type"`
	Description     string    `json:"description"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func (e *TransactionEvent) GetId() string {
	return e.EventID
}

// SimulationEvent is published after each completed daily simulation run.
type SimulationEvent struct {
	EventID       string `json:"event_id"`
	Task          string `json:"task"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	StocksUpdated int    `json:"stocks_updated"`
}

func (e *SimulationEvent) GetId() string {
	return e.EventID
}

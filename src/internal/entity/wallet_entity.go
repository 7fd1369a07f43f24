package entity

import "time"

const (
	AccountSpending  = "spending"
	AccountSavings   = "savings"
	AccountInvesting = "investing"
	AccountGifting   = "gifting"
)

// WalletAccount holds one balance per (user, account type).
type WalletAccount struct {
	AccountID   string    `db:"account_id" json:"account_id"`
	UserID      string    `db:"user_id" json:"user_id"`
	AccountType string    `db:"account_type" json:"account_type"`
	Balance     float64   `db:"balance" json:"balance"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Transaction rows are append-only; they are never updated or deleted.
type Transaction struct {
	TransactionID   string    `db:"transaction_id" json:"transaction_id"`
	UserID          string    `db:"user_id" json:"user_id"`
	FromAccount     *string   `db:"from_account" json:"from_account,omitempty"`
	ToAccount       *string   `db:"to_account" json:"to_account,omitempty"`
	Amount          float64   `db:"amount" json:"amount"`
	TransactionType string    `db:"transaction_type" json:"transaction_type"`
	Description     string    `db:"description" json:"description"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// SavingsGoal is owned by the goals collaborator; the engine only reads
// active allocations for the savings available/allocated split.
type SavingsGoal struct {
	GoalID    string  `db:"goal_id" json:"goal_id"`
	UserID    string  `db:"user_id" json:"user_id"`
	Name      string  `db:"name" json:"name"`
	Allocated float64 `db:"allocated" json:"allocated"`
	Status    string  `db:"status" json:"status"`
}

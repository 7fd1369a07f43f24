package model

import "time"

type GetWalletRequest struct {
	UserID string `json:"-" validate:"required,max=100"`
}

type AccountResponse struct {
	AccountType      string  `json:"account_type"`
	Balance          float64 `json:"balance"`
	AvailableBalance float64 `json:"available_balance"`
	AllocatedBalance float64 `json:"allocated_balance"`
	TotalBalance     float64 `json:"total_balance"`
}

type WalletResponse struct {
	Accounts           []AccountResponse `json:"accounts"`
	TotalAvailable     float64           `json:"total_available"`
	SavingsAllocated   float64           `json:"savings_allocated"`
	InvestingAllocated float64           `json:"investing_allocated"`
}

type TransferRequest struct {
	UserID          string  `json:"-" validate:"required,max=100"`
	FromAccount     string  `json:"from_account" validate:"omitempty,oneof=spending savings investing gifting"`
	ToAccount       string  `json:"to_account" validate:"omitempty,oneof=spending savings investing gifting"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	TransactionType string  `json:"transaction_type" validate:"required,max=50"`
	Description     string  `json:"description" validate:"max=255"`
}

type TransferResponse struct {
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id"`
}

type ListTransactionsRequest struct {
	UserID string `json:"-" validate:"required,max=100"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `json:"offset" validate:"omitempty,min=0"`
}

type TransactionResponse struct {
	TransactionID   string    `json:"transaction_id"`
	FromAccount     *string   `json:"from_account,omitempty"`
	ToAccount       *string   `json:"to_account,omitempty"`
	Amount          float64   `json:"amount"`
	TransactionType string    `json:"transaction_type"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"created_at"`
}

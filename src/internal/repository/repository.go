package repository

import (
	"context"
	"errors"

	"investment-service/src/internal/entity"

	"github.com/jmoiron/sqlx"
)

var (
	ErrAccountNotFound       = errors.New("wallet account not found")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrInsufficientShares    = errors.New("insufficient shares")
	ErrInvalidState          = errors.New("invalid state for requested action")
	ErrAlreadyProcessed      = errors.New("already processed")
)

// debitIfSufficientTx decrements a balance only when it covers the amount,
// in one statement, so two concurrent debits can never drive it negative.
func debitIfSufficientTx(ctx context.Context, tx *sqlx.Tx, accountID string, amount float64) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE wallet_accounts
		SET balance = balance - ?, updated_at = NOW()
		WHERE account_id = ? AND balance >= ?`,
		amount, accountID, amount)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrInsufficientFunds
	}
	return nil
}

func creditTx(ctx context.Context, tx *sqlx.Tx, accountID string, amount float64) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE wallet_accounts
		SET balance = balance + ?, updated_at = NOW()
		WHERE account_id = ?`,
		amount, accountID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func insertTransactionTx(ctx context.Context, tx *sqlx.Tx, record *entity.Transaction) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (transaction_id, user_id, from_account, to_account, amount, transaction_type, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.TransactionID, record.UserID, record.FromAccount, record.ToAccount,
		record.Amount, record.TransactionType, record.Description, record.CreatedAt)
	return err
}

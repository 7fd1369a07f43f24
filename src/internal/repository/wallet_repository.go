package repository

import (
	"context"
	"time"

	"investment-service/src/internal/entity"
	"investment-service/src/pkg/databases/mysql"

	"github.com/google/uuid"
)

type WalletRepository struct {
	DB mysql.DBInterface
}

func NewWalletRepository(db mysql.DBInterface) *WalletRepository {
	return &WalletRepository{
		DB: db,
	}
}

func (r *WalletRepository) FindAccounts(ctx context.Context, userID string) ([]entity.WalletAccount, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var accounts []entity.WalletAccount
	query := `
		SELECT account_id, user_id, account_type, balance, created_at, updated_at
		FROM wallet_accounts
		WHERE user_id = ?
		ORDER BY FIELD(account_type, 'spending', 'savings', 'investing', 'gifting')`

	err = db.SelectContext(ctx, &accounts, query, userID)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *WalletRepository) FindAccountByType(ctx context.Context, userID, accountType string) (*entity.WalletAccount, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var account entity.WalletAccount
	query := `
		SELECT account_id, user_id, account_type, balance, created_at, updated_at
		FROM wallet_accounts
		WHERE user_id = ? AND account_type = ?`

	err = db.GetContext(ctx, &account, query, userID, accountType)
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// ActiveSavingsAllocation sums allocations of the user's active savings goals.
func (r *WalletRepository) ActiveSavingsAllocation(ctx context.Context, userID string) (float64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	var allocated float64
	query := `
		SELECT COALESCE(SUM(allocated), 0)
		FROM savings_goals
		WHERE user_id = ? AND status = 'active'`

	err = db.GetContext(ctx, &allocated, query, userID)
	if err != nil {
		return 0, err
	}

	return allocated, nil
}

type TransferParams struct {
	UserID          string
	From            *entity.WalletAccount
	To              *entity.WalletAccount
	Amount          float64
	TransactionType string
	Description     string
}

// Transfer moves value between accounts, or one-sided when From or To is nil
// (external rewards and purchases). Debit, credit and the ledger append all
// land in one database transaction.
func (r *WalletRepository) Transfer(ctx context.Context, params TransferParams) (*entity.Transaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if params.From != nil {
		if err := debitIfSufficientTx(ctx, tx, params.From.AccountID, params.Amount); err != nil {
			return nil, err
		}
	}
	if params.To != nil {
		if err := creditTx(ctx, tx, params.To.AccountID, params.Amount); err != nil {
			return nil, err
		}
	}

	record := &entity.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          params.UserID,
		Amount:          params.Amount,
		TransactionType: params.TransactionType,
		Description:     params.Description,
		CreatedAt:       time.Now(),
	}
	if params.From != nil {
		record.FromAccount = &params.From.AccountType
	}
	if params.To != nil {
		record.ToAccount = &params.To.AccountType
	}

	if err := insertTransactionTx(ctx, tx, record); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return record, nil
}

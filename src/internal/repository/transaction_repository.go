package repository

import (
	"context"

	"investment-service/src/internal/entity"
	"investment-service/src/pkg/databases/mysql"
)

type TransactionRepository struct {
	DB mysql.DBInterface
}

func NewTransactionRepository(db mysql.DBInterface) *TransactionRepository {
	return &TransactionRepository{
		DB: db,
	}
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.Transaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var transactions []entity.Transaction
	query := `
		SELECT transaction_id, user_id, from_account, to_account, amount, transaction_type, description, created_at
		FROM transactions
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`

	err = db.SelectContext(ctx, &transactions, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

package converter

import (
	"time"

	"investment-service/src/internal/entity"
	"investment-service/src/internal/model"

	"github.com/google/uuid"
)

func TransactionToResponse(tx *entity.Transaction) *model.TransactionResponse {
	return &model.TransactionResponse{
		TransactionID:   tx.TransactionID,
		FromAccount:     tx.FromAccount,
		ToAccount:       tx.ToAccount,
		Amount:          tx.Amount,
		TransactionType: tx.TransactionType,
		Description:     tx.Description,
		CreatedAt:       tx.CreatedAt,
	}
}

func TransactionsToResponse(txs []entity.Transaction) []model.TransactionResponse {
	responses := make([]model.TransactionResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, *TransactionToResponse(&txs[i]))
	}
	return responses
}

func TransactionToEvent(tx *entity.Transaction) *model.TransactionEvent {
	return &model.TransactionEvent{
		EventID:         uuid.NewString(),
		UserID:          tx.UserID,
		TransactionID:   tx.TransactionID,
		FromAccount:     tx.FromAccount,
		ToAccount:       tx.ToAccount,
		Amount:          tx.Amount,
		TransactionType: tx.TransactionType,
		Description:     tx.Description,
		OccurredAt:      time.Now(),
	}
}

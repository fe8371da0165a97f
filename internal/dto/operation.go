package dto

import (
	"time"

	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
)

// CreateOperationRequest defines the body for recording a new exchange operation.
// Currency is a currency code resolved against today's or yesterday's rates only.
type CreateOperationRequest struct {
	Count    int64  `json:"count" binding:"required"`
	Currency string `json:"currency" binding:"required"`
}

// OperationResponse is the API representation of one exchange operation.
// Currency and AmountOperation are null when the referenced rate was deleted.
type OperationResponse struct {
	OperationID     string    `json:"operation_id"`
	Count           int64     `json:"count"`
	Currency        *string   `json:"currency"`
	UserID          string    `json:"user_id"`
	AmountOperation *float64  `json:"amount_operation"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToOperationResponse converts a domain operation to its API representation,
// attaching the derived amount_operation = count * sale_rate.
func ToOperationResponse(op domain.ExchangeOperation) OperationResponse {
	resp := OperationResponse{
		OperationID: op.OperationID,
		Count:       op.Count,
		UserID:      op.UserID,
		CreatedAt:   op.CreatedAt,
	}
	if amount, ok := op.Amount(); ok {
		f, _ := amount.Float64()
		resp.AmountOperation = &f
		resp.Currency = &op.Rate.ToCurrency
	}
	return resp
}

// ToListOperationResponse converts a slice of domain operations.
func ToListOperationResponse(ops []domain.ExchangeOperation) []OperationResponse {
	responses := make([]OperationResponse, len(ops))
	for i, op := range ops {
		responses[i] = ToOperationResponse(op)
	}
	return responses
}

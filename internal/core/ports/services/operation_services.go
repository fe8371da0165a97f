package services

import (
	"context"

	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
	"github.com/exchwatch/currency_exchange_app/internal/dto"
)

// OperationSvcFacade exposes the authenticated user's exchange operation ledger.
type OperationSvcFacade interface {
	// ListOperations returns every operation owned by userID with the rate joined.
	ListOperations(ctx context.Context, userID string) ([]domain.ExchangeOperation, error)
	// CreateOperation records a new operation for userID. The currency must
	// resolve against a rate from today or yesterday.
	CreateOperation(ctx context.Context, userID string, req dto.CreateOperationRequest) (*domain.ExchangeOperation, error)
	// DeleteOperation removes one operation, enforcing ownership.
	DeleteOperation(ctx context.Context, userID, operationID string) error
}

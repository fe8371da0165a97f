package repositories

import (
	"context"

	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
)

// OperationReader defines read operations for user exchange operations
type OperationReader interface {
	// ListOperationsByUser returns every operation owned by userID, each joined
	// with its referenced rate record (nil when the rate was deleted).
	ListOperationsByUser(ctx context.Context, userID string) ([]domain.ExchangeOperation, error)
	// FindOperationByID retrieves a single operation by its identifier.
	FindOperationByID(ctx context.Context, operationID string) (*domain.ExchangeOperation, error)
}

// OperationWriter defines write operations for user exchange operations
type OperationWriter interface {
	// SaveOperation persists a new operation. op.Rate must reference an existing
	// rate record.
	SaveOperation(ctx context.Context, op domain.ExchangeOperation) error
	// DeleteOperation removes one operation by identity.
	DeleteOperation(ctx context.Context, operationID string) error
}

// OperationRepositoryFacade combines all operation-related repository interfaces
type OperationRepositoryFacade interface {
	OperationReader
	OperationWriter
}

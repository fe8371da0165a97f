package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/exchwatch/currency_exchange_app/internal/apperrors"
	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
	"github.com/exchwatch/currency_exchange_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// operationSelect joins each operation with its referenced rate. The join is a
// LEFT JOIN: deleting a rate nulls the reference instead of removing the
// operation.
const operationSelect = `
	SELECT o.operation_id, o.rate_id, o.count, o.user_id, o.created_at,
	       r.from_currency, r.to_currency, r.day_of_rate, r.sale_rate, r.purchase_rate, r.created_at
	FROM exchange_operations o
	LEFT JOIN currency_rates r ON r.rate_id = o.rate_id`

// PgxOperationRepository implements the operation repository facade using pgx.
type PgxOperationRepository struct {
	BaseRepository
}

// NewPgxOperationRepository creates a new PgxOperationRepository.
func NewPgxOperationRepository(db PGXPool) *PgxOperationRepository {
	return &PgxOperationRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveOperation persists a new operation row referencing op.Rate.
func (r *PgxOperationRepository) SaveOperation(ctx context.Context, op domain.ExchangeOperation) error {
	if op.Rate == nil {
		return fmt.Errorf("%w: operation must reference a rate", apperrors.ErrValidation)
	}

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO exchange_operations (operation_id, rate_id, count, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		op.OperationID, op.Rate.RateID, op.Count, op.UserID, op.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save operation: %w", err)
	}
	return nil
}

// ListOperationsByUser returns every operation owned by userID with the rate
// joined in.
func (r *PgxOperationRepository) ListOperationsByUser(ctx context.Context, userID string) ([]domain.ExchangeOperation, error) {
	rows, err := r.Pool.Query(ctx, operationSelect+`
	WHERE o.user_id = $1
	ORDER BY o.created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	defer rows.Close()

	var ops []domain.ExchangeOperation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}
		ops = append(ops, *op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operations: %w", err)
	}

	return ops, nil
}

// FindOperationByID retrieves a single operation with its rate joined in.
func (r *PgxOperationRepository) FindOperationByID(ctx context.Context, operationID string) (*domain.ExchangeOperation, error) {
	rows, err := r.Pool.Query(ctx, operationSelect+`
	WHERE o.operation_id = $1`,
		operationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find operation: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to find operation: %w", err)
		}
		return nil, fmt.Errorf("%w: operation %s", apperrors.ErrNotFound, operationID)
	}

	op, err := scanOperation(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan operation: %w", err)
	}
	return op, nil
}

// DeleteOperation removes one operation row by identity.
func (r *PgxOperationRepository) DeleteOperation(ctx context.Context, operationID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM exchange_operations WHERE operation_id = $1`,
		operationID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: operation %s", apperrors.ErrNotFound, operationID)
	}
	return nil
}

// scanOperation scans the current row of an operationSelect result. The rate
// columns are nullable because the reference is weak.
func scanOperation(rows pgx.Rows) (*domain.ExchangeOperation, error) {
	var modelOp models.ExchangeOperation
	var (
		fromCurrency *string
		toCurrency   *string
		dayOfRate    *time.Time
		saleRate     *decimal.Decimal
		purchaseRate *decimal.Decimal
		rateCreated  *time.Time
	)

	err := rows.Scan(
		&modelOp.OperationID, &modelOp.RateID, &modelOp.Count, &modelOp.UserID, &modelOp.CreatedAt,
		&fromCurrency, &toCurrency, &dayOfRate, &saleRate, &purchaseRate, &rateCreated,
	)
	if err != nil {
		return nil, err
	}

	op := domain.ExchangeOperation{
		OperationID: modelOp.OperationID,
		Count:       modelOp.Count,
		UserID:      modelOp.UserID,
		CreatedAt:   modelOp.CreatedAt,
	}
	if modelOp.RateID.Valid && toCurrency != nil {
		op.Rate = &domain.RateRecord{
			RateID:       modelOp.RateID.String,
			FromCurrency: *fromCurrency,
			ToCurrency:   *toCurrency,
			DayOfRate:    *dayOfRate,
			SaleRate:     *saleRate,
			PurchaseRate: *purchaseRate,
			CreatedAt:    *rateCreated,
		}
	}
	return &op, nil
}

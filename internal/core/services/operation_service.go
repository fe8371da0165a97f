package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/exchwatch/currency_exchange_app/internal/apperrors"
	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/exchwatch/currency_exchange_app/internal/core/ports/repositories"
	"github.com/exchwatch/currency_exchange_app/internal/dto"
	"github.com/exchwatch/currency_exchange_app/internal/utils"
	"github.com/google/uuid"
)

// OperationService provides business logic for the per-user exchange operation
// ledger, including read-time valuation.
type OperationService struct {
	opRepo   portsrepo.OperationRepositoryFacade
	rateRepo portsrepo.RateReader
	clock    utils.Clock
}

// NewOperationService creates a new OperationService.
func NewOperationService(opRepo portsrepo.OperationRepositoryFacade, rateRepo portsrepo.RateReader, clock utils.Clock) *OperationService {
	return &OperationService{
		opRepo:   opRepo,
		rateRepo: rateRepo,
		clock:    clock,
	}
}

// owns is the ownership predicate for ledger entries.
func owns(userID string, op *domain.ExchangeOperation) bool {
	return op.UserID == userID
}

// ListOperations returns every operation owned by userID. The derived
// amount_operation is available through each operation's Amount method.
func (s *OperationService) ListOperations(ctx context.Context, userID string) ([]domain.ExchangeOperation, error) {
	ops, err := s.opRepo.ListOperationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations in service: %w", err)
	}
	return ops, nil
}

// CreateOperation records a new operation for userID. The currency code must
// resolve against a rate dated today or yesterday; older rates cannot be
// referenced even when present in the store.
func (s *OperationService) CreateOperation(ctx context.Context, userID string, req dto.CreateOperationRequest) (*domain.ExchangeOperation, error) {
	today := utils.Day(s.clock.Now())
	yesterday := today.AddDate(0, 0, -1)

	rate, err := s.rateRepo.FindRateForDays(ctx, req.Currency, []time.Time{today, yesterday})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %q has no rate for today or yesterday", apperrors.ErrValidation, req.Currency)
		}
		return nil, fmt.Errorf("failed to resolve currency %q: %w", req.Currency, err)
	}

	op := domain.ExchangeOperation{
		OperationID: uuid.NewString(),
		Rate:        rate,
		Count:       req.Count,
		UserID:      userID,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.opRepo.SaveOperation(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to create operation in service: %w", err)
	}

	return &op, nil
}

// DeleteOperation removes one operation by identity. Only the owning user may
// delete it.
func (s *OperationService) DeleteOperation(ctx context.Context, userID, operationID string) error {
	op, err := s.opRepo.FindOperationByID(ctx, operationID)
	if err != nil {
		return fmt.Errorf("failed to find operation for deletion: %w", err)
	}

	if !owns(userID, op) {
		return fmt.Errorf("%w: operation belongs to another user", apperrors.ErrForbidden)
	}

	if err := s.opRepo.DeleteOperation(ctx, operationID); err != nil {
		return fmt.Errorf("failed to delete operation in service: %w", err)
	}
	return nil
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/exchwatch/currency_exchange_app/internal/apperrors"
	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
	portssvc "github.com/exchwatch/currency_exchange_app/internal/core/ports/services"
	"github.com/exchwatch/currency_exchange_app/internal/core/services"
	"github.com/exchwatch/currency_exchange_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OperationRepository ---
type MockOperationRepository struct {
	mock.Mock
}

func (m *MockOperationRepository) ListOperationsByUser(ctx context.Context, userID string) ([]domain.ExchangeOperation, error) {
	args := m.Called(ctx, userID)
	var ops []domain.ExchangeOperation
	if args.Get(0) != nil {
		ops = args.Get(0).([]domain.ExchangeOperation)
	}
	return ops, args.Error(1)
}

func (m *MockOperationRepository) FindOperationByID(ctx context.Context, operationID string) (*domain.ExchangeOperation, error) {
	args := m.Called(ctx, operationID)
	var op *domain.ExchangeOperation
	if args.Get(0) != nil {
		op = args.Get(0).(*domain.ExchangeOperation)
	}
	return op, args.Error(1)
}

func (m *MockOperationRepository) SaveOperation(ctx context.Context, op domain.ExchangeOperation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOperationRepository) DeleteOperation(ctx context.Context, operationID string) error {
	args := m.Called(ctx, operationID)
	return args.Error(0)
}

// fixedClock pins "now" for deterministic window checks.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// --- Test Suite ---
type OperationServiceTestSuite struct {
	suite.Suite
	mockOpRepo   *MockOperationRepository
	mockRateRepo *MockRateRepository
	clock        fixedClock
	service      portssvc.OperationSvcFacade
}

func (suite *OperationServiceTestSuite) SetupTest() {
	suite.mockOpRepo = new(MockOperationRepository)
	suite.mockRateRepo = new(MockRateRepository)
	suite.clock = fixedClock{now: time.Date(2023, 6, 15, 14, 30, 0, 0, time.UTC)}
	suite.service = services.NewOperationService(suite.mockOpRepo, suite.mockRateRepo, suite.clock)
}

// --- ListOperations Tests ---

func (suite *OperationServiceTestSuite) TestListOperations_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expectedOps := []domain.ExchangeOperation{
		{OperationID: uuid.NewString(), UserID: userID, Count: 5},
	}

	suite.mockOpRepo.On("ListOperationsByUser", ctx, userID).Return(expectedOps, nil).Once()

	ops, err := suite.service.ListOperations(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expectedOps, ops)
	suite.mockOpRepo.AssertExpectations(suite.T())
}

// --- CreateOperation Tests ---

func (suite *OperationServiceTestSuite) TestCreateOperation_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	today := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	yesterday := time.Date(2023, 6, 14, 0, 0, 0, 0, time.UTC)
	rate := &domain.RateRecord{
		RateID:     uuid.NewString(),
		ToCurrency: "USD",
		DayOfRate:  today,
		SaleRate:   decimal.RequireFromString("37.45"),
	}

	suite.mockRateRepo.On("FindRateForDays", ctx, "USD", []time.Time{today, yesterday}).Return(rate, nil).Once()
	suite.mockOpRepo.On("SaveOperation", ctx, mock.MatchedBy(func(op domain.ExchangeOperation) bool {
		return op.UserID == userID && op.Count == 5 && op.Rate == rate && op.OperationID != ""
	})).Return(nil).Once()

	op, err := suite.service.CreateOperation(ctx, userID, dto.CreateOperationRequest{Count: 5, Currency: "USD"})

	suite.Require().NoError(err)
	suite.Require().NotNil(op)
	suite.Equal(userID, op.UserID)
	suite.Equal(suite.clock.now, op.CreatedAt)

	amount, ok := op.Amount()
	suite.True(ok)
	suite.True(amount.Equal(decimal.RequireFromString("187.25")))

	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockOpRepo.AssertExpectations(suite.T())
}

func (suite *OperationServiceTestSuite) TestCreateOperation_NoRecentRate() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRateRepo.On("FindRateForDays", ctx, "XAU", mock.AnythingOfType("[]time.Time")).Return(nil, apperrors.ErrNotFound).Once()

	op, err := suite.service.CreateOperation(ctx, userID, dto.CreateOperationRequest{Count: 1, Currency: "XAU"})

	suite.Require().Error(err)
	suite.Nil(op)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOpRepo.AssertNotCalled(suite.T(), "SaveOperation")
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *OperationServiceTestSuite) TestCreateOperation_SaveError() {
	ctx := context.Background()
	userID := uuid.NewString()
	expectedErr := assert.AnError
	rate := &domain.RateRecord{RateID: uuid.NewString(), ToCurrency: "EUR"}

	suite.mockRateRepo.On("FindRateForDays", ctx, "EUR", mock.AnythingOfType("[]time.Time")).Return(rate, nil).Once()
	suite.mockOpRepo.On("SaveOperation", ctx, mock.AnythingOfType("domain.ExchangeOperation")).Return(expectedErr).Once()

	op, err := suite.service.CreateOperation(ctx, userID, dto.CreateOperationRequest{Count: 2, Currency: "EUR"})

	suite.Require().Error(err)
	suite.Nil(op)
	suite.ErrorIs(err, expectedErr)
	suite.mockOpRepo.AssertExpectations(suite.T())
}

// --- DeleteOperation Tests ---

func (suite *OperationServiceTestSuite) TestDeleteOperation_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	operationID := uuid.NewString()
	op := &domain.ExchangeOperation{OperationID: operationID, UserID: userID}

	suite.mockOpRepo.On("FindOperationByID", ctx, operationID).Return(op, nil).Once()
	suite.mockOpRepo.On("DeleteOperation", ctx, operationID).Return(nil).Once()

	err := suite.service.DeleteOperation(ctx, userID, operationID)

	suite.Require().NoError(err)
	suite.mockOpRepo.AssertExpectations(suite.T())
}

func (suite *OperationServiceTestSuite) TestDeleteOperation_NotOwner() {
	ctx := context.Background()
	operationID := uuid.NewString()
	op := &domain.ExchangeOperation{OperationID: operationID, UserID: uuid.NewString()}

	suite.mockOpRepo.On("FindOperationByID", ctx, operationID).Return(op, nil).Once()

	err := suite.service.DeleteOperation(ctx, uuid.NewString(), operationID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockOpRepo.AssertNotCalled(suite.T(), "DeleteOperation")
	suite.mockOpRepo.AssertExpectations(suite.T())
}

func (suite *OperationServiceTestSuite) TestDeleteOperation_NotFound() {
	ctx := context.Background()
	operationID := uuid.NewString()

	suite.mockOpRepo.On("FindOperationByID", ctx, operationID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteOperation(ctx, uuid.NewString(), operationID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOpRepo.AssertExpectations(suite.T())
}

func TestOperationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OperationServiceTestSuite))
}

package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
	portssvc "github.com/exchwatch/currency_exchange_app/internal/core/ports/services"
	"github.com/exchwatch/currency_exchange_app/internal/dto"
	"github.com/exchwatch/currency_exchange_app/internal/handlers"
	"github.com/exchwatch/currency_exchange_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) ListRates(ctx context.Context, filter domain.RateFilter, page int) ([]domain.RateRecord, int, error) {
	args := m.Called(ctx, filter, page)
	var rates []domain.RateRecord
	if args.Get(0) != nil {
		rates = args.Get(0).([]domain.RateRecord)
	}
	return rates, args.Int(1), args.Error(2)
}

func (m *MockRateService) Statistics(ctx context.Context, gte, lte time.Time) ([]domain.RateStatistic, error) {
	args := m.Called(ctx, gte, lte)
	var stats []domain.RateStatistic
	if args.Get(0) != nil {
		stats = args.Get(0).([]domain.RateStatistic)
	}
	return stats, args.Error(1)
}

func (m *MockRateService) PageSize() int {
	args := m.Called()
	return args.Int(0)
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Test Suite ---
type RateHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockRateSvc *MockRateService
}

func (suite *RateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockRateSvc = new(MockRateService)

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
		IsProduction:      true,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Rate:      suite.mockRateSvc,
		Operation: new(MockOperationService),
		User:      new(MockUserService),
	})
}

func (suite *RateHandlerTestSuite) TestListRates_Success() {
	day := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	rates := []domain.RateRecord{
		{
			RateID:       "r1",
			FromCurrency: "UAH",
			ToCurrency:   "USD",
			DayOfRate:    day,
			SaleRate:     decimal.RequireFromString("37.45"),
			PurchaseRate: decimal.RequireFromString("36.95"),
		},
	}

	suite.mockRateSvc.On("ListRates", mock.Anything, mock.MatchedBy(func(filter domain.RateFilter) bool {
		return filter.ToCurrency != nil && *filter.ToCurrency == "USD"
	}), 2).Return(rates, 25, nil).Once()
	suite.mockRateSvc.On("PageSize").Return(10).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/rates/?to_currency=USD&page=2", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.PaginatedRatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(25, resp.Count)
	suite.Require().NotNil(resp.Next)
	suite.Contains(*resp.Next, "page=3")
	suite.Require().NotNil(resp.Previous)
	suite.Contains(*resp.Previous, "page=1")
	suite.Require().Len(resp.Results, 1)
	suite.Equal("USD", resp.Results[0].ToCurrency)
	suite.Equal("2023-06-15", resp.Results[0].DayOfRate)

	suite.mockRateSvc.AssertExpectations(suite.T())
}

func (suite *RateHandlerTestSuite) TestListRates_BadDateFilter() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/rates/?day_of_rate=15.06.2023", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRateSvc.AssertNotCalled(suite.T(), "ListRates")
}

func (suite *RateHandlerTestSuite) TestCurrencyStatistics_Success() {
	stats := []domain.RateStatistic{
		{ToCurrency: "CZK", Min: decimal.RequireFromString("1.6440"), Max: decimal.RequireFromString("1.7480")},
	}

	suite.mockRateSvc.On("Statistics", mock.Anything,
		time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), time.Time{}).Return(stats, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currency_statistics/?date_filter_gte=2023-06-01", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.StatisticsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Statistics, 1)
	suite.Equal("CZK", resp.Statistics[0].ToCurrency)

	suite.mockRateSvc.AssertExpectations(suite.T())
}

func (suite *RateHandlerTestSuite) TestCurrencyStatistics_BadDate() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currency_statistics/?date_filter_gte=soon", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRateSvc.AssertNotCalled(suite.T(), "Statistics")
}

func TestRateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RateHandlerTestSuite))
}

package pgsql_test

import (
	"context"
	"testing"
	"time"

	"github.com/exchwatch/currency_exchange_app/internal/apperrors"
	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
	"github.com/exchwatch/currency_exchange_app/internal/repositories/database/pgsql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rateCols = "rate_id, from_currency, to_currency, day_of_rate, sale_rate, purchase_rate, created_at"

func newRateRepo(t *testing.T) (*pgsql.PgxRateRepository, pgxmock.PgxPoolIface) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return pgsql.NewPgxRateRepository(mockPool), mockPool
}

func TestSaveRate_Success(t *testing.T) {
	repo, mockPool := newRateRepo(t)

	rate := domain.RateRecord{
		RateID:       "r1",
		FromCurrency: "UAH",
		ToCurrency:   "USD",
		DayOfRate:    time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
		SaleRate:     decimal.RequireFromString("37.45"),
		PurchaseRate: decimal.RequireFromString("36.95"),
		CreatedAt:    time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC),
	}

	mockPool.ExpectExec("INSERT INTO currency_rates").
		WithArgs(rate.RateID, rate.FromCurrency, rate.ToCurrency, rate.DayOfRate, rate.SaleRate, rate.PurchaseRate, rate.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.SaveRate(context.Background(), rate)

	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestSaveRate_UniqueViolation(t *testing.T) {
	repo, mockPool := newRateRepo(t)

	mockPool.ExpectExec("INSERT INTO currency_rates").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.SaveRate(context.Background(), domain.RateRecord{RateID: "r1"})

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestExistsForDay(t *testing.T) {
	repo, mockPool := newRateRepo(t)
	day := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)

	mockPool.ExpectQuery("SELECT EXISTS").
		WithArgs(day).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsForDay(context.Background(), day)

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestListRates_ComposesFilters(t *testing.T) {
	repo, mockPool := newRateRepo(t)

	toCurrency := "USD"
	gte := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	filter := domain.RateFilter{ToCurrency: &toCurrency, DayOfRateGte: &gte}

	day := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC)

	mockPool.ExpectQuery(`SELECT COUNT\(\*\) FROM currency_rates WHERE 1=1 AND to_currency = \$1 AND day_of_rate >= \$2`).
		WithArgs(toCurrency, gte).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

	mockPool.ExpectQuery(`SELECT `+rateCols+` FROM currency_rates WHERE 1=1 AND to_currency = \$1 AND day_of_rate >= \$2 ORDER BY day_of_rate, to_currency LIMIT \$3 OFFSET \$4`).
		WithArgs(toCurrency, gte, 10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"rate_id", "from_currency", "to_currency", "day_of_rate", "sale_rate", "purchase_rate", "created_at"}).
			AddRow("r1", "UAH", "USD", day, decimal.RequireFromString("37.45"), decimal.RequireFromString("36.95"), createdAt))

	rates, total, err := repo.ListRates(context.Background(), filter, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rates, 1)
	assert.Equal(t, "USD", rates[0].ToCurrency)
	assert.True(t, rates[0].SaleRate.Equal(decimal.RequireFromString("37.45")))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestListRates_EmptyResultSkipsPageQuery(t *testing.T) {
	repo, mockPool := newRateRepo(t)

	mockPool.ExpectQuery(`SELECT COUNT\(\*\) FROM currency_rates WHERE 1=1`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))

	rates, total, err := repo.ListRates(context.Background(), domain.RateFilter{}, 1, 10)

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, rates)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRateStatistics(t *testing.T) {
	repo, mockPool := newRateRepo(t)
	gte := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	lte := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)

	mockPool.ExpectQuery("SELECT to_currency, MIN\\(sale_rate\\), MAX\\(sale_rate\\)").
		WithArgs(gte, lte).
		WillReturnRows(pgxmock.NewRows([]string{"to_currency", "min", "max"}).
			AddRow("CZK", decimal.RequireFromString("1.6440"), decimal.RequireFromString("1.7480")).
			AddRow("USD", decimal.RequireFromString("36.90"), decimal.RequireFromString("37.45")))

	stats, err := repo.RateStatistics(context.Background(), gte, lte)

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "CZK", stats[0].ToCurrency)
	assert.True(t, stats[0].Min.Equal(decimal.RequireFromString("1.6440")))
	assert.True(t, stats[0].Max.Equal(decimal.RequireFromString("1.7480")))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestFindRateForDays_NotFound(t *testing.T) {
	repo, mockPool := newRateRepo(t)
	days := []time.Time{
		time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 6, 14, 0, 0, 0, 0, time.UTC),
	}

	mockPool.ExpectQuery(`WHERE to_currency = \$1 AND day_of_rate = ANY\(\$2\)`).
		WithArgs("XAU", days).
		WillReturnRows(pgxmock.NewRows([]string{"rate_id", "from_currency", "to_currency", "day_of_rate", "sale_rate", "purchase_rate", "created_at"}))

	rate, err := repo.FindRateForDays(context.Background(), "XAU", days)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, rate)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

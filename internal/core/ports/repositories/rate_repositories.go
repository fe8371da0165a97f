package repositories

import (
	"context"
	"time"

	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
)

// RateReader defines read operations for daily currency rates
type RateReader interface {
	// ListRates returns the rates matching the AND-composed filter, paginated,
	// together with the total number of matching rows.
	ListRates(ctx context.Context, filter domain.RateFilter, page, pageSize int) ([]domain.RateRecord, int, error)
	// RateStatistics groups rates with day_of_rate in [gte, lte] by to_currency
	// and returns min/max sale rate per group.
	RateStatistics(ctx context.Context, gte, lte time.Time) ([]domain.RateStatistic, error)
	// FindRateForDays returns the most recent rate for toCurrency whose
	// day_of_rate is one of the given days.
	FindRateForDays(ctx context.Context, toCurrency string, days []time.Time) (*domain.RateRecord, error)
	// ExistsForDay reports whether any rate record exists for the given day.
	ExistsForDay(ctx context.Context, day time.Time) (bool, error)
}

// RateWriter defines write operations for daily currency rates
type RateWriter interface {
	// SaveRate persists a single rate record.
	SaveRate(ctx context.Context, rate domain.RateRecord) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}

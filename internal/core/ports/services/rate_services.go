package services

import (
	"context"
	"time"

	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
)

// RateSvcFacade exposes read access over stored daily rates.
type RateSvcFacade interface {
	// ListRates returns one page of rates matching the filter plus the total count.
	ListRates(ctx context.Context, filter domain.RateFilter, page int) ([]domain.RateRecord, int, error)
	// Statistics returns per-currency min/max sale rate over [gte, lte]. Zero
	// bounds default to an effectively unbounded range.
	Statistics(ctx context.Context, gte, lte time.Time) ([]domain.RateStatistic, error)
	// PageSize reports the fixed page size used by ListRates.
	PageSize() int
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/exchwatch/currency_exchange_app/internal/core/ports/repositories"
)

// Default statistics range bounds, used when a caller leaves a bound unset.
// They make the range effectively unbounded.
var (
	statsRangeFloor = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	statsRangeCeil  = time.Date(2999, 12, 31, 0, 0, 0, 0, time.UTC)
)

// RateService provides read access over stored daily rates.
type RateService struct {
	rateRepo portsrepo.RateRepositoryFacade
	pageSize int
}

// NewRateService creates a new RateService with a fixed list page size.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade, pageSize int) *RateService {
	return &RateService{
		rateRepo: rateRepo,
		pageSize: pageSize,
	}
}

// ListRates returns one page of rates matching the AND-composed filter together
// with the total number of matching records.
func (s *RateService) ListRates(ctx context.Context, filter domain.RateFilter, page int) ([]domain.RateRecord, int, error) {
	if page < 1 {
		page = 1
	}
	rates, total, err := s.rateRepo.ListRates(ctx, filter, page, s.pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list rates in service: %w", err)
	}
	return rates, total, nil
}

// Statistics computes per-currency min/max sale rate over the inclusive range
// [gte, lte]. Zero bounds default to 1970-01-01 and 2999-12-31. Grouping order
// is whatever the store yields; callers must not assume it is sorted.
func (s *RateService) Statistics(ctx context.Context, gte, lte time.Time) ([]domain.RateStatistic, error) {
	if gte.IsZero() {
		gte = statsRangeFloor
	}
	if lte.IsZero() {
		lte = statsRangeCeil
	}
	stats, err := s.rateRepo.RateStatistics(ctx, gte, lte)
	if err != nil {
		return nil, fmt.Errorf("failed to compute rate statistics in service: %w", err)
	}
	return stats, nil
}

// PageSize reports the fixed page size used by ListRates.
func (s *RateService) PageSize() int {
	return s.pageSize
}

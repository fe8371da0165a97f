package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/exchwatch/currency_exchange_app/internal/core/ports/repositories"
	"github.com/exchwatch/currency_exchange_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status strings returned by Run. Callers can only distinguish the two outcomes
// through these human-readable values.
const (
	StatusUpdated        = "rates were updated using provider api"
	StatusAlreadyPresent = "db contains rates for this day"
)

// providerDateLayout is the DD.MM.YYYY format of the payload's date field.
const providerDateLayout = "02.01.2006"

// Ingester runs one ingestion pass: fetch, deduplicate by day, persist.
type Ingester struct {
	fetcher      RateFetcher
	rateRepo     portsrepo.RateRepositoryFacade
	baseCurrency string
	clock        utils.Clock
}

// NewIngester creates a new Ingester.
func NewIngester(fetcher RateFetcher, rateRepo portsrepo.RateRepositoryFacade, baseCurrency string, clock utils.Clock) *Ingester {
	return &Ingester{
		fetcher:      fetcher,
		rateRepo:     rateRepo,
		baseCurrency: baseCurrency,
		clock:        clock,
	}
}

// Run executes a single ingestion pass and returns a human-readable status.
//
// The deduplication guard is per day, not per currency: if any record exists for
// the payload's date the whole batch is skipped. A run interrupted mid-batch
// therefore leaves a partially ingested day that later runs will not complete.
// Writes are one INSERT per record with no surrounding transaction, so a failure
// at record N keeps records 1..N-1 committed.
func (ing *Ingester) Run(ctx context.Context) (string, error) {
	payload, err := ing.fetcher.FetchDailyRates(ctx)
	if err != nil {
		return "", err
	}

	day := utils.Day(ing.clock.Now())
	if parsed, perr := time.Parse(providerDateLayout, payload.Date); perr == nil {
		day = utils.Day(parsed)
	}

	exists, err := ing.rateRepo.ExistsForDay(ctx, day)
	if err != nil {
		return "", fmt.Errorf("failed to check existing rates for %s: %w", day.Format("2006-01-02"), err)
	}
	if exists {
		return StatusAlreadyPresent, nil
	}

	now := ing.clock.Now()
	today := utils.Day(now)
	for _, entry := range payload.ExchangeRate {
		// Entries without both rates are non-convertible currencies; skip them.
		if entry.SaleRate == nil || entry.PurchaseRate == nil {
			continue
		}

		rate := domain.RateRecord{
			RateID:       uuid.NewString(),
			FromCurrency: ing.baseCurrency,
			ToCurrency:   entry.Currency,
			DayOfRate:    today,
			SaleRate:     decimal.NewFromFloat(*entry.SaleRate),
			PurchaseRate: decimal.NewFromFloat(*entry.PurchaseRate),
			CreatedAt:    now,
		}
		if err := ing.rateRepo.SaveRate(ctx, rate); err != nil {
			return "", fmt.Errorf("failed to save rate for %s: %w", entry.Currency, err)
		}
	}

	return StatusUpdated, nil
}

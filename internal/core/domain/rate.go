package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateRecord is one currency's daily sale/purchase price pair against the base
// currency, as ingested from the external provider.
type RateRecord struct {
	RateID       string          `json:"rate_id"`
	FromCurrency string          `json:"from_currency"` // Base currency code (e.g. "UAH")
	ToCurrency   string          `json:"to_currency"`
	DayOfRate    time.Time       `json:"day_of_rate"`
	SaleRate     decimal.Decimal `json:"sale_rate"`
	PurchaseRate decimal.Decimal `json:"purchase_rate"`
	CreatedAt    time.Time       `json:"created_at"`
}

// RateStatistic holds the min/max sale rate for one currency over a date range.
type RateStatistic struct {
	ToCurrency string          `json:"to_currency"`
	Min        decimal.Decimal `json:"min"`
	Max        decimal.Decimal `json:"max"`
}

// RateFilter carries the optional, AND-composed predicates for listing rates.
// Nil fields impose no constraint. Both date bounds are inclusive.
type RateFilter struct {
	FromCurrency *string
	ToCurrency   *string
	DayOfRate    *time.Time
	DayOfRateGte *time.Time
	DayOfRateLte *time.Time
}

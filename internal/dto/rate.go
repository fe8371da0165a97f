package dto

import (
	"fmt"
	"time"

	"github.com/exchwatch/currency_exchange_app/internal/apperrors"
	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// dayFormat is the wire format for all date query parameters.
const dayFormat = "2006-01-02"

// ListRatesParams defines the query parameters accepted by the rate list view.
// All filters are optional and combine with logical AND.
type ListRatesParams struct {
	FromCurrency string `form:"from_currency"`
	ToCurrency   string `form:"to_currency"`
	DayOfRate    string `form:"day_of_rate"`
	DayOfRateGte string `form:"day_of_rate_gte"`
	DayOfRateLte string `form:"day_of_rate_lte"`
	Page         int    `form:"page,default=1"`
}

// ToRateFilter parses the bound query parameters into a domain filter.
func (p ListRatesParams) ToRateFilter() (domain.RateFilter, error) {
	var filter domain.RateFilter
	if p.FromCurrency != "" {
		filter.FromCurrency = &p.FromCurrency
	}
	if p.ToCurrency != "" {
		filter.ToCurrency = &p.ToCurrency
	}
	var err error
	if filter.DayOfRate, err = parseDay(p.DayOfRate); err != nil {
		return filter, err
	}
	if filter.DayOfRateGte, err = parseDay(p.DayOfRateGte); err != nil {
		return filter, err
	}
	if filter.DayOfRateLte, err = parseDay(p.DayOfRateLte); err != nil {
		return filter, err
	}
	return filter, nil
}

func parseDay(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	day, err := time.Parse(dayFormat, value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, value)
	}
	return &day, nil
}

// RateResponse is the API representation of one rate record.
type RateResponse struct {
	RateID       string          `json:"rate_id"`
	FromCurrency string          `json:"from_currency"`
	ToCurrency   string          `json:"to_currency"`
	DayOfRate    string          `json:"day_of_rate"`
	SaleRate     decimal.Decimal `json:"sale_rate"`
	PurchaseRate decimal.Decimal `json:"purchase_rate"`
}

// ToRateResponse converts a domain rate record to its API representation.
func ToRateResponse(rate domain.RateRecord) RateResponse {
	return RateResponse{
		RateID:       rate.RateID,
		FromCurrency: rate.FromCurrency,
		ToCurrency:   rate.ToCurrency,
		DayOfRate:    rate.DayOfRate.Format(dayFormat),
		SaleRate:     rate.SaleRate,
		PurchaseRate: rate.PurchaseRate,
	}
}

// PaginatedRatesResponse is the page-based envelope for the rate list view.
type PaginatedRatesResponse struct {
	Count    int            `json:"count"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []RateResponse `json:"results"`
}

// StatisticsParams defines the query parameters for the statistics view.
type StatisticsParams struct {
	DateFilterGte string `form:"date_filter_gte"`
	DateFilterLte string `form:"date_filter_lte"`
}

// Bounds parses the optional date filters. Zero times mean "unbounded"; the
// service substitutes its defaults.
func (p StatisticsParams) Bounds() (gte, lte time.Time, err error) {
	if g, perr := parseDay(p.DateFilterGte); perr != nil {
		return gte, lte, perr
	} else if g != nil {
		gte = *g
	}
	if l, perr := parseDay(p.DateFilterLte); perr != nil {
		return gte, lte, perr
	} else if l != nil {
		lte = *l
	}
	return gte, lte, nil
}

// RateStatisticResponse is one per-currency min/max tuple.
type RateStatisticResponse struct {
	ToCurrency string          `json:"to_currency"`
	Min        decimal.Decimal `json:"min"`
	Max        decimal.Decimal `json:"max"`
}

// StatisticsResponse wraps the aggregated statistics list.
type StatisticsResponse struct {
	Statistics []RateStatisticResponse `json:"statistics"`
}

// ToStatisticsResponse converts domain statistics to the API envelope.
func ToStatisticsResponse(stats []domain.RateStatistic) StatisticsResponse {
	out := make([]RateStatisticResponse, len(stats))
	for i, s := range stats {
		out[i] = RateStatisticResponse{ToCurrency: s.ToCurrency, Min: s.Min, Max: s.Max}
	}
	return StatisticsResponse{Statistics: out}
}

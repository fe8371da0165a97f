package mapping

import (
	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
	"github.com/exchwatch/currency_exchange_app/internal/models"
)

// ToDomainRateRecord converts a database rate row to its domain form.
func ToDomainRateRecord(m models.RateRecord) domain.RateRecord {
	return domain.RateRecord{
		RateID:       m.RateID,
		FromCurrency: m.FromCurrency,
		ToCurrency:   m.ToCurrency,
		DayOfRate:    m.DayOfRate,
		SaleRate:     m.SaleRate,
		PurchaseRate: m.PurchaseRate,
		CreatedAt:    m.CreatedAt,
	}
}

// ToModelRateRecord converts a domain rate record to its database form.
func ToModelRateRecord(d domain.RateRecord) models.RateRecord {
	return models.RateRecord{
		RateID:       d.RateID,
		FromCurrency: d.FromCurrency,
		ToCurrency:   d.ToCurrency,
		DayOfRate:    d.DayOfRate,
		SaleRate:     d.SaleRate,
		PurchaseRate: d.PurchaseRate,
		CreatedAt:    d.CreatedAt,
	}
}

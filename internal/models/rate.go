package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateRecord is the database representation of one daily currency rate row.
type RateRecord struct {
	RateID       string          `db:"rate_id"`
	FromCurrency string          `db:"from_currency"`
	ToCurrency   string          `db:"to_currency"`
	DayOfRate    time.Time       `db:"day_of_rate"`
	SaleRate     decimal.Decimal `db:"sale_rate"`
	PurchaseRate decimal.Decimal `db:"purchase_rate"`
	CreatedAt    time.Time       `db:"created_at"`
}

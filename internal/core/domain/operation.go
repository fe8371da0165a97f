package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeOperation is a user-recorded transaction of a quantity against a rate.
// Rate is nil when the referenced rate record has been deleted (weak reference,
// nullified rather than cascaded).
type ExchangeOperation struct {
	OperationID string      `json:"operation_id"`
	Rate        *RateRecord `json:"rate,omitempty"`
	Count       int64       `json:"count"`
	UserID      string      `json:"user_id"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Amount returns the derived monetary value count * sale_rate. It is computed at
// read time and never persisted. The second return is false when the referenced
// rate is gone and no amount can be derived.
func (o ExchangeOperation) Amount() (decimal.Decimal, bool) {
	if o.Rate == nil {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromInt(o.Count).Mul(o.Rate.SaleRate), true
}

package domain_test

import (
	"testing"

	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeOperation_Amount(t *testing.T) {
	op := domain.ExchangeOperation{
		Count: 5,
		Rate:  &domain.RateRecord{SaleRate: decimal.RequireFromString("37.45")},
	}

	amount, ok := op.Amount()

	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.RequireFromString("187.25")))
}

func TestExchangeOperation_Amount_DeletedRate(t *testing.T) {
	op := domain.ExchangeOperation{Count: 5, Rate: nil}

	_, ok := op.Amount()

	assert.False(t, ok)
}

func TestExchangeOperation_Amount_NegativeCount(t *testing.T) {
	op := domain.ExchangeOperation{
		Count: -2,
		Rate:  &domain.RateRecord{SaleRate: decimal.RequireFromString("1.50")},
	}

	amount, ok := op.Amount()

	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.RequireFromString("-3.00")))
}

package totals_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"billbook/internal/totals"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	w := decimal.RequireFromString(want)
	assert.True(t, w.Equal(got), append([]interface{}{"want %s, got %s", w, got}, msgAndArgs...)...)
}

func line(qty, rate, disc, label string) totals.LineInput {
	return totals.LineInput{
		Quantity:        totals.NumberFromString(qty),
		UnitRate:        totals.NumberFromString(rate),
		DiscountPercent: totals.NumberFromString(disc),
		TaxRateLabel:    label,
	}
}

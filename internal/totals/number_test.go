package totals_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"billbook/internal/totals"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"   ", "0"},
		{"abc", "0"},
		{"12.5", "12.5"},
		{" 100 ", "100"},
		{"1,23,456.78", "123456.78"},
		{"-5", "0"},
		{"NaN", "0"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assertDecimal(t, tc.want, totals.ParseNumber(tc.in))
		})
	}
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	var in totals.LineInput
	raw := `{"quantity":"10","unit_rate":99.5,"discount_percent":"","tax_rate_label":"GST @ 18%"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &in))

	assertDecimal(t, "10", in.Quantity.Decimal)
	assertDecimal(t, "99.5", in.UnitRate.Decimal)
	assertDecimal(t, "0", in.DiscountPercent.Decimal)

	t.Run("null_and_garbage", func(t *testing.T) {
		var doc totals.DocumentInput
		raw := `{"additional_charges":null,"overall_discount":"ten","amount_received":-20}`
		require.NoError(t, json.Unmarshal([]byte(raw), &doc))
		assertDecimal(t, "0", doc.AdditionalCharges.Decimal)
		assertDecimal(t, "0", doc.OverallDiscount.Decimal)
		assertDecimal(t, "0", doc.AmountReceived.Decimal)
	})
}

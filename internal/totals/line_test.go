package totals_test

import (
	"testing"

	"billbook/internal/totals"
)

func TestCalculateLine(t *testing.T) {
	t.Run("discount_before_tax", func(t *testing.T) {
		r := totals.CalculateLine(line("10", "100", "10", "GST @ 18%"))
		assertDecimal(t, "1000", r.BaseAmount)
		assertDecimal(t, "100", r.DiscountAmount)
		assertDecimal(t, "900", r.TaxableAmount)
		assertDecimal(t, "18", r.TaxPercent)
		assertDecimal(t, "162", r.TaxAmount)
		assertDecimal(t, "1062", r.LineTotal)
	})

	t.Run("blank_quantity", func(t *testing.T) {
		r := totals.CalculateLine(line("", "100", "0", "GST @ 18%"))
		assertDecimal(t, "0", r.LineTotal)
	})

	t.Run("blank_rate", func(t *testing.T) {
		r := totals.CalculateLine(line("5", "", "", "GST @ 5%"))
		assertDecimal(t, "0", r.LineTotal)
		assertDecimal(t, "0", r.TaxAmount)
	})

	t.Run("negative_inputs_clamped", func(t *testing.T) {
		r := totals.CalculateLine(totals.LineInput{
			Quantity:        totals.Number{Decimal: decimalFrom("-3")},
			UnitRate:        totals.NewNumber(10),
			DiscountPercent: totals.Number{Decimal: decimalFrom("-50")},
			TaxRateLabel:    "None",
		})
		assertDecimal(t, "0", r.BaseAmount)
		assertDecimal(t, "0", r.LineTotal)
	})

	t.Run("discount_capped_at_hundred", func(t *testing.T) {
		r := totals.CalculateLine(line("2", "50", "150", "GST @ 12%"))
		assertDecimal(t, "100", r.DiscountAmount)
		assertDecimal(t, "0", r.TaxableAmount)
		assertDecimal(t, "0", r.LineTotal)
	})

	t.Run("compound_cess", func(t *testing.T) {
		r := totals.CalculateLine(line("1", "1000", "0", "GST @ 14% + cess @ 12%"))
		assertDecimal(t, "260", r.TaxAmount)
		assertDecimal(t, "1260", r.LineTotal)
	})
}

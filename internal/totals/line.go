package totals

import "github.com/shopspring/decimal"

// LineInput is one document line as entered on a form.
type LineInput struct {
	Quantity        Number `json:"quantity"`
	UnitRate        Number `json:"unit_rate"`
	DiscountPercent Number `json:"discount_percent"`
	TaxRateLabel    string `json:"tax_rate_label"`
}

// LineResult holds the derived amounts for a single line.
type LineResult struct {
	BaseAmount     decimal.Decimal `json:"base_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxableAmount  decimal.Decimal `json:"taxable_amount"`
	TaxPercent     decimal.Decimal `json:"tax_percent"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	LineTotal      decimal.Decimal `json:"line_total"`
}

// CalculateLine computes base, discount, taxable, tax and total for one line.
// Discount is applied before tax.
func CalculateLine(in LineInput) LineResult {
	qty := nonNegative(in.Quantity.Decimal)
	rate := nonNegative(in.UnitRate.Decimal)
	discPct := decimal.Min(nonNegative(in.DiscountPercent.Decimal), hundred)

	base := qty.Mul(rate)
	discount := base.Mul(discPct).Div(hundred)
	taxable := nonNegative(base.Sub(discount))
	taxPct := ParseTaxRate(in.TaxRateLabel)
	tax := taxable.Mul(taxPct).Div(hundred)

	return LineResult{
		BaseAmount:     base,
		DiscountAmount: discount,
		TaxableAmount:  taxable,
		TaxPercent:     taxPct,
		TaxAmount:      tax,
		LineTotal:      taxable.Add(tax),
	}
}

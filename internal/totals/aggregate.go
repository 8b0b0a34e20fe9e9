package totals

import (
	"strings"

	"github.com/shopspring/decimal"

	"billbook/internal/domain"
)

// DocumentInput is the full set of form values a document total depends on.
type DocumentInput struct {
	Items               []LineInput         `json:"items"`
	AdditionalCharges   Number              `json:"additional_charges"`
	OverallDiscount     Number              `json:"overall_discount"`
	OverallDiscountType domain.DiscountType `json:"overall_discount_type"`
	AutoRoundOff        bool                `json:"auto_round_off"`
	// Jurisdiction is the place of supply of the party.
	Jurisdiction string `json:"jurisdiction"`
	// HomeJurisdiction is the issuing company's state.
	HomeJurisdiction string `json:"home_jurisdiction"`
	AmountReceived   Number `json:"amount_received"`
}

// Result is everything derived from a DocumentInput.
type Result struct {
	Lines                    []LineResult         `json:"lines"`
	Subtotal                 decimal.Decimal      `json:"subtotal"`
	ItemDiscountTotal        decimal.Decimal      `json:"item_discount_total"`
	TaxableAfterItemDiscount decimal.Decimal      `json:"taxable_after_item_discount"`
	OverallDiscountValue     decimal.Decimal      `json:"overall_discount_value"`
	TaxableAmount            decimal.Decimal      `json:"taxable_amount"`
	ItemTaxTotal             decimal.Decimal      `json:"item_tax_total"`
	TaxAmountTotal           decimal.Decimal      `json:"tax_amount_total"`
	CGST                     decimal.Decimal      `json:"cgst"`
	SGST                     decimal.Decimal      `json:"sgst"`
	IGST                     decimal.Decimal      `json:"igst"`
	AdditionalCharges        decimal.Decimal      `json:"additional_charges"`
	TotalBeforeRound         decimal.Decimal      `json:"total_before_round"`
	RoundedTotal             decimal.Decimal      `json:"rounded_total"`
	RoundOffDelta            decimal.Decimal      `json:"round_off_delta"`
	AmountReceived           decimal.Decimal      `json:"amount_received"`
	BalanceDue               decimal.Decimal      `json:"balance_due"`
	Interstate               bool                 `json:"interstate"`
	Status                   domain.PaymentStatus `json:"status,omitempty"`
}

// Calculate folds every line and document-level adjustment into final totals.
// It always recomputes from scratch.
func Calculate(in DocumentInput, p Policy) Result {
	res := Result{Lines: make([]LineResult, len(in.Items))}

	var gross, net, itemTax decimal.Decimal
	for i, item := range in.Items {
		line := CalculateLine(item)
		res.Lines[i] = line
		gross = gross.Add(line.BaseAmount)
		net = net.Add(line.LineTotal)
		res.ItemDiscountTotal = res.ItemDiscountTotal.Add(line.DiscountAmount)
		itemTax = itemTax.Add(line.TaxAmount)
	}
	res.ItemTaxTotal = itemTax

	switch p.Subtotal {
	case SubtotalNet:
		res.Subtotal = net
	default:
		res.Subtotal = gross
	}

	charges := nonNegative(in.AdditionalCharges.Decimal)
	res.AdditionalCharges = charges

	taxableBase := gross.Sub(res.ItemDiscountTotal)
	if p.Charges == ChargesInTaxableBase {
		taxableBase = taxableBase.Add(charges)
	}
	res.TaxableAfterItemDiscount = taxableBase

	res.OverallDiscountValue = overallDiscount(taxableBase, in.OverallDiscount.Decimal, in.OverallDiscountType)
	res.TaxableAmount = taxableBase.Sub(res.OverallDiscountValue)

	if taxableBase.IsZero() {
		res.TaxAmountTotal = decimal.Zero
	} else {
		res.TaxAmountTotal = itemTax.Mul(res.TaxableAmount).Div(taxableBase)
	}

	res.TotalBeforeRound = res.TaxableAmount.Add(res.TaxAmountTotal)
	if p.Charges == ChargesAfterTax {
		res.TotalBeforeRound = res.TotalBeforeRound.Add(charges)
	}

	res.Interstate = !SameJurisdiction(in.Jurisdiction, in.HomeJurisdiction)
	if res.Interstate {
		res.IGST = res.TaxAmountTotal
	} else {
		res.CGST = res.TaxAmountTotal.Div(decimal.NewFromInt(2))
		res.SGST = res.CGST
	}

	if in.AutoRoundOff {
		res.RoundedTotal = res.TotalBeforeRound.Round(0)
	} else {
		res.RoundedTotal = res.TotalBeforeRound
	}
	res.RoundOffDelta = res.RoundedTotal.Sub(res.TotalBeforeRound).Round(2)

	res.AmountReceived = nonNegative(in.AmountReceived.Decimal)
	res.BalanceDue = res.RoundedTotal.Sub(res.AmountReceived)
	if p.TracksPayment {
		res.Status = DeriveStatus(res.BalanceDue, res.RoundedTotal)
	}
	return res
}

// overallDiscount never exceeds the base it is taken from.
func overallDiscount(base, value decimal.Decimal, kind domain.DiscountType) decimal.Decimal {
	value = nonNegative(value)
	var d decimal.Decimal
	if kind == domain.DiscountFixed {
		d = value
	} else {
		d = base.Mul(decimal.Min(value, hundred)).Div(hundred)
	}
	return decimal.Min(d, nonNegative(base))
}

// SameJurisdiction compares two state names ignoring case and surrounding space.
// An empty place of supply is treated as the home state.
func SameJurisdiction(a, b string) bool {
	a = strings.TrimSpace(a)
	if a == "" {
		return true
	}
	return strings.EqualFold(a, strings.TrimSpace(b))
}

package totals

import "billbook/internal/domain"

// SubtotalConvention selects what the "Subtotal" figure of a document means.
type SubtotalConvention int

const (
	// SubtotalGross is the sum of quantity × rate before discount and tax.
	SubtotalGross SubtotalConvention = iota
	// SubtotalNet is the sum of line totals after line discount and tax.
	SubtotalNet
)

// ChargePlacement selects where additional charges enter the calculation.
type ChargePlacement int

const (
	// ChargesAfterTax adds charges to the total after tax; they are never taxed
	// or discounted.
	ChargesAfterTax ChargePlacement = iota
	// ChargesInTaxableBase folds charges into the base the overall discount is
	// taken from.
	ChargesInTaxableBase
)

// Policy fixes the conventions used for one document type.
type Policy struct {
	Subtotal SubtotalConvention
	Charges  ChargePlacement
	// TracksPayment is set for documents that carry a payment status.
	TracksPayment bool
}

var invoicePolicy = Policy{Subtotal: SubtotalGross, Charges: ChargesAfterTax, TracksPayment: true}

var policies = map[domain.DocumentType]Policy{
	domain.DocumentTypeSalesInvoice:    invoicePolicy,
	domain.DocumentTypePurchaseInvoice: invoicePolicy,
	domain.DocumentTypeCreditNote:      {Subtotal: SubtotalNet, Charges: ChargesAfterTax},
	domain.DocumentTypeDebitNote:       {Subtotal: SubtotalNet, Charges: ChargesAfterTax},
	domain.DocumentTypeSalesReturn:     {Subtotal: SubtotalNet, Charges: ChargesInTaxableBase},
	domain.DocumentTypePurchaseReturn:  {Subtotal: SubtotalNet, Charges: ChargesInTaxableBase},
}

// PolicyFor returns the calculation policy for a document type. Unknown types
// are calculated like invoices.
func PolicyFor(t domain.DocumentType) Policy {
	if p, ok := policies[t]; ok {
		return p
	}
	return invoicePolicy
}

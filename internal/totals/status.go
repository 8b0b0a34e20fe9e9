package totals

import (
	"github.com/shopspring/decimal"

	"billbook/internal/domain"
)

// DeriveStatus classifies an invoice by what is still owed on it.
func DeriveStatus(balanceDue, roundedTotal decimal.Decimal) domain.PaymentStatus {
	switch {
	case !balanceDue.IsPositive():
		return domain.PaymentStatusPaid
	case balanceDue.LessThan(roundedTotal):
		return domain.PaymentStatusPartial
	default:
		return domain.PaymentStatusUnpaid
	}
}

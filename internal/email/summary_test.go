package email_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"billbook/internal/domain"
	"billbook/internal/email"
)

func summary() domain.DocumentSummary {
	return domain.DocumentSummary{
		CompanyName:    "Gupta & Sons",
		DocumentType:   domain.DocumentTypeSalesInvoice,
		DocumentNumber: "INV-0007",
		DocumentDate:   time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		LineCount:      3,
		TaxableAmount:  decimal.RequireFromString("900"),
		TaxAmount:      decimal.RequireFromString("162"),
		RoundedTotal:   decimal.RequireFromString("1062"),
		BalanceDue:     decimal.RequireFromString("662"),
		Status:         domain.PaymentStatusPartial,
	}
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "Tax Invoice INV-0007 from Gupta & Sons", email.Subject(summary()))
}

func TestTextBody(t *testing.T) {
	body := email.TextBody("Ravi", summary())
	assert.Contains(t, body, "Dear Ravi")
	assert.Contains(t, body, "02 Apr 2026")
	assert.Contains(t, body, "Total: Rs. 1062.00")
	assert.Contains(t, body, "Balance due: Rs. 662.00 (partial)")

	t.Run("notes_have_no_balance", func(t *testing.T) {
		s := summary()
		s.DocumentType = domain.DocumentTypeCreditNote
		s.Status = ""
		assert.NotContains(t, email.TextBody("Ravi", s), "Balance due")
	})
}

func TestHTMLBody_Escapes(t *testing.T) {
	body := email.HTMLBody("<Ravi>", summary())
	assert.Contains(t, body, "&lt;Ravi&gt;")
	assert.Contains(t, body, "Gupta &amp; Sons")
	assert.Contains(t, body, "Rs. 1062.00")
}

func TestTitle_Unknown(t *testing.T) {
	assert.Equal(t, "delivery challan", email.Title(domain.DocumentType("delivery_challan")))
}

// Package email holds the message bodies shared by every EmailSender.
package email

import (
	"fmt"
	"html"
	"strings"

	"billbook/internal/domain"
)

var documentTitles = map[domain.DocumentType]string{
	domain.DocumentTypeSalesInvoice:    "Tax Invoice",
	domain.DocumentTypePurchaseInvoice: "Purchase Invoice",
	domain.DocumentTypeCreditNote:      "Credit Note",
	domain.DocumentTypeDebitNote:       "Debit Note",
	domain.DocumentTypeSalesReturn:     "Sales Return",
	domain.DocumentTypePurchaseReturn:  "Purchase Return",
}

// Title returns the printable name of a document type.
func Title(t domain.DocumentType) string {
	if s, ok := documentTitles[t]; ok {
		return s
	}
	return strings.ReplaceAll(string(t), "_", " ")
}

// Subject is the mail subject line for a document summary.
func Subject(s domain.DocumentSummary) string {
	return fmt.Sprintf("%s %s from %s", Title(s.DocumentType), s.DocumentNumber, s.CompanyName)
}

// TextBody renders the plain-text part.
func TextBody(toName string, s domain.DocumentSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", toName)
	fmt.Fprintf(&b, "%s %s dated %s\n", Title(s.DocumentType), s.DocumentNumber, s.DocumentDate.Format("02 Jan 2006"))
	fmt.Fprintf(&b, "Items: %d\n", s.LineCount)
	fmt.Fprintf(&b, "Taxable amount: Rs. %s\n", s.TaxableAmount.StringFixed(2))
	fmt.Fprintf(&b, "GST: Rs. %s\n", s.TaxAmount.StringFixed(2))
	fmt.Fprintf(&b, "Total: Rs. %s\n", s.RoundedTotal.StringFixed(2))
	if s.Status != "" {
		fmt.Fprintf(&b, "Balance due: Rs. %s (%s)\n", s.BalanceDue.StringFixed(2), s.Status)
	}
	fmt.Fprintf(&b, "\nRegards,\n%s", s.CompanyName)
	return b.String()
}

// HTMLBody renders the HTML part.
func HTMLBody(toName string, s domain.DocumentSummary) string {
	balance := ""
	if s.Status != "" {
		balance = fmt.Sprintf(`<tr><td>Balance due</td><td style="text-align:right">Rs. %s (%s)</td></tr>`,
			s.BalanceDue.StringFixed(2), html.EscapeString(string(s.Status)))
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <p>Dear %s,</p>
  <h2 style="color: #333;">%s %s</h2>
  <p style="color: #666;">Dated %s, %d item(s)</p>
  <table style="width: 100%%; border-collapse: collapse;">
    <tr><td>Taxable amount</td><td style="text-align:right">Rs. %s</td></tr>
    <tr><td>GST</td><td style="text-align:right">Rs. %s</td></tr>
    <tr><td><strong>Total</strong></td><td style="text-align:right"><strong>Rs. %s</strong></td></tr>
    %s
  </table>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`,
		html.EscapeString(toName),
		Title(s.DocumentType), html.EscapeString(s.DocumentNumber),
		s.DocumentDate.Format("02 Jan 2006"), s.LineCount,
		s.TaxableAmount.StringFixed(2), s.TaxAmount.StringFixed(2), s.RoundedTotal.StringFixed(2),
		balance,
		html.EscapeString(s.CompanyName))
}

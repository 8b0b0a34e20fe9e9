package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"billbook/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the statement header row.
var columns = []string{
	"Date",
	"Type",
	"Reference",
	"Debit",
	"Credit",
	"Balance",
}

// Writer wraps csv.Writer for exporting party statements as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteStatement writes an opening balance row, one row per entry and a
// closing balance row.
func (w *Writer) WriteStatement(stmt *domain.PartyStatement) error {
	opening := []string{"", "Opening Balance", "", "", "", formatMoney(stmt.OpeningBalance)}
	if err := w.csv.Write(opening); err != nil {
		return err
	}
	for i := range stmt.Entries {
		if err := w.csv.Write(entryToRow(&stmt.Entries[i])); err != nil {
			return err
		}
	}
	closing := []string{"", "Closing Balance", "", "", "", formatMoney(stmt.ClosingBalance)}
	return w.csv.Write(closing)
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func entryToRow(e *domain.StatementEntry) []string {
	return []string{
		e.Date.Format("2006-01-02"),
		kindLabel(e.Kind),
		e.Reference,
		formatAmount(e.Debit),
		formatAmount(e.Credit),
		formatMoney(e.Balance),
	}
}

// kindLabel turns "sales_invoice" into "Sales Invoice".
func kindLabel(kind string) string {
	parts := strings.Split(kind, "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

func formatMoney(v decimal.Decimal) string {
	return v.StringFixed(2)
}

// formatAmount leaves zero debits and credits blank.
func formatAmount(v decimal.Decimal) string {
	if v.IsZero() {
		return ""
	}
	return v.StringFixed(2)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a party name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: statement_{sanitized_party_name}_{YYYY-MM-DD}.csv
func BuildFilename(partyName string, now time.Time) string {
	return fmt.Sprintf("statement_%s_%s.csv", SanitizeFilename(partyName), now.Format("2006-01-02"))
}

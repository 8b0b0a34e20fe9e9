package totals

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParseNumber converts free-form form input into a non-negative decimal.
// Blank or unparsable input yields zero; negative values are clamped to zero.
func ParseNumber(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return nonNegative(d)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Number is a decimal that decodes leniently from a JSON number or string.
// Anything ParseNumber rejects decodes to zero instead of failing the request.
type Number struct {
	decimal.Decimal
}

// NewNumber wraps a float for tests and fixtures.
func NewNumber(f float64) Number {
	return Number{Decimal: nonNegative(decimal.NewFromFloat(f))}
}

// NumberFromString parses s with ParseNumber.
func NumberFromString(s string) Number {
	return Number{Decimal: ParseNumber(s)}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		n.Decimal = decimal.Zero
		return nil
	}
	n.Decimal = ParseNumber(string(bytes.Trim(b, `"`)))
	return nil
}

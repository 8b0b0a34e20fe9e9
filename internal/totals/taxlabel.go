package totals

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// rateFragment captures an optional name and the token after each '@'.
// Tokens that are not plain decimals parse to zero.
var rateFragment = regexp.MustCompile(`([A-Za-z][A-Za-z ]*?)?\s*@\s*([^\s%+]*)\s*%?`)

var plainRate = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?$`)

// TaxComponent is one "<name> @ <rate>%" part of a tax label.
type TaxComponent struct {
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

// ParseTaxRate turns a tax label such as "GST @ 18%" into a percentage.
// Compound labels ("GST @ 14% + cess @ 12%") sum every rate. Labels without
// an '@' ("None", "Exempted") and unparsable rates count as zero.
func ParseTaxRate(label string) decimal.Decimal {
	rate := decimal.Zero
	for _, c := range TaxComponents(label) {
		rate = rate.Add(c.Rate)
	}
	return rate
}

// TaxComponents splits a tax label into its named parts for display.
func TaxComponents(label string) []TaxComponent {
	if !strings.Contains(label, "@") {
		return nil
	}
	matches := rateFragment.FindAllStringSubmatch(label, -1)
	out := make([]TaxComponent, 0, len(matches))
	for _, m := range matches {
		out = append(out, TaxComponent{
			Name: strings.TrimSpace(m[1]),
			Rate: parseRate(m[2]),
		})
	}
	return out
}

// parseRate accepts only digits with an optional fraction. Thousands
// separators and exponents are not rates.
func parseRate(tok string) decimal.Decimal {
	if !plainRate.MatchString(tok) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(tok)
	if err != nil {
		return decimal.Zero
	}
	return d
}

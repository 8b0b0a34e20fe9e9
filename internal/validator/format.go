package validator

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"billbook/internal/domain"
)

var (
	gstinPattern  = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	mobilePattern = regexp.MustCompile(`^(?:\+91|0)?[6-9]\d{9}$`)
)

const gstinCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ValidGSTIN reports whether s is a well-formed GSTIN whose last character
// matches the mod-36 check digit.
func ValidGSTIN(s string) bool {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !gstinPattern.MatchString(s) {
		return false
	}
	return s[14] == gstinCheckDigit(s[:14])
}

func gstinCheckDigit(body string) byte {
	sum := 0
	for i := 0; i < len(body); i++ {
		factor := 1
		if i%2 == 1 {
			factor = 2
		}
		p := strings.IndexByte(gstinCharset, body[i]) * factor
		sum += p/36 + p%36
	}
	return gstinCharset[(36-sum%36)%36]
}

// ValidMobile accepts a 10-digit Indian mobile number starting with 6-9,
// optionally prefixed with +91 or 0. Spaces and dashes are ignored.
func ValidMobile(s string) bool {
	s = strings.NewReplacer(" ", "", "-", "").Replace(s)
	return mobilePattern.MatchString(s)
}

// formatRule checks a party field. Empty fields pass; they are optional.
type formatRule struct {
	ruleKey   string
	ruleName  string
	fieldPath string
	extract   func(*domain.Party) string
	valid     func(string) bool
	message   string
}

func (v *formatRule) RuleKey() string  { return v.ruleKey }
func (v *formatRule) RuleName() string { return v.ruleName }

func (v *formatRule) Validate(_ context.Context, d *Draft) []domain.FieldError {
	if d.Party == nil {
		return nil
	}
	value := v.extract(d.Party)
	if strings.TrimSpace(value) == "" || v.valid(value) {
		return nil
	}
	return []domain.FieldError{{
		Field:   v.fieldPath,
		Message: fmt.Sprintf("%s %q", v.message, value),
	}}
}

// FormatRules returns the party format checks that gate a save.
func FormatRules() []Rule {
	return []Rule{
		&formatRule{
			ruleKey:   "format.party.gstin",
			ruleName:  "Party GSTIN Format",
			fieldPath: "party.gstin",
			extract:   func(p *domain.Party) string { return p.GSTIN },
			valid:     ValidGSTIN,
			message:   "invalid GSTIN",
		},
		&formatRule{
			ruleKey:   "format.party.mobile",
			ruleName:  "Party Mobile Format",
			fieldPath: "party.mobile",
			extract:   func(p *domain.Party) string { return p.Mobile },
			valid:     ValidMobile,
			message:   "invalid mobile number",
		},
	}
}

package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"billbook/internal/domain"
)

// requiredRule runs a document level check, or a per-line one when perLine is set.
type requiredRule struct {
	ruleKey   string
	ruleName  string
	check     func(*Draft) []domain.FieldError
	perLine   bool
	checkLine func(int, *DraftLine) *domain.FieldError
}

func (v *requiredRule) RuleKey() string  { return v.ruleKey }
func (v *requiredRule) RuleName() string { return v.ruleName }

func (v *requiredRule) Validate(_ context.Context, d *Draft) []domain.FieldError {
	if !v.perLine {
		return v.check(d)
	}
	var out []domain.FieldError
	for i := range d.Lines {
		if fe := v.checkLine(i, &d.Lines[i]); fe != nil {
			out = append(out, *fe)
		}
	}
	return out
}

// RequiredRules returns the presence checks that gate a save.
func RequiredRules() []Rule {
	return []Rule{
		&requiredRule{
			ruleKey:  "required.party",
			ruleName: "Party Selected",
			check: func(d *Draft) []domain.FieldError {
				if d.PartyID == uuid.Nil {
					return []domain.FieldError{{Field: "party_id", Message: "select a party"}}
				}
				if d.Party == nil {
					return []domain.FieldError{{Field: "party_id", Message: "party does not exist"}}
				}
				return nil
			},
		},
		&requiredRule{
			ruleKey:  "required.lines",
			ruleName: "At Least One Line",
			check: func(d *Draft) []domain.FieldError {
				if len(d.Lines) == 0 {
					return []domain.FieldError{{Field: "lines", Message: "add at least one item"}}
				}
				return nil
			},
		},
		&requiredRule{
			ruleKey:  "required.line.name",
			ruleName: "Line Item Name",
			perLine:  true,
			checkLine: func(i int, l *DraftLine) *domain.FieldError {
				if strings.TrimSpace(l.Name) != "" {
					return nil
				}
				return &domain.FieldError{Field: fmt.Sprintf("lines[%d].name", i), Message: "item name is required"}
			},
		},
		&requiredRule{
			ruleKey:  "required.line.amount",
			ruleName: "Line Item Amount",
			perLine:  true,
			checkLine: func(i int, l *DraftLine) *domain.FieldError {
				if l.Quantity.Mul(l.UnitRate).IsPositive() {
					return nil
				}
				return &domain.FieldError{Field: fmt.Sprintf("lines[%d].amount", i), Message: "quantity and rate must be greater than zero"}
			},
		},
	}
}

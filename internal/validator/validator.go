package validator

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"billbook/internal/domain"
)

// Rule is a single save-blocking check on a document draft.
type Rule interface {
	Validate(ctx context.Context, d *Draft) []domain.FieldError
	RuleKey() string
	RuleName() string
}

// Draft is what a document looks like right before it is persisted.
// Party is nil when the caller has not chosen one or it could not be loaded.
type Draft struct {
	DocumentType domain.DocumentType
	PartyID      uuid.UUID
	Party        *domain.Party
	Lines        []DraftLine
}

// DraftLine carries the fields of one line that the rules look at.
type DraftLine struct {
	Name     string
	Quantity decimal.Decimal
	UnitRate decimal.Decimal
}

package validator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billbook/internal/domain"
	"billbook/internal/validator"
)

func validDraft() *validator.Draft {
	partyID := uuid.New()
	return &validator.Draft{
		DocumentType: domain.DocumentTypeSalesInvoice,
		PartyID:      partyID,
		Party:        &domain.Party{ID: partyID, Name: "Sharma Traders", GSTIN: "09AAACH7409R1ZZ", Mobile: "9876543210"},
		Lines: []validator.DraftLine{
			{Name: "Basmati Rice 5kg", Quantity: decimal.NewFromInt(2), UnitRate: decimal.NewFromInt(450)},
		},
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := validator.DefaultRegistry()
	assert.Len(t, r.All(), 6)
	assert.NotNil(t, r.Get("required.party"))
	assert.Nil(t, r.Get("nope"))
	assert.Equal(t, "required.party", r.All()[0].RuleKey())
}

func TestRegistry_Check(t *testing.T) {
	r := validator.DefaultRegistry()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, r.Check(ctx, validDraft()))
	})

	t.Run("missing_party", func(t *testing.T) {
		d := validDraft()
		d.PartyID = uuid.Nil
		d.Party = nil
		err := r.Check(ctx, d)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidationFailed))

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "party_id", verr.Fields[0].Field)
	})

	t.Run("unknown_party", func(t *testing.T) {
		d := validDraft()
		d.Party = nil
		var verr *domain.ValidationError
		require.True(t, errors.As(r.Check(ctx, d), &verr))
		assert.Equal(t, "party does not exist", verr.Fields[0].Message)
	})

	t.Run("bad_lines_all_reported", func(t *testing.T) {
		d := validDraft()
		d.Lines = append(d.Lines,
			validator.DraftLine{Name: "  ", Quantity: decimal.NewFromInt(1), UnitRate: decimal.NewFromInt(10)},
			validator.DraftLine{Name: "Free sample", Quantity: decimal.NewFromInt(1), UnitRate: decimal.Zero},
		)
		var verr *domain.ValidationError
		require.True(t, errors.As(r.Check(ctx, d), &verr))
		fields := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, f.Field)
		}
		assert.Equal(t, []string{"lines[1].name", "lines[2].amount"}, fields)
	})

	t.Run("no_lines", func(t *testing.T) {
		d := validDraft()
		d.Lines = nil
		var verr *domain.ValidationError
		require.True(t, errors.As(r.Check(ctx, d), &verr))
		assert.Equal(t, "lines", verr.Fields[0].Field)
	})
}

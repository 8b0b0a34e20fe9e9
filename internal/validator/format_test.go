package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billbook/internal/domain"
	"billbook/internal/validator"
)

func TestValidGSTIN(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"27AAPFU0939F1ZV", true},
		{"09AAACH7409R1ZZ", true},
		{"07aagff2194n1z1", true},
		{"29ABCDE1234F1Z5", false}, // bad check digit
		{"27AAPFU0939F1Z", false},
		{"27AAPFU0939F0ZV", false},
		{"", false},
		{"not-a-gstin", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, validator.ValidGSTIN(tc.in))
		})
	}
}

func TestValidMobile(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"9876543210", true},
		{"+919876543210", true},
		{"09876543210", true},
		{"98765 43210", true},
		{"5876543210", false},
		{"987654321", false},
		{"98765432101", false},
		{"abcdefghij", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, validator.ValidMobile(tc.in))
		})
	}
}

func TestFormatRules(t *testing.T) {
	rules := validator.FormatRules()
	require.Len(t, rules, 2)
	ctx := context.Background()

	t.Run("no_party_skips", func(t *testing.T) {
		for _, r := range rules {
			assert.Empty(t, r.Validate(ctx, &validator.Draft{}))
		}
	})

	t.Run("empty_fields_pass", func(t *testing.T) {
		d := &validator.Draft{Party: &domain.Party{Name: "Walk-in"}}
		for _, r := range rules {
			assert.Empty(t, r.Validate(ctx, d))
		}
	})

	t.Run("bad_values_fail", func(t *testing.T) {
		d := &validator.Draft{Party: &domain.Party{GSTIN: "29ABCDE1234F1Z5", Mobile: "12345"}}
		var fields []string
		for _, r := range rules {
			for _, fe := range r.Validate(ctx, d) {
				fields = append(fields, fe.Field)
			}
		}
		assert.Equal(t, []string{"party.gstin", "party.mobile"}, fields)
	})
}

func TestStates(t *testing.T) {
	name, ok := validator.StateForCode("09")
	assert.True(t, ok)
	assert.Equal(t, "Uttar Pradesh", name)

	assert.Equal(t, "Maharashtra", validator.StateFromGSTIN("27AAPFU0939F1ZV"))
	assert.Equal(t, "", validator.StateFromGSTIN("9"))
	assert.Equal(t, "07", validator.CodeForState(" delhi "))
	assert.Equal(t, "", validator.CodeForState("Atlantis"))
}

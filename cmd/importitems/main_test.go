package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newSheet(t *testing.T, rows [][]interface{}) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	return f
}

func TestParseSheet(t *testing.T) {
	f := newSheet(t, [][]interface{}{
		{"Item Name", "Code", "HSN/SAC", "Unit", "GST Rate", "MRP", "Sale Price", "Purchase Price", "Opening Stock"},
		{"Basmati Rice 5kg", "RICE5", "1006", "bag", "5", "650", "600", "520", "40"},
		{"", "BLANK", "", "", "", "", "", "", ""},
		{"Ghee 1L", "", "0405", "", "GST @ 12%", "1,200", "1100", "", ""},
	})

	items, skipped, err := parseSheet(f, "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, items, 2)

	rice := items[0]
	assert.Equal(t, "Basmati Rice 5kg", rice.name)
	assert.Equal(t, "RICE5", rice.code)
	assert.Equal(t, "BAG", rice.unit)
	assert.Equal(t, "GST @ 5%", rice.gstRate)
	assert.Equal(t, "600", rice.sellingPrice.String())
	assert.Equal(t, "40", rice.stock.String())

	ghee := items[1]
	assert.Equal(t, "PCS", ghee.unit)
	assert.Equal(t, "GST @ 12%", ghee.gstRate)
	assert.Equal(t, "1200", ghee.mrp.String())
	assert.True(t, ghee.purchasePrice.IsZero())
}

func TestParseSheet_RequiresNameColumn(t *testing.T) {
	f := newSheet(t, [][]interface{}{{"Code", "MRP"}, {"X1", "10"}})

	_, _, err := parseSheet(f, "Sheet1")
	assert.Error(t, err)
}

func TestNormalizeRate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "None"},
		{"0", "None"},
		{"18", "GST @ 18%"},
		{"18%", "GST @ 18%"},
		{"GST 28%", "GST @ 28%"},
		{"GST @ 14% + cess @ 12%", "GST @ 14% + cess @ 12%"},
		{"Exempt", "None"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeRate(tt.in))
		})
	}
}

func TestWriteSQL(t *testing.T) {
	companyID := uuid.New()
	items := []itemRow{{name: "O'Brien Tea", unit: "PCS", gstRate: "None"}}

	var buf bytes.Buffer
	require.NoError(t, writeSQL(&buf, companyID, items, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "-- Item master seed"))
	assert.Contains(t, out, "'O''Brien Tea'")
	assert.Contains(t, out, companyID.String())
	assert.Contains(t, out, "ON CONFLICT (company_id, code) WHERE code <> '' DO NOTHING;")
	assert.True(t, strings.HasSuffix(out, "COMMIT;\n"))
}

// Command importitems converts an item master spreadsheet into a SQL seed
// file for one company.
// Usage: go run ./cmd/importitems -company <uuid> -file items.xlsx [-out db/seeds/items.sql]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"billbook/internal/config"
	"billbook/internal/logger"
	"billbook/internal/totals"
)

const batchSize = 500

type itemRow struct {
	name          string
	code          string
	hsn           string
	unit          string
	gstRate       string
	mrp           decimal.Decimal
	sellingPrice  decimal.Decimal
	purchasePrice decimal.Decimal
	stock         decimal.Decimal
}

// headerAliases maps accepted header spellings to a column key.
var headerAliases = map[string]string{
	"name":           "name",
	"item name":      "name",
	"code":           "code",
	"item code":      "code",
	"hsn":            "hsn",
	"hsn/sac":        "hsn",
	"unit":           "unit",
	"gst":            "gst_rate",
	"gst rate":       "gst_rate",
	"tax":            "gst_rate",
	"mrp":            "mrp",
	"selling price":  "selling_price",
	"sale price":     "selling_price",
	"purchase price": "purchase_price",
	"stock":          "stock",
	"opening stock":  "stock",
}

func main() {
	companyFlag := flag.String("company", "", "company ID the items belong to")
	fileFlag := flag.String("file", "items.xlsx", "item master spreadsheet")
	sheetFlag := flag.String("sheet", "", "sheet name (defaults to the first sheet)")
	outFlag := flag.String("out", "db/seeds/items.sql", "output SQL file")
	flag.Parse()

	logger.New(config.LogConfig{Level: "info", Format: "console"})

	if err := run(*companyFlag, *fileFlag, *sheetFlag, *outFlag); err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}
}

func run(companyArg, xlsxPath, sheet, outPath string) error {
	companyID, err := uuid.Parse(companyArg)
	if err != nil {
		return fmt.Errorf("invalid -company: %w", err)
	}

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	items, skipped, err := parseSheet(f, sheet)
	if err != nil {
		return fmt.Errorf("parse sheet %q: %w", sheet, err)
	}
	log.Info().Int("items", len(items)).Int("skipped", skipped).Str("sheet", sheet).Msg("sheet parsed")

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if err := writeSQL(out, companyID, items, time.Now().UTC()); err != nil {
		return err
	}
	log.Info().Int("items", len(items)).Str("out", outPath).Msg("seed file written")
	return nil
}

// parseSheet reads items from a sheet whose first row holds column headers.
// Rows without a name are skipped and counted.
func parseSheet(f *excelize.File, sheet string) ([]itemRow, int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, 0, err
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("sheet is empty")
	}

	cols := make(map[string]int)
	for i, h := range rows[0] {
		if key, ok := headerAliases[strings.ToLower(strings.TrimSpace(h))]; ok {
			if _, dup := cols[key]; !dup {
				cols[key] = i
			}
		}
	}
	if _, ok := cols["name"]; !ok {
		return nil, 0, fmt.Errorf("no name column in header row")
	}

	get := func(row []string, key string) string {
		idx, ok := cols[key]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var (
		items   []itemRow
		skipped int
	)
	for _, row := range rows[1:] {
		name := get(row, "name")
		if name == "" {
			skipped++
			continue
		}
		item := itemRow{
			name:          name,
			code:          get(row, "code"),
			hsn:           get(row, "hsn"),
			unit:          strings.ToUpper(get(row, "unit")),
			gstRate:       normalizeRate(get(row, "gst_rate")),
			mrp:           totals.ParseNumber(get(row, "mrp")),
			sellingPrice:  totals.ParseNumber(get(row, "selling_price")),
			purchasePrice: totals.ParseNumber(get(row, "purchase_price")),
			stock:         totals.ParseNumber(get(row, "stock")),
		}
		if item.unit == "" {
			item.unit = "PCS"
		}
		items = append(items, item)
	}
	return items, skipped, nil
}

// normalizeRate turns spreadsheet rates such as "18", "18%" or "GST 18%" into
// a tax label. Blank or zero becomes "None".
func normalizeRate(s string) string {
	if strings.Contains(s, "@") {
		if totals.ParseTaxRate(s).IsZero() {
			return "None"
		}
		return s
	}
	rate := totals.ParseNumber(strings.Trim(strings.ToUpper(s), "GST% "))
	if rate.IsZero() {
		return "None"
	}
	return "GST @ " + rate.String() + "%"
}

func writeSQL(out io.Writer, companyID uuid.UUID, items []itemRow, now time.Time) error {
	header := []string{
		"-- Item master seed generated from Excel.",
		fmt.Sprintf("-- %d items for company %s in batches of %d.", len(items), companyID, batchSize),
		"BEGIN;",
		"",
	}
	for _, line := range header {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i := 0; i < len(items); i += batchSize {
		end := i + batchSize
		if end > len(items) {
			end = len(items)
		}
		if err := writeBatch(out, companyID, items[i:end], now); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	if _, err := fmt.Fprintln(out, "COMMIT;"); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}
	return nil
}

func writeBatch(out io.Writer, companyID uuid.UUID, batch []itemRow, now time.Time) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO items (id, company_id, name, code, hsn, mrp, selling_price, purchase_price, gst_rate, unit, stock, created_at, updated_at) VALUES\n")

	ts := now.Format(time.RFC3339)
	for i := range batch {
		e := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', '%s', %s, %s, %s, '%s', '%s', %s, '%s', '%s')",
			uuid.New(), companyID, escapeSQL(e.name), escapeSQL(e.code), escapeSQL(e.hsn),
			e.mrp.String(), e.sellingPrice.String(), e.purchasePrice.String(),
			escapeSQL(e.gstRate), escapeSQL(e.unit), e.stock.String(), ts, ts)
	}

	b.WriteString("\nON CONFLICT (company_id, code) WHERE code <> '' DO NOTHING;\n\n")

	_, err := io.WriteString(out, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

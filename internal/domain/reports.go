package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	DocumentType DocumentType
	PartyID      *uuid.UUID
	Status       PaymentStatus
	From         *time.Time
	To           *time.Time
	Offset       int
	Limit        int
}

// PeriodFilter bounds a report by document date.
type PeriodFilter struct {
	From *time.Time
	To   *time.Time
}

// DocumentTypeTotals is one row of per-type stored totals.
type DocumentTypeTotals struct {
	DocumentType  DocumentType    `db:"document_type" json:"document_type"`
	Count         int             `db:"doc_count" json:"count"`
	TaxableAmount decimal.Decimal `db:"taxable_amount" json:"taxable_amount"`
	CGST          decimal.Decimal `db:"cgst" json:"cgst"`
	SGST          decimal.Decimal `db:"sgst" json:"sgst"`
	IGST          decimal.Decimal `db:"igst" json:"igst"`
	RoundedTotal  decimal.Decimal `db:"rounded_total" json:"rounded_total"`
	BalanceDue    decimal.Decimal `db:"balance_due" json:"balance_due"`
}

// PaymentTotals sums payments for one direction.
type PaymentTotals struct {
	Direction PaymentDirection `db:"direction" json:"direction"`
	Count     int              `db:"payment_count" json:"count"`
	Amount    decimal.Decimal  `db:"amount" json:"amount"`
}

// TaxBreakdown is a cgst/sgst/igst triple.
type TaxBreakdown struct {
	CGST  decimal.Decimal `json:"cgst"`
	SGST  decimal.Decimal `json:"sgst"`
	IGST  decimal.Decimal `json:"igst"`
	Total decimal.Decimal `json:"total"`
}

// BalanceSheet summarises the company's position over a period.
type BalanceSheet struct {
	From            *time.Time           `json:"from"`
	To              *time.Time           `json:"to"`
	ByType          []DocumentTypeTotals `json:"by_type"`
	NetSales        decimal.Decimal      `json:"net_sales"`
	NetPurchases    decimal.Decimal      `json:"net_purchases"`
	OutputTax       TaxBreakdown         `json:"output_tax"`
	InputTax        TaxBreakdown         `json:"input_tax"`
	NetTaxPayable   decimal.Decimal      `json:"net_tax_payable"`
	Receivables     decimal.Decimal      `json:"receivables"`
	Payables        decimal.Decimal      `json:"payables"`
	PaymentsIn      decimal.Decimal      `json:"payments_in"`
	PaymentsOut     decimal.Decimal      `json:"payments_out"`
	NetCashFlow     decimal.Decimal      `json:"net_cash_flow"`
	GrossProfitHint decimal.Decimal      `json:"gross_profit_hint"`
}

// StatementEntry is one line of a party statement.
type StatementEntry struct {
	Date      time.Time       `json:"date"`
	Kind      string          `json:"kind"`
	Reference string          `json:"reference"`
	RefID     uuid.UUID       `json:"ref_id"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Balance   decimal.Decimal `json:"balance"`
}

// PartyStatement lists every document and payment for one party with a
// running balance. Positive balance means the party owes the company.
type PartyStatement struct {
	Party          *Party           `json:"party"`
	OpeningBalance decimal.Decimal  `json:"opening_balance"`
	Entries        []StatementEntry `json:"entries"`
	ClosingBalance decimal.Decimal  `json:"closing_balance"`
}

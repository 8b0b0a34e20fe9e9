package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"billbook/internal/domain"
	"billbook/internal/port"
)

// ReportService builds summaries from stored document totals and payments.
type ReportService interface {
	BalanceSheet(ctx context.Context, companyID uuid.UUID, period domain.PeriodFilter) (*domain.BalanceSheet, error)
	PartyStatement(ctx context.Context, companyID, partyID uuid.UUID) (*domain.PartyStatement, error)
}

type reportService struct {
	reportRepo  port.ReportRepository
	partyRepo   port.PartyRepository
	docRepo     port.DocumentRepository
	paymentRepo port.PaymentRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(
	reportRepo port.ReportRepository,
	partyRepo port.PartyRepository,
	docRepo port.DocumentRepository,
	paymentRepo port.PaymentRepository,
) ReportService {
	return &reportService{
		reportRepo:  reportRepo,
		partyRepo:   partyRepo,
		docRepo:     docRepo,
		paymentRepo: paymentRepo,
	}
}

// BalanceSheet nets sales against credit notes and sales returns, and
// purchases against debit notes and purchase returns.
func (s *reportService) BalanceSheet(ctx context.Context, companyID uuid.UUID, period domain.PeriodFilter) (*domain.BalanceSheet, error) {
	byType, err := s.reportRepo.DocumentTotals(ctx, companyID, period)
	if err != nil {
		return nil, err
	}
	payments, err := s.reportRepo.PaymentTotals(ctx, companyID, period)
	if err != nil {
		return nil, err
	}

	sheet := &domain.BalanceSheet{From: period.From, To: period.To, ByType: byType}
	for _, t := range byType {
		switch t.DocumentType {
		case domain.DocumentTypeSalesInvoice:
			sheet.NetSales = sheet.NetSales.Add(t.TaxableAmount)
			sheet.OutputTax = addTax(sheet.OutputTax, t, 1)
			sheet.Receivables = sheet.Receivables.Add(t.BalanceDue)
		case domain.DocumentTypeCreditNote, domain.DocumentTypeSalesReturn:
			sheet.NetSales = sheet.NetSales.Sub(t.TaxableAmount)
			sheet.OutputTax = addTax(sheet.OutputTax, t, -1)
		case domain.DocumentTypePurchaseInvoice:
			sheet.NetPurchases = sheet.NetPurchases.Add(t.TaxableAmount)
			sheet.InputTax = addTax(sheet.InputTax, t, 1)
			sheet.Payables = sheet.Payables.Add(t.BalanceDue)
		case domain.DocumentTypeDebitNote, domain.DocumentTypePurchaseReturn:
			sheet.NetPurchases = sheet.NetPurchases.Sub(t.TaxableAmount)
			sheet.InputTax = addTax(sheet.InputTax, t, -1)
		}
	}
	for _, p := range payments {
		switch p.Direction {
		case domain.PaymentIn:
			sheet.PaymentsIn = sheet.PaymentsIn.Add(p.Amount)
		case domain.PaymentOut:
			sheet.PaymentsOut = sheet.PaymentsOut.Add(p.Amount)
		}
	}

	sheet.NetTaxPayable = sheet.OutputTax.Total.Sub(sheet.InputTax.Total)
	sheet.NetCashFlow = sheet.PaymentsIn.Sub(sheet.PaymentsOut)
	sheet.GrossProfitHint = sheet.NetSales.Sub(sheet.NetPurchases)
	return sheet, nil
}

func addTax(b domain.TaxBreakdown, t domain.DocumentTypeTotals, sign int64) domain.TaxBreakdown {
	f := decimal.NewFromInt(sign)
	b.CGST = b.CGST.Add(t.CGST.Mul(f))
	b.SGST = b.SGST.Add(t.SGST.Mul(f))
	b.IGST = b.IGST.Add(t.IGST.Mul(f))
	b.Total = b.CGST.Add(b.SGST).Add(b.IGST)
	return b
}

// debitsParty lists document types that increase what the party owes.
var debitsParty = map[domain.DocumentType]bool{
	domain.DocumentTypeSalesInvoice:   true,
	domain.DocumentTypeDebitNote:      true,
	domain.DocumentTypePurchaseReturn: true,
}

// PartyStatement lists documents and payments for a party oldest first with a
// running balance. Amounts received on an invoice outside recorded payments
// appear as a separate entry on the invoice date.
func (s *reportService) PartyStatement(ctx context.Context, companyID, partyID uuid.UUID) (*domain.PartyStatement, error) {
	party, err := s.partyRepo.GetByID(ctx, companyID, partyID)
	if err != nil {
		return nil, err
	}
	docs, err := s.docRepo.ListByParty(ctx, companyID, partyID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByParty(ctx, companyID, partyID)
	if err != nil {
		return nil, err
	}

	linked := make(map[uuid.UUID]decimal.Decimal)
	entries := make([]domain.StatementEntry, 0, len(docs)+len(payments))
	for _, p := range payments {
		if p.DocumentID != nil {
			linked[*p.DocumentID] = linked[*p.DocumentID].Add(p.Amount)
		}
		e := domain.StatementEntry{
			Date:      p.PaymentDate,
			Kind:      "payment_" + string(p.Direction),
			Reference: strings.TrimSpace(string(p.Mode) + " " + p.Reference),
			RefID:     p.ID,
		}
		if p.Direction == domain.PaymentIn {
			e.Credit = p.Amount
		} else {
			e.Debit = p.Amount
		}
		entries = append(entries, e)
	}

	for i := range docs {
		d := &docs[i]
		e := domain.StatementEntry{
			Date:      d.DocumentDate,
			Kind:      string(d.DocumentType),
			Reference: d.DocumentNumber,
			RefID:     d.ID,
		}
		if debitsParty[d.DocumentType] {
			e.Debit = d.RoundedTotal
		} else {
			e.Credit = d.RoundedTotal
		}
		entries = append(entries, e)

		if !d.DocumentType.IsInvoice() {
			continue
		}
		upfront := d.AmountReceived.Sub(linked[d.ID])
		if !upfront.IsPositive() {
			continue
		}
		r := domain.StatementEntry{
			Date:      d.DocumentDate,
			Kind:      "payment_" + string(d.DocumentType.PaymentDirection()),
			Reference: d.DocumentNumber,
			RefID:     d.ID,
		}
		if d.DocumentType.PaymentDirection() == domain.PaymentIn {
			r.Credit = upfront
		} else {
			r.Debit = upfront
		}
		entries = append(entries, r)
	}

	// Documents sort before payments on the same day; append order is kept otherwise.
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return !isPaymentEntry(entries[i]) && isPaymentEntry(entries[j])
	})

	balance := party.OpeningBalance
	for i := range entries {
		balance = balance.Add(entries[i].Debit).Sub(entries[i].Credit)
		entries[i].Balance = balance
	}

	return &domain.PartyStatement{
		Party:          party,
		OpeningBalance: party.OpeningBalance,
		Entries:        entries,
		ClosingBalance: balance,
	}, nil
}

func isPaymentEntry(e domain.StatementEntry) bool {
	return strings.HasPrefix(e.Kind, "payment_")
}

package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"billbook/internal/domain"
	"billbook/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

// buildPeriodWhere constructs a WHERE clause scoped to a company and an
// optional date range on dateColumn.
func buildPeriodWhere(companyID uuid.UUID, dateColumn string, p domain.PeriodFilter) (clause string, args []interface{}) {
	args = []interface{}{companyID}
	clause = "WHERE company_id = $1"
	argN := 2

	if p.From != nil {
		clause += fmt.Sprintf(" AND %s >= $%d", dateColumn, argN)
		args = append(args, *p.From)
		argN++
	}
	if p.To != nil {
		clause += fmt.Sprintf(" AND %s <= $%d", dateColumn, argN)
		args = append(args, *p.To)
	}
	return clause, args
}

func (r *reportRepo) DocumentTotals(ctx context.Context, companyID uuid.UUID, period domain.PeriodFilter) ([]domain.DocumentTypeTotals, error) {
	clause, args := buildPeriodWhere(companyID, "document_date", period)
	query := fmt.Sprintf(`SELECT document_type,
		COUNT(*) AS doc_count,
		COALESCE(SUM(taxable_amount), 0) AS taxable_amount,
		COALESCE(SUM(cgst), 0) AS cgst,
		COALESCE(SUM(sgst), 0) AS sgst,
		COALESCE(SUM(igst), 0) AS igst,
		COALESCE(SUM(rounded_total), 0) AS rounded_total,
		COALESCE(SUM(balance_due), 0) AS balance_due
	FROM documents
	%s
	GROUP BY document_type
	ORDER BY document_type`, clause)

	var rows []domain.DocumentTypeTotals
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.DocumentTotals: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) PaymentTotals(ctx context.Context, companyID uuid.UUID, period domain.PeriodFilter) ([]domain.PaymentTotals, error) {
	clause, args := buildPeriodWhere(companyID, "payment_date", period)
	query := fmt.Sprintf(`SELECT direction,
		COUNT(*) AS payment_count,
		COALESCE(SUM(amount), 0) AS amount
	FROM payments
	%s
	GROUP BY direction`, clause)

	var rows []domain.PaymentTotals
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.PaymentTotals: %w", err)
	}
	return rows, nil
}

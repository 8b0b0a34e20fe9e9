package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"billbook/internal/domain"
	"billbook/internal/port"
)

type paymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates a new PostgreSQL-backed PaymentRepository.
func NewPaymentRepo(db *sqlx.DB) port.PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, payment *domain.Payment, settle port.SettleFunc) error {
	payment.ID = uuid.New()
	payment.CreatedAt = time.Now().UTC()

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if payment.DocumentID != nil {
			if err := settleDocument(ctx, tx, payment.CompanyID, *payment.DocumentID, settle); err != nil {
				return err
			}
		}
		_, err := tx.NamedExecContext(ctx, `INSERT INTO payments
			(id, company_id, direction, party_id, document_id, amount, mode, reference, payment_date,
			 notes, created_by, created_at)
			VALUES (:id, :company_id, :direction, :party_id, :document_id, :amount, :mode, :reference, :payment_date,
			 :notes, :created_by, :created_at)`, payment)
		if err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return wrapPaymentErr("paymentRepo.Create", err)
	}
	return nil
}

// settleDocument locks the document row, lets settle mutate it, and writes
// the settlement columns back.
func settleDocument(ctx context.Context, tx *sqlx.Tx, companyID, docID uuid.UUID, settle port.SettleFunc) error {
	var doc domain.Document
	err := tx.GetContext(ctx, &doc,
		"SELECT * FROM documents WHERE id = $1 AND company_id = $2 FOR UPDATE", docID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrDocumentNotFound
		}
		return fmt.Errorf("lock document: %w", err)
	}

	if err := settle(&doc); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE documents
		SET amount_received = $1, balance_due = $2, payment_status = $3, updated_at = $4
		WHERE id = $5`,
		doc.AmountReceived, doc.BalanceDue, doc.PaymentStatus, time.Now().UTC(), doc.ID); err != nil {
		return fmt.Errorf("update settlement: %w", err)
	}
	return nil
}

func (r *paymentRepo) GetByID(ctx context.Context, companyID, paymentID uuid.UUID) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.db.GetContext(ctx, &payment,
		"SELECT * FROM payments WHERE id = $1 AND company_id = $2", paymentID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("paymentRepo.GetByID: %w", err)
	}
	return &payment, nil
}

func (r *paymentRepo) List(ctx context.Context, companyID uuid.UUID, filter port.PaymentFilter) ([]domain.Payment, int, error) {
	clause := "WHERE company_id = $1"
	args := []interface{}{companyID}
	argN := 2
	if filter.PartyID != nil {
		clause += fmt.Sprintf(" AND party_id = $%d", argN)
		args = append(args, *filter.PartyID)
		argN++
	}
	if filter.DocumentID != nil {
		clause += fmt.Sprintf(" AND document_id = $%d", argN)
		args = append(args, *filter.DocumentID)
		argN++
	}
	if filter.Direction != "" {
		clause += fmt.Sprintf(" AND direction = $%d", argN)
		args = append(args, filter.Direction)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM payments "+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("paymentRepo.List count: %w", err)
	}

	var payments []domain.Payment
	query := fmt.Sprintf("SELECT * FROM payments %s ORDER BY payment_date DESC, created_at DESC OFFSET %d LIMIT %d",
		clause, filter.Offset, filter.Limit)
	if err := r.db.SelectContext(ctx, &payments, query, args...); err != nil {
		return nil, 0, fmt.Errorf("paymentRepo.List: %w", err)
	}
	return payments, total, nil
}

func (r *paymentRepo) ListByParty(ctx context.Context, companyID, partyID uuid.UUID) ([]domain.Payment, error) {
	var payments []domain.Payment
	if err := r.db.SelectContext(ctx, &payments, `SELECT * FROM payments
		WHERE company_id = $1 AND party_id = $2
		ORDER BY payment_date, created_at`, companyID, partyID); err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByParty: %w", err)
	}
	return payments, nil
}

func (r *paymentRepo) Delete(ctx context.Context, companyID, paymentID uuid.UUID, settle port.SettleFunc) error {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var payment domain.Payment
		err := tx.GetContext(ctx, &payment,
			"SELECT * FROM payments WHERE id = $1 AND company_id = $2 FOR UPDATE", paymentID, companyID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrPaymentNotFound
			}
			return fmt.Errorf("lock payment: %w", err)
		}

		if payment.DocumentID != nil {
			err := settleDocument(ctx, tx, companyID, *payment.DocumentID, settle)
			// the document may have been deleted since; the payment still goes
			if err != nil && !errors.Is(err, domain.ErrDocumentNotFound) {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM payments WHERE id = $1", paymentID); err != nil {
			return fmt.Errorf("delete payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return wrapPaymentErr("paymentRepo.Delete", err)
	}
	return nil
}

// wrapPaymentErr passes domain sentinels through untouched.
func wrapPaymentErr(op string, err error) error {
	for _, sentinel := range []error{
		domain.ErrPaymentNotFound, domain.ErrDocumentNotFound,
		domain.ErrPaymentMismatch, domain.ErrValidationFailed,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

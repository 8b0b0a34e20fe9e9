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

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

const insertDocumentQuery = `INSERT INTO documents
	(id, company_id, document_type, document_number, sequence, document_date, due_date,
	 party_id, party_name, party_gstin, place_of_supply, original_document_id,
	 additional_charges, overall_discount, overall_discount_type, auto_round_off,
	 subtotal, item_discount_total, taxable_after_item_discount, overall_discount_value,
	 taxable_amount, tax_amount_total, cgst, sgst, igst, total_before_round, rounded_total,
	 round_off_delta, amount_received, balance_due, payment_status, notes, created_by,
	 created_at, updated_at)
	VALUES
	(:id, :company_id, :document_type, :document_number, :sequence, :document_date, :due_date,
	 :party_id, :party_name, :party_gstin, :place_of_supply, :original_document_id,
	 :additional_charges, :overall_discount, :overall_discount_type, :auto_round_off,
	 :subtotal, :item_discount_total, :taxable_after_item_discount, :overall_discount_value,
	 :taxable_amount, :tax_amount_total, :cgst, :sgst, :igst, :total_before_round, :rounded_total,
	 :round_off_delta, :amount_received, :balance_due, :payment_status, :notes, :created_by,
	 :created_at, :updated_at)`

const updateDocumentQuery = `UPDATE documents SET
	document_date = :document_date, due_date = :due_date,
	party_id = :party_id, party_name = :party_name, party_gstin = :party_gstin,
	place_of_supply = :place_of_supply, original_document_id = :original_document_id,
	additional_charges = :additional_charges, overall_discount = :overall_discount,
	overall_discount_type = :overall_discount_type, auto_round_off = :auto_round_off,
	subtotal = :subtotal, item_discount_total = :item_discount_total,
	taxable_after_item_discount = :taxable_after_item_discount,
	overall_discount_value = :overall_discount_value, taxable_amount = :taxable_amount,
	tax_amount_total = :tax_amount_total, cgst = :cgst, sgst = :sgst, igst = :igst,
	total_before_round = :total_before_round, rounded_total = :rounded_total,
	round_off_delta = :round_off_delta, balance_due = :balance_due,
	payment_status = :payment_status, notes = :notes,
	updated_at = :updated_at
	WHERE id = :id AND company_id = :company_id`

const insertLineQuery = `INSERT INTO document_lines
	(id, document_id, position, item_id, name, hsn, unit, quantity, unit_rate, discount_percent,
	 tax_rate_label, base_amount, discount_amount, taxable_amount, tax_percent, tax_amount, line_total)
	VALUES
	(:id, :document_id, :position, :item_id, :name, :hsn, :unit, :quantity, :unit_rate, :discount_percent,
	 :tax_rate_label, :base_amount, :discount_amount, :taxable_amount, :tax_percent, :tax_amount, :line_total)`

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document, prefix string, moves []domain.StockMove) error {
	doc.ID = uuid.New()
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var seq int
		if err := tx.GetContext(ctx, &seq, `INSERT INTO document_sequences (company_id, document_type, last_value)
			VALUES ($1, $2, 1)
			ON CONFLICT (company_id, document_type)
			DO UPDATE SET last_value = document_sequences.last_value + 1
			RETURNING last_value`, doc.CompanyID, doc.DocumentType); err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		doc.Sequence = seq
		doc.DocumentNumber = fmt.Sprintf("%s-%04d", prefix, seq)

		if _, err := tx.NamedExecContext(ctx, insertDocumentQuery, doc); err != nil {
			if isDuplicateKey(err) {
				return domain.ErrDuplicateDocNumber
			}
			return fmt.Errorf("insert document: %w", err)
		}
		if err := insertLines(ctx, tx, doc); err != nil {
			return err
		}
		return applyStockMoves(ctx, tx, doc.CompanyID, moves)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateDocNumber) {
			return err
		}
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}

func insertLines(ctx context.Context, tx *sqlx.Tx, doc *domain.Document) error {
	for i := range doc.Lines {
		l := &doc.Lines[i]
		l.ID = uuid.New()
		l.DocumentID = doc.ID
		l.Position = i + 1
		if _, err := tx.NamedExecContext(ctx, insertLineQuery, l); err != nil {
			return fmt.Errorf("insert line %d: %w", l.Position, err)
		}
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, companyID, docID uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.GetContext(ctx, &doc,
		"SELECT * FROM documents WHERE id = $1 AND company_id = $2", docID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}

	if err := r.db.SelectContext(ctx, &doc.Lines,
		"SELECT * FROM document_lines WHERE document_id = $1 ORDER BY position", doc.ID); err != nil {
		return nil, fmt.Errorf("documentRepo.GetByID lines: %w", err)
	}
	return &doc, nil
}

// buildDocumentWhere constructs the WHERE clause for document listings.
func buildDocumentWhere(companyID uuid.UUID, f *domain.DocumentFilter) (clause string, args []interface{}) {
	args = []interface{}{companyID}
	clause = "WHERE company_id = $1"
	argN := 2

	if f.DocumentType != "" {
		clause += fmt.Sprintf(" AND document_type = $%d", argN)
		args = append(args, f.DocumentType)
		argN++
	}
	if f.PartyID != nil {
		clause += fmt.Sprintf(" AND party_id = $%d", argN)
		args = append(args, *f.PartyID)
		argN++
	}
	if f.Status != "" {
		clause += fmt.Sprintf(" AND payment_status = $%d", argN)
		args = append(args, f.Status)
		argN++
	}
	if f.From != nil {
		clause += fmt.Sprintf(" AND document_date >= $%d", argN)
		args = append(args, *f.From)
		argN++
	}
	if f.To != nil {
		clause += fmt.Sprintf(" AND document_date <= $%d", argN)
		args = append(args, *f.To)
	}
	return clause, args
}

func (r *documentRepo) List(ctx context.Context, companyID uuid.UUID, filter domain.DocumentFilter) ([]domain.Document, int, error) {
	clause, args := buildDocumentWhere(companyID, &filter)

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM documents "+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List count: %w", err)
	}

	query := fmt.Sprintf(`SELECT * FROM documents %s
		ORDER BY document_date DESC, sequence DESC OFFSET %d LIMIT %d`, clause, filter.Offset, filter.Limit)
	var docs []domain.Document
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List: %w", err)
	}
	return docs, total, nil
}

func (r *documentRepo) ListByParty(ctx context.Context, companyID, partyID uuid.UUID) ([]domain.Document, error) {
	var docs []domain.Document
	if err := r.db.SelectContext(ctx, &docs, `SELECT * FROM documents
		WHERE company_id = $1 AND party_id = $2
		ORDER BY document_date, created_at`, companyID, partyID); err != nil {
		return nil, fmt.Errorf("documentRepo.ListByParty: %w", err)
	}
	return docs, nil
}

// lockDocument reads a document and its lines with the header row locked
// until the transaction ends.
func lockDocument(ctx context.Context, tx *sqlx.Tx, companyID, docID uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	err := tx.GetContext(ctx, &doc,
		"SELECT * FROM documents WHERE id = $1 AND company_id = $2 FOR UPDATE", docID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("lock document: %w", err)
	}
	if err := tx.SelectContext(ctx, &doc.Lines,
		"SELECT * FROM document_lines WHERE document_id = $1 ORDER BY position", doc.ID); err != nil {
		return nil, fmt.Errorf("locked lines: %w", err)
	}
	return &doc, nil
}

func (r *documentRepo) Update(ctx context.Context, doc *domain.Document, revise port.ReviseFunc) error {
	doc.UpdatedAt = time.Now().UTC()

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		current, err := lockDocument(ctx, tx, doc.CompanyID, doc.ID)
		if err != nil {
			return err
		}
		var linked int
		if err := tx.GetContext(ctx, &linked,
			"SELECT COUNT(*) FROM payments WHERE document_id = $1", doc.ID); err != nil {
			return fmt.Errorf("count linked payments: %w", err)
		}
		moves, err := revise(current, linked)
		if err != nil {
			return err
		}

		if _, err := tx.NamedExecContext(ctx, updateDocumentQuery, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM document_lines WHERE document_id = $1", doc.ID); err != nil {
			return fmt.Errorf("delete lines: %w", err)
		}
		if err := insertLines(ctx, tx, doc); err != nil {
			return err
		}
		return applyStockMoves(ctx, tx, doc.CompanyID, moves)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) || errors.Is(err, domain.ErrPartyChangeLocked) {
			return err
		}
		return fmt.Errorf("documentRepo.Update: %w", err)
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, companyID, docID uuid.UUID, undo port.UndoFunc) error {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		current, err := lockDocument(ctx, tx, companyID, docID)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM documents WHERE id = $1 AND company_id = $2", docID, companyID); err != nil {
			return fmt.Errorf("delete document: %w", err)
		}
		return applyStockMoves(ctx, tx, companyID, undo(current))
	})
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return err
		}
		return fmt.Errorf("documentRepo.Delete: %w", err)
	}
	return nil
}

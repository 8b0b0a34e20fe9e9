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

type itemRepo struct {
	db *sqlx.DB
}

// NewItemRepo creates a new PostgreSQL-backed ItemRepository.
func NewItemRepo(db *sqlx.DB) port.ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, item *domain.Item) error {
	item.ID = uuid.New()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, `INSERT INTO items
		(id, company_id, name, code, hsn, mrp, selling_price, purchase_price, gst_rate, unit, stock,
		 created_at, updated_at)
		VALUES (:id, :company_id, :name, :code, :hsn, :mrp, :selling_price, :purchase_price, :gst_rate, :unit, :stock,
		 :created_at, :updated_at)`, item)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateItemCode
		}
		return fmt.Errorf("itemRepo.Create: %w", err)
	}
	return nil
}

func (r *itemRepo) GetByID(ctx context.Context, companyID, itemID uuid.UUID) (*domain.Item, error) {
	var item domain.Item
	err := r.db.GetContext(ctx, &item,
		"SELECT * FROM items WHERE id = $1 AND company_id = $2", itemID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("itemRepo.GetByID: %w", err)
	}
	return &item, nil
}

func (r *itemRepo) List(ctx context.Context, companyID uuid.UUID, query string, offset, limit int) ([]domain.Item, int, error) {
	clause := "WHERE company_id = $1"
	args := []interface{}{companyID}
	if query != "" {
		clause += " AND (name ILIKE $2 OR code ILIKE $2 OR hsn ILIKE $2)"
		args = append(args, likePattern(query))
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM items "+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("itemRepo.List count: %w", err)
	}

	var items []domain.Item
	q := fmt.Sprintf("SELECT * FROM items %s ORDER BY name OFFSET %d LIMIT %d", clause, offset, limit)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, 0, fmt.Errorf("itemRepo.List: %w", err)
	}
	return items, total, nil
}

func (r *itemRepo) Update(ctx context.Context, item *domain.Item) error {
	item.UpdatedAt = time.Now().UTC()
	result, err := r.db.NamedExecContext(ctx, `UPDATE items SET
		name = :name, code = :code, hsn = :hsn, mrp = :mrp, selling_price = :selling_price,
		purchase_price = :purchase_price, gst_rate = :gst_rate, unit = :unit, stock = :stock,
		updated_at = :updated_at
		WHERE id = :id AND company_id = :company_id`, item)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateItemCode
		}
		return fmt.Errorf("itemRepo.Update: %w", err)
	}
	if err := requireAffected(result, "itemRepo.Update"); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}
	return nil
}

func (r *itemRepo) Delete(ctx context.Context, companyID, itemID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM items WHERE id = $1 AND company_id = $2", itemID, companyID)
	if err != nil {
		return fmt.Errorf("itemRepo.Delete: %w", err)
	}
	if err := requireAffected(result, "itemRepo.Delete"); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}
	return nil
}

// applyStockMoves adjusts item stock inside an open transaction.
func applyStockMoves(ctx context.Context, tx *sqlx.Tx, companyID uuid.UUID, moves []domain.StockMove) error {
	for _, m := range moves {
		if m.Delta.IsZero() {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			"UPDATE items SET stock = stock + $1, updated_at = $2 WHERE id = $3 AND company_id = $4",
			m.Delta, time.Now().UTC(), m.ItemID, companyID); err != nil {
			return fmt.Errorf("adjusting stock for item %s: %w", m.ItemID, err)
		}
	}
	return nil
}

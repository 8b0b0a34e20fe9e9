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

type partyRepo struct {
	db *sqlx.DB
}

// NewPartyRepo creates a new PostgreSQL-backed PartyRepository.
func NewPartyRepo(db *sqlx.DB) port.PartyRepository {
	return &partyRepo{db: db}
}

func (r *partyRepo) Create(ctx context.Context, party *domain.Party) error {
	party.ID = uuid.New()
	now := time.Now().UTC()
	party.CreatedAt = now
	party.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, `INSERT INTO parties
		(id, company_id, name, party_type, gstin, billing_address, place_of_supply, mobile, email,
		 opening_balance, created_at, updated_at)
		VALUES (:id, :company_id, :name, :party_type, :gstin, :billing_address, :place_of_supply, :mobile, :email,
		 :opening_balance, :created_at, :updated_at)`, party)
	if err != nil {
		return fmt.Errorf("partyRepo.Create: %w", err)
	}
	return nil
}

func (r *partyRepo) GetByID(ctx context.Context, companyID, partyID uuid.UUID) (*domain.Party, error) {
	var party domain.Party
	err := r.db.GetContext(ctx, &party,
		"SELECT * FROM parties WHERE id = $1 AND company_id = $2", partyID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, fmt.Errorf("partyRepo.GetByID: %w", err)
	}
	return &party, nil
}

func (r *partyRepo) List(ctx context.Context, companyID uuid.UUID, filter port.PartyFilter) ([]domain.Party, int, error) {
	clause := "WHERE company_id = $1"
	args := []interface{}{companyID}
	argN := 2
	if filter.Query != "" {
		clause += fmt.Sprintf(" AND (name ILIKE $%d OR gstin ILIKE $%d OR mobile ILIKE $%d)", argN, argN, argN)
		args = append(args, likePattern(filter.Query))
		argN++
	}
	if filter.PartyType != "" {
		// a "both" party shows up under customers and suppliers
		clause += fmt.Sprintf(" AND party_type IN ($%d, 'both')", argN)
		args = append(args, filter.PartyType)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM parties "+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("partyRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM parties %s ORDER BY name OFFSET %d LIMIT %d", clause, filter.Offset, filter.Limit)
	var parties []domain.Party
	if err := r.db.SelectContext(ctx, &parties, query, args...); err != nil {
		return nil, 0, fmt.Errorf("partyRepo.List: %w", err)
	}
	return parties, total, nil
}

func (r *partyRepo) Update(ctx context.Context, party *domain.Party) error {
	party.UpdatedAt = time.Now().UTC()
	result, err := r.db.NamedExecContext(ctx, `UPDATE parties SET
		name = :name, party_type = :party_type, gstin = :gstin, billing_address = :billing_address,
		place_of_supply = :place_of_supply, mobile = :mobile, email = :email,
		opening_balance = :opening_balance, updated_at = :updated_at
		WHERE id = :id AND company_id = :company_id`, party)
	if err != nil {
		return fmt.Errorf("partyRepo.Update: %w", err)
	}
	if err := requireAffected(result, "partyRepo.Update"); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrPartyNotFound
		}
		return err
	}
	return nil
}

func (r *partyRepo) Delete(ctx context.Context, companyID, partyID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM parties WHERE id = $1 AND company_id = $2", partyID, companyID)
	if err != nil {
		return fmt.Errorf("partyRepo.Delete: %w", err)
	}
	if err := requireAffected(result, "partyRepo.Delete"); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrPartyNotFound
		}
		return err
	}
	return nil
}

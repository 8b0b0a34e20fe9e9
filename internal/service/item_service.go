package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"billbook/internal/domain"
	"billbook/internal/port"
	"billbook/internal/totals"
)

// ItemInput is the DTO for creating or updating an item. Prices and stock
// accept numbers or strings such as "1,250.50".
type ItemInput struct {
	Name          string        `json:"name" binding:"required"`
	Code          string        `json:"code"`
	HSN           string        `json:"hsn"`
	MRP           totals.Number `json:"mrp"`
	SellingPrice  totals.Number `json:"selling_price"`
	PurchasePrice totals.Number `json:"purchase_price"`
	GSTRate       string        `json:"gst_rate"`
	Unit          string        `json:"unit"`
	Stock         totals.Number `json:"stock"`
}

// ItemService defines the item master contract.
type ItemService interface {
	Create(ctx context.Context, companyID uuid.UUID, input ItemInput) (*domain.Item, error)
	GetByID(ctx context.Context, companyID, itemID uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, companyID uuid.UUID, query string, offset, limit int) ([]domain.Item, int, error)
	Update(ctx context.Context, companyID, itemID uuid.UUID, input ItemInput) (*domain.Item, error)
	Delete(ctx context.Context, companyID, itemID uuid.UUID) error
}

type itemService struct {
	itemRepo port.ItemRepository
}

// NewItemService creates a new ItemService implementation.
func NewItemService(itemRepo port.ItemRepository) ItemService {
	return &itemService{itemRepo: itemRepo}
}

func (s *itemService) Create(ctx context.Context, companyID uuid.UUID, input ItemInput) (*domain.Item, error) {
	item := &domain.Item{CompanyID: companyID, Stock: input.Stock.Decimal}
	if err := applyItemInput(item, input); err != nil {
		return nil, err
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	log.Info().Str("item_id", item.ID.String()).Str("name", item.Name).Msg("itemService.Create: item created")
	return item, nil
}

func (s *itemService) GetByID(ctx context.Context, companyID, itemID uuid.UUID) (*domain.Item, error) {
	return s.itemRepo.GetByID(ctx, companyID, itemID)
}

func (s *itemService) List(ctx context.Context, companyID uuid.UUID, query string, offset, limit int) ([]domain.Item, int, error) {
	return s.itemRepo.List(ctx, companyID, strings.TrimSpace(query), offset, limit)
}

// Update edits the item master. Stock is only changed by documents, so the
// stock field of input is ignored here.
func (s *itemService) Update(ctx context.Context, companyID, itemID uuid.UUID, input ItemInput) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, companyID, itemID)
	if err != nil {
		return nil, err
	}
	if err := applyItemInput(item, input); err != nil {
		return nil, err
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Delete(ctx context.Context, companyID, itemID uuid.UUID) error {
	if err := s.itemRepo.Delete(ctx, companyID, itemID); err != nil {
		return err
	}
	log.Info().Str("item_id", itemID.String()).Msg("itemService.Delete: item deleted")
	return nil
}

func applyItemInput(item *domain.Item, input ItemInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		verr := &domain.ValidationError{}
		verr.Add("name", "item name is required")
		return verr
	}
	item.Name = name
	item.Code = strings.TrimSpace(input.Code)
	item.HSN = strings.TrimSpace(input.HSN)
	item.MRP = input.MRP.Decimal
	item.SellingPrice = input.SellingPrice.Decimal
	item.PurchasePrice = input.PurchasePrice.Decimal
	item.GSTRate = strings.TrimSpace(input.GSTRate)
	item.Unit = strings.TrimSpace(input.Unit)
	return nil
}

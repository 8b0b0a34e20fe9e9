package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"billbook/internal/domain"
	"billbook/internal/port"
	"billbook/internal/validator"
)

// PartyInput is the DTO for creating or updating a customer or supplier.
type PartyInput struct {
	Name           string           `json:"name" binding:"required"`
	PartyType      domain.PartyType `json:"party_type"`
	GSTIN          string           `json:"gstin" binding:"omitempty,gstin"`
	BillingAddress string           `json:"billing_address"`
	PlaceOfSupply  string           `json:"place_of_supply"`
	Mobile         string           `json:"mobile" binding:"omitempty,mobile"`
	Email          string           `json:"email" binding:"omitempty,email"`
	// OpeningBalance is positive when the party owes the company.
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// PartyService defines the party management contract.
type PartyService interface {
	Create(ctx context.Context, companyID uuid.UUID, input PartyInput) (*domain.Party, error)
	GetByID(ctx context.Context, companyID, partyID uuid.UUID) (*domain.Party, error)
	List(ctx context.Context, companyID uuid.UUID, filter port.PartyFilter) ([]domain.Party, int, error)
	Update(ctx context.Context, companyID, partyID uuid.UUID, input PartyInput) (*domain.Party, error)
	Delete(ctx context.Context, companyID, partyID uuid.UUID) error
}

type partyService struct {
	partyRepo port.PartyRepository
}

// NewPartyService creates a new PartyService implementation.
func NewPartyService(partyRepo port.PartyRepository) PartyService {
	return &partyService{partyRepo: partyRepo}
}

func (s *partyService) Create(ctx context.Context, companyID uuid.UUID, input PartyInput) (*domain.Party, error) {
	party := &domain.Party{CompanyID: companyID}
	if err := applyPartyInput(party, input); err != nil {
		return nil, err
	}
	if err := s.partyRepo.Create(ctx, party); err != nil {
		return nil, err
	}
	log.Info().Str("party_id", party.ID.String()).Str("name", party.Name).Msg("partyService.Create: party created")
	return party, nil
}

func (s *partyService) GetByID(ctx context.Context, companyID, partyID uuid.UUID) (*domain.Party, error) {
	return s.partyRepo.GetByID(ctx, companyID, partyID)
}

func (s *partyService) List(ctx context.Context, companyID uuid.UUID, filter port.PartyFilter) ([]domain.Party, int, error) {
	return s.partyRepo.List(ctx, companyID, filter)
}

func (s *partyService) Update(ctx context.Context, companyID, partyID uuid.UUID, input PartyInput) (*domain.Party, error) {
	party, err := s.partyRepo.GetByID(ctx, companyID, partyID)
	if err != nil {
		return nil, err
	}
	if err := applyPartyInput(party, input); err != nil {
		return nil, err
	}
	if err := s.partyRepo.Update(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}

func (s *partyService) Delete(ctx context.Context, companyID, partyID uuid.UUID) error {
	if err := s.partyRepo.Delete(ctx, companyID, partyID); err != nil {
		return err
	}
	log.Info().Str("party_id", partyID.String()).Msg("partyService.Delete: party deleted")
	return nil
}

// applyPartyInput normalises and validates input onto party. Place of supply
// falls back to the state encoded in the GSTIN.
func applyPartyInput(party *domain.Party, input PartyInput) error {
	verr := &domain.ValidationError{}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		verr.Add("name", "party name is required")
	}

	partyType := input.PartyType
	if partyType == "" {
		partyType = domain.PartyTypeCustomer
	}
	switch partyType {
	case domain.PartyTypeCustomer, domain.PartyTypeSupplier, domain.PartyTypeBoth:
	default:
		verr.Add("party_type", "must be customer, supplier or both")
	}

	gstin := strings.ToUpper(strings.TrimSpace(input.GSTIN))
	if gstin != "" && !validator.ValidGSTIN(gstin) {
		verr.Add("gstin", "invalid GSTIN")
	}
	mobile := strings.TrimSpace(input.Mobile)
	if mobile != "" && !validator.ValidMobile(mobile) {
		verr.Add("mobile", "enter a valid 10-digit mobile number")
	}

	if err := verr.OrNil(); err != nil {
		return err
	}

	placeOfSupply := strings.TrimSpace(input.PlaceOfSupply)
	if placeOfSupply == "" && gstin != "" {
		placeOfSupply = validator.StateFromGSTIN(gstin)
	}

	party.Name = name
	party.PartyType = partyType
	party.GSTIN = gstin
	party.BillingAddress = strings.TrimSpace(input.BillingAddress)
	party.PlaceOfSupply = placeOfSupply
	party.Mobile = mobile
	party.Email = strings.TrimSpace(input.Email)
	party.OpeningBalance = input.OpeningBalance
	return nil
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"billbook/internal/domain"
	"billbook/internal/port"
	"billbook/internal/totals"
)

// PaymentInput is the DTO for recording money received or paid.
type PaymentInput struct {
	Direction   domain.PaymentDirection `json:"direction" binding:"required"`
	PartyID     uuid.UUID               `json:"party_id" binding:"required"`
	DocumentID  *uuid.UUID              `json:"document_id"`
	Amount      totals.Number           `json:"amount"`
	Mode        domain.PaymentMode      `json:"mode" binding:"required"`
	Reference   string                  `json:"reference"`
	PaymentDate *time.Time              `json:"payment_date"`
	Notes       string                  `json:"notes"`
}

// PaymentService defines the payment contract.
type PaymentService interface {
	Create(ctx context.Context, session domain.Session, input PaymentInput) (*domain.Payment, error)
	GetByID(ctx context.Context, companyID, paymentID uuid.UUID) (*domain.Payment, error)
	List(ctx context.Context, companyID uuid.UUID, filter port.PaymentFilter) ([]domain.Payment, int, error)
	Delete(ctx context.Context, companyID, paymentID uuid.UUID) error
}

type paymentService struct {
	paymentRepo port.PaymentRepository
	partyRepo   port.PartyRepository
}

// NewPaymentService creates a new PaymentService implementation.
func NewPaymentService(paymentRepo port.PaymentRepository, partyRepo port.PartyRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, partyRepo: partyRepo}
}

func (s *paymentService) Create(ctx context.Context, session domain.Session, input PaymentInput) (*domain.Payment, error) {
	verr := &domain.ValidationError{}
	if input.Direction != domain.PaymentIn && input.Direction != domain.PaymentOut {
		verr.Add("direction", "must be in or out")
	}
	if !input.Amount.IsPositive() {
		verr.Add("amount", "amount must be greater than zero")
	}
	if !domain.ValidPaymentModes[input.Mode] {
		verr.Add("mode", "must be cash, bank, upi or cheque")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if _, err := s.partyRepo.GetByID(ctx, session.CompanyID, input.PartyID); err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		CompanyID:   session.CompanyID,
		Direction:   input.Direction,
		PartyID:     input.PartyID,
		DocumentID:  input.DocumentID,
		Amount:      input.Amount.Decimal,
		Mode:        input.Mode,
		Reference:   input.Reference,
		PaymentDate: time.Now().UTC().Truncate(24 * time.Hour),
		Notes:       input.Notes,
		CreatedBy:   session.UserID,
	}
	if input.PaymentDate != nil {
		payment.PaymentDate = *input.PaymentDate
	}

	if err := s.paymentRepo.Create(ctx, payment, applyPayment(payment, 1)); err != nil {
		return nil, err
	}

	log.Info().
		Str("payment_id", payment.ID.String()).
		Str("direction", string(payment.Direction)).
		Str("amount", payment.Amount.String()).
		Msg("paymentService.Create: payment recorded")
	return payment, nil
}

func (s *paymentService) GetByID(ctx context.Context, companyID, paymentID uuid.UUID) (*domain.Payment, error) {
	return s.paymentRepo.GetByID(ctx, companyID, paymentID)
}

func (s *paymentService) List(ctx context.Context, companyID uuid.UUID, filter port.PaymentFilter) ([]domain.Payment, int, error) {
	return s.paymentRepo.List(ctx, companyID, filter)
}

// Delete removes a payment and takes it back off the invoice it settled.
func (s *paymentService) Delete(ctx context.Context, companyID, paymentID uuid.UUID) error {
	payment, err := s.paymentRepo.GetByID(ctx, companyID, paymentID)
	if err != nil {
		return err
	}
	if err := s.paymentRepo.Delete(ctx, companyID, paymentID, applyPayment(payment, -1)); err != nil {
		return err
	}
	log.Info().Str("payment_id", paymentID.String()).Msg("paymentService.Delete: payment reversed")
	return nil
}

// applyPayment returns the settle func that adds (sign 1) or removes
// (sign -1) the payment from a locked invoice.
func applyPayment(payment *domain.Payment, sign int64) port.SettleFunc {
	return func(doc *domain.Document) error {
		if sign > 0 && !settles(payment, doc) {
			return domain.ErrPaymentMismatch
		}
		delta := payment.Amount
		if sign < 0 {
			delta = delta.Neg()
		}
		doc.AmountReceived = doc.AmountReceived.Add(delta)
		doc.BalanceDue = doc.RoundedTotal.Sub(doc.AmountReceived)
		status := totals.DeriveStatus(doc.BalanceDue, doc.RoundedTotal)
		doc.PaymentStatus = &status
		return nil
	}
}

// settles reports whether payment may be applied to doc: only invoices of the
// same party, with money flowing the invoice's way.
func settles(payment *domain.Payment, doc *domain.Document) bool {
	return doc.DocumentType.IsInvoice() &&
		doc.PartyID == payment.PartyID &&
		doc.DocumentType.PaymentDirection() == payment.Direction
}

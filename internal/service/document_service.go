package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"billbook/internal/config"
	"billbook/internal/domain"
	"billbook/internal/port"
	"billbook/internal/totals"
	"billbook/internal/validator"
)

// DocumentLineInput is one line as entered on the document form. When ItemID
// is set, blank descriptive fields are filled from the item master.
type DocumentLineInput struct {
	ItemID          *uuid.UUID    `json:"item_id"`
	Name            string        `json:"name"`
	HSN             string        `json:"hsn"`
	Unit            string        `json:"unit"`
	Quantity        totals.Number `json:"quantity"`
	UnitRate        totals.Number `json:"unit_rate"`
	DiscountPercent totals.Number `json:"discount_percent"`
	TaxRateLabel    string        `json:"tax_rate_label"`
}

// DocumentInput is the DTO for previewing, creating and updating documents.
type DocumentInput struct {
	DocumentType        domain.DocumentType `json:"document_type"`
	DocumentDate        *time.Time          `json:"document_date"`
	DueDate             *time.Time          `json:"due_date"`
	PartyID             uuid.UUID           `json:"party_id"`
	PlaceOfSupply       string              `json:"place_of_supply"`
	OriginalDocumentID  *uuid.UUID          `json:"original_document_id"`
	Lines               []DocumentLineInput `json:"lines"`
	AdditionalCharges   totals.Number       `json:"additional_charges"`
	OverallDiscount     totals.Number       `json:"overall_discount"`
	OverallDiscountType domain.DiscountType `json:"overall_discount_type"`
	// AutoRoundOff falls back to the configured default when omitted.
	AutoRoundOff   *bool         `json:"auto_round_off"`
	AmountReceived totals.Number `json:"amount_received"`
	Notes          string        `json:"notes"`
}

// DocumentService defines the billing document contract.
type DocumentService interface {
	Preview(ctx context.Context, session domain.Session, input DocumentInput) (*totals.Result, error)
	Create(ctx context.Context, session domain.Session, input DocumentInput) (*domain.Document, error)
	GetByID(ctx context.Context, companyID, docID uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, companyID uuid.UUID, filter domain.DocumentFilter) ([]domain.Document, int, error)
	Update(ctx context.Context, session domain.Session, docID uuid.UUID, input DocumentInput) (*domain.Document, error)
	Delete(ctx context.Context, companyID, docID uuid.UUID) error
	Email(ctx context.Context, companyID, docID uuid.UUID) error
}

type documentService struct {
	docRepo     port.DocumentRepository
	partyRepo   port.PartyRepository
	itemRepo    port.ItemRepository
	companyRepo port.CompanyRepository
	sender      port.EmailSender
	rules       *validator.Registry
	billing     config.BillingConfig
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	docRepo port.DocumentRepository,
	partyRepo port.PartyRepository,
	itemRepo port.ItemRepository,
	companyRepo port.CompanyRepository,
	sender port.EmailSender,
	rules *validator.Registry,
	billing config.BillingConfig,
) DocumentService {
	return &documentService{
		docRepo:     docRepo,
		partyRepo:   partyRepo,
		itemRepo:    itemRepo,
		companyRepo: companyRepo,
		sender:      sender,
		rules:       rules,
		billing:     billing,
	}
}

// Preview runs the totals engine without persisting anything. A missing or
// unknown party is tolerated; the form may still be half filled.
func (s *documentService) Preview(ctx context.Context, session domain.Session, input DocumentInput) (*totals.Result, error) {
	placeOfSupply := strings.TrimSpace(input.PlaceOfSupply)
	if placeOfSupply == "" && input.PartyID != uuid.Nil {
		party, err := s.partyRepo.GetByID(ctx, session.CompanyID, input.PartyID)
		switch {
		case err == nil:
			placeOfSupply = party.PlaceOfSupply
		case !errors.Is(err, domain.ErrPartyNotFound):
			return nil, err
		}
	}
	res := totals.Calculate(s.engineInput(input, placeOfSupply, session.HomeState), totals.PolicyFor(input.DocumentType))
	return &res, nil
}

func (s *documentService) Create(ctx context.Context, session domain.Session, input DocumentInput) (*domain.Document, error) {
	if !domain.ValidDocumentTypes[input.DocumentType] {
		return nil, domain.ErrInvalidDocumentType
	}

	doc := &domain.Document{
		CompanyID:    session.CompanyID,
		DocumentType: input.DocumentType,
		CreatedBy:    session.UserID,
	}
	if err := s.build(ctx, session, doc, input, input.AmountReceived.Decimal); err != nil {
		return nil, err
	}

	moves := stockMoves(doc.DocumentType, doc.Lines, 1)
	if err := s.docRepo.Create(ctx, doc, s.billing.Prefix(doc.DocumentType), moves); err != nil {
		return nil, err
	}

	log.Info().
		Str("document_id", doc.ID.String()).
		Str("number", doc.DocumentNumber).
		Str("type", string(doc.DocumentType)).
		Str("total", doc.RoundedTotal.String()).
		Msg("documentService.Create: document created")
	return doc, nil
}

func (s *documentService) GetByID(ctx context.Context, companyID, docID uuid.UUID) (*domain.Document, error) {
	return s.docRepo.GetByID(ctx, companyID, docID)
}

func (s *documentService) List(ctx context.Context, companyID uuid.UUID, filter domain.DocumentFilter) ([]domain.Document, int, error) {
	if filter.DocumentType != "" && !domain.ValidDocumentTypes[filter.DocumentType] {
		return nil, 0, domain.ErrInvalidDocumentType
	}
	return s.docRepo.List(ctx, companyID, filter)
}

// Update recalculates a document from the submitted form. The document type
// and number never change. Balance and status are settled against the amount
// received on the locked stored row, so a payment committed meanwhile is kept.
// The party cannot change once payments are linked.
func (s *documentService) Update(ctx context.Context, session domain.Session, docID uuid.UUID, input DocumentInput) (*domain.Document, error) {
	existing, err := s.docRepo.GetByID(ctx, session.CompanyID, docID)
	if err != nil {
		return nil, err
	}

	doc := &domain.Document{
		ID:             existing.ID,
		CompanyID:      existing.CompanyID,
		DocumentType:   existing.DocumentType,
		DocumentNumber: existing.DocumentNumber,
		Sequence:       existing.Sequence,
		CreatedBy:      existing.CreatedBy,
		CreatedAt:      existing.CreatedAt,
	}
	input.DocumentType = existing.DocumentType
	if err := s.build(ctx, session, doc, input, decimal.Zero); err != nil {
		return nil, err
	}

	revise := func(current *domain.Document, linkedPayments int) ([]domain.StockMove, error) {
		if linkedPayments > 0 && current.PartyID != doc.PartyID {
			return nil, domain.ErrPartyChangeLocked
		}
		carryReceived(doc, current.AmountReceived)
		return mergeMoves(
			stockMoves(current.DocumentType, current.Lines, -1),
			stockMoves(doc.DocumentType, doc.Lines, 1),
		), nil
	}
	if err := s.docRepo.Update(ctx, doc, revise); err != nil {
		return nil, err
	}

	log.Info().
		Str("document_id", doc.ID.String()).
		Str("total", doc.RoundedTotal.String()).
		Str("received", doc.AmountReceived.String()).
		Msg("documentService.Update: document updated")
	return doc, nil
}

func (s *documentService) Delete(ctx context.Context, companyID, docID uuid.UUID) error {
	var number string
	undo := func(current *domain.Document) []domain.StockMove {
		number = current.DocumentNumber
		return stockMoves(current.DocumentType, current.Lines, -1)
	}
	if err := s.docRepo.Delete(ctx, companyID, docID, undo); err != nil {
		return err
	}
	log.Info().Str("document_id", docID.String()).Str("number", number).Msg("documentService.Delete: document deleted")
	return nil
}

// Email sends the document summary to the party's email address.
func (s *documentService) Email(ctx context.Context, companyID, docID uuid.UUID) error {
	doc, err := s.docRepo.GetByID(ctx, companyID, docID)
	if err != nil {
		return err
	}
	party, err := s.partyRepo.GetByID(ctx, companyID, doc.PartyID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(party.Email) == "" {
		return domain.ErrPartyEmailMissing
	}
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}

	summary := domain.DocumentSummary{
		CompanyName:    company.Name,
		DocumentType:   doc.DocumentType,
		DocumentNumber: doc.DocumentNumber,
		DocumentDate:   doc.DocumentDate,
		LineCount:      len(doc.Lines),
		TaxableAmount:  doc.TaxableAmount,
		TaxAmount:      doc.TaxAmountTotal,
		RoundedTotal:   doc.RoundedTotal,
		BalanceDue:     doc.BalanceDue,
	}
	if doc.PaymentStatus != nil {
		summary.Status = *doc.PaymentStatus
	}

	if err := s.sender.SendDocumentSummary(ctx, party.Email, party.Name, summary); err != nil {
		log.Error().Err(err).Str("document_id", doc.ID.String()).Msg("documentService.Email: send failed")
		return fmt.Errorf("sending document email: %w", err)
	}
	log.Info().Str("document_id", doc.ID.String()).Str("to", party.Email).Msg("documentService.Email: summary sent")
	return nil
}

// build validates input, runs the engine and fills doc with the header,
// lines and every derived total.
func (s *documentService) build(ctx context.Context, session domain.Session, doc *domain.Document, input DocumentInput, received decimal.Decimal) error {
	var party *domain.Party
	if input.PartyID != uuid.Nil {
		p, err := s.partyRepo.GetByID(ctx, session.CompanyID, input.PartyID)
		switch {
		case err == nil:
			party = p
		case !errors.Is(err, domain.ErrPartyNotFound):
			return err
		}
	}

	if err := s.resolveItems(ctx, session.CompanyID, input.Lines); err != nil {
		return err
	}

	draft := &validator.Draft{
		DocumentType: doc.DocumentType,
		PartyID:      input.PartyID,
		Party:        party,
		Lines:        make([]validator.DraftLine, len(input.Lines)),
	}
	for i, l := range input.Lines {
		draft.Lines[i] = validator.DraftLine{Name: l.Name, Quantity: l.Quantity.Decimal, UnitRate: l.UnitRate.Decimal}
	}
	if err := s.rules.Check(ctx, draft); err != nil {
		return err
	}
	if party == nil {
		return domain.ErrPartyNotFound
	}

	if input.OriginalDocumentID != nil {
		if _, err := s.docRepo.GetByID(ctx, session.CompanyID, *input.OriginalDocumentID); err != nil {
			return err
		}
	}

	placeOfSupply := strings.TrimSpace(input.PlaceOfSupply)
	if placeOfSupply == "" {
		placeOfSupply = party.PlaceOfSupply
	}

	engineIn := s.engineInput(input, placeOfSupply, session.HomeState)
	engineIn.AmountReceived = totals.Number{Decimal: received}
	res := totals.Calculate(engineIn, totals.PolicyFor(doc.DocumentType))

	doc.DocumentDate = time.Now().UTC().Truncate(24 * time.Hour)
	if input.DocumentDate != nil {
		doc.DocumentDate = *input.DocumentDate
	}
	doc.DueDate = input.DueDate
	doc.PartyID = party.ID
	doc.PartyName = party.Name
	doc.PartyGSTIN = party.GSTIN
	doc.PlaceOfSupply = placeOfSupply
	doc.OriginalDocumentID = input.OriginalDocumentID
	doc.AdditionalCharges = res.AdditionalCharges
	doc.OverallDiscount = engineIn.OverallDiscount.Decimal
	doc.OverallDiscountType = engineIn.OverallDiscountType
	doc.AutoRoundOff = engineIn.AutoRoundOff
	doc.Notes = strings.TrimSpace(input.Notes)
	applyResult(doc, res)

	doc.Lines = make([]domain.DocumentLine, len(input.Lines))
	for i, l := range input.Lines {
		r := res.Lines[i]
		doc.Lines[i] = domain.DocumentLine{
			ItemID:          l.ItemID,
			Name:            strings.TrimSpace(l.Name),
			HSN:             l.HSN,
			Unit:            l.Unit,
			Quantity:        l.Quantity.Decimal,
			UnitRate:        l.UnitRate.Decimal,
			DiscountPercent: l.DiscountPercent.Decimal,
			TaxRateLabel:    l.TaxRateLabel,
			BaseAmount:      r.BaseAmount,
			DiscountAmount:  r.DiscountAmount,
			TaxableAmount:   r.TaxableAmount,
			TaxPercent:      r.TaxPercent,
			TaxAmount:       r.TaxAmount,
			LineTotal:       r.LineTotal,
		}
	}
	return nil
}

// resolveItems fills blank line fields from the linked item master entries.
func (s *documentService) resolveItems(ctx context.Context, companyID uuid.UUID, lines []DocumentLineInput) error {
	for i := range lines {
		l := &lines[i]
		if l.ItemID == nil {
			continue
		}
		item, err := s.itemRepo.GetByID(ctx, companyID, *l.ItemID)
		if err != nil {
			return err
		}
		if strings.TrimSpace(l.Name) == "" {
			l.Name = item.Name
		}
		if l.HSN == "" {
			l.HSN = item.HSN
		}
		if l.Unit == "" {
			l.Unit = item.Unit
		}
		if l.TaxRateLabel == "" {
			l.TaxRateLabel = item.GSTRate
		}
	}
	return nil
}

func (s *documentService) engineInput(input DocumentInput, placeOfSupply, homeState string) totals.DocumentInput {
	in := totals.DocumentInput{
		Items:               make([]totals.LineInput, len(input.Lines)),
		AdditionalCharges:   input.AdditionalCharges,
		OverallDiscount:     input.OverallDiscount,
		OverallDiscountType: input.OverallDiscountType,
		AutoRoundOff:        s.billing.DefaultRoundOff,
		Jurisdiction:        placeOfSupply,
		HomeJurisdiction:    homeState,
		AmountReceived:      input.AmountReceived,
	}
	if in.OverallDiscountType != domain.DiscountFixed {
		in.OverallDiscountType = domain.DiscountPercentage
	}
	if input.AutoRoundOff != nil {
		in.AutoRoundOff = *input.AutoRoundOff
	}
	for i, l := range input.Lines {
		in.Items[i] = totals.LineInput{
			Quantity:        l.Quantity,
			UnitRate:        l.UnitRate,
			DiscountPercent: l.DiscountPercent,
			TaxRateLabel:    l.TaxRateLabel,
		}
	}
	return in
}

// applyResult copies engine output onto the stored document. Only invoices
// carry a payment status.
func applyResult(doc *domain.Document, res totals.Result) {
	doc.Subtotal = res.Subtotal
	doc.ItemDiscountTotal = res.ItemDiscountTotal
	doc.TaxableAfterItemDiscount = res.TaxableAfterItemDiscount
	doc.OverallDiscountValue = res.OverallDiscountValue
	doc.TaxableAmount = res.TaxableAmount
	doc.TaxAmountTotal = res.TaxAmountTotal
	doc.CGST = res.CGST
	doc.SGST = res.SGST
	doc.IGST = res.IGST
	doc.TotalBeforeRound = res.TotalBeforeRound
	doc.RoundedTotal = res.RoundedTotal
	doc.RoundOffDelta = res.RoundOffDelta
	doc.AmountReceived = res.AmountReceived
	doc.BalanceDue = res.BalanceDue
	doc.PaymentStatus = nil
	if res.Status != "" {
		status := res.Status
		doc.PaymentStatus = &status
	}
}

// carryReceived settles a freshly calculated document against the amount
// already received on it.
func carryReceived(doc *domain.Document, received decimal.Decimal) {
	doc.AmountReceived = received
	doc.BalanceDue = doc.RoundedTotal.Sub(received)
	if doc.PaymentStatus != nil {
		status := totals.DeriveStatus(doc.BalanceDue, doc.RoundedTotal)
		doc.PaymentStatus = &status
	}
}

// stockMoves converts item-linked lines into stock deltas. sign is -1 to
// undo what the lines did.
func stockMoves(t domain.DocumentType, lines []domain.DocumentLine, sign int) []domain.StockMove {
	dir := t.StockDirection() * sign
	if dir == 0 {
		return nil
	}
	factor := decimal.NewFromInt(int64(dir))
	var moves []domain.StockMove
	for _, l := range lines {
		if l.ItemID == nil || l.Quantity.IsZero() {
			continue
		}
		moves = append(moves, domain.StockMove{ItemID: *l.ItemID, Delta: l.Quantity.Mul(factor)})
	}
	return mergeMoves(moves)
}

// mergeMoves nets moves per item, keeping first-seen order and dropping
// items whose deltas cancel out.
func mergeMoves(groups ...[]domain.StockMove) []domain.StockMove {
	deltas := make(map[uuid.UUID]decimal.Decimal)
	var order []uuid.UUID
	for _, g := range groups {
		for _, m := range g {
			if _, ok := deltas[m.ItemID]; !ok {
				order = append(order, m.ItemID)
			}
			deltas[m.ItemID] = deltas[m.ItemID].Add(m.Delta)
		}
	}
	var out []domain.StockMove
	for _, id := range order {
		if d := deltas[id]; !d.IsZero() {
			out = append(out, domain.StockMove{ItemID: id, Delta: d})
		}
	}
	return out
}

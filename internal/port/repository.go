package port

import (
	"context"

	"github.com/google/uuid"

	"billbook/internal/domain"
)

// CompanyRepository defines the contract for company persistence.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
}

// UserRepository defines the contract for user persistence.
// All query methods include companyID to keep companies isolated.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, companyID, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, companyID uuid.UUID, email string) (*domain.User, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]domain.User, int, error)
}

// PartyFilter narrows party listings.
type PartyFilter struct {
	Query     string
	PartyType domain.PartyType
	Offset    int
	Limit     int
}

// PartyRepository defines the contract for customer and supplier persistence.
type PartyRepository interface {
	Create(ctx context.Context, party *domain.Party) error
	GetByID(ctx context.Context, companyID, partyID uuid.UUID) (*domain.Party, error)
	List(ctx context.Context, companyID uuid.UUID, filter PartyFilter) ([]domain.Party, int, error)
	Update(ctx context.Context, party *domain.Party) error
	Delete(ctx context.Context, companyID, partyID uuid.UUID) error
}

// ItemRepository defines the contract for item master persistence.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, companyID, itemID uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, companyID uuid.UUID, query string, offset, limit int) ([]domain.Item, int, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, companyID, itemID uuid.UUID) error
}

// DocumentRepository persists documents with their lines. Every write runs in
// one transaction together with the stock moves it is given.
type DocumentRepository interface {
	// Create assigns the next sequence for the company and type and formats the
	// document number as "<prefix>-<sequence>".
	Create(ctx context.Context, doc *domain.Document, prefix string, moves []domain.StockMove) error
	GetByID(ctx context.Context, companyID, docID uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, companyID uuid.UUID, filter domain.DocumentFilter) ([]domain.Document, int, error)
	ListByParty(ctx context.Context, companyID, partyID uuid.UUID) ([]domain.Document, error)
	// Update locks the stored document, lets revise finish doc against it,
	// then replaces the header totals and all lines. The received amount is
	// owned by payments and never written here.
	Update(ctx context.Context, doc *domain.Document, revise ReviseFunc) error
	// Delete locks the stored document and removes it, applying the stock
	// moves undo derives from its lines.
	Delete(ctx context.Context, companyID, docID uuid.UUID, undo UndoFunc) error
}

// ReviseFunc sees the locked stored document and the number of payments
// linked to it. It completes the replacement and returns the stock moves to
// apply. Returning an error aborts the surrounding transaction.
type ReviseFunc func(current *domain.Document, linkedPayments int) ([]domain.StockMove, error)

// UndoFunc returns the stock moves that reverse a locked stored document.
type UndoFunc func(current *domain.Document) []domain.StockMove

// PaymentFilter narrows payment listings.
type PaymentFilter struct {
	PartyID    *uuid.UUID
	DocumentID *uuid.UUID
	Direction  domain.PaymentDirection
	Offset     int
	Limit      int
}

// SettleFunc updates a locked document's received amount, balance and status.
// Returning an error aborts the surrounding transaction.
type SettleFunc func(doc *domain.Document) error

// PaymentRepository persists payments. When a payment is linked to a
// document, the document row is locked and settle is applied before commit.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment, settle SettleFunc) error
	GetByID(ctx context.Context, companyID, paymentID uuid.UUID) (*domain.Payment, error)
	List(ctx context.Context, companyID uuid.UUID, filter PaymentFilter) ([]domain.Payment, int, error)
	ListByParty(ctx context.Context, companyID, partyID uuid.UUID) ([]domain.Payment, error)
	Delete(ctx context.Context, companyID, paymentID uuid.UUID, settle SettleFunc) error
}

// ReportRepository aggregates stored totals.
type ReportRepository interface {
	DocumentTotals(ctx context.Context, companyID uuid.UUID, period domain.PeriodFilter) ([]domain.DocumentTypeTotals, error)
	PaymentTotals(ctx context.Context, companyID uuid.UUID, period domain.PeriodFilter) ([]domain.PaymentTotals, error)
}

// AttachmentRepository defines the contract for attachment metadata.
type AttachmentRepository interface {
	Create(ctx context.Context, att *domain.Attachment) error
	GetByID(ctx context.Context, companyID, attachmentID uuid.UUID) (*domain.Attachment, error)
	ListByDocument(ctx context.Context, companyID, docID uuid.UUID) ([]domain.Attachment, error)
	UpdateStatus(ctx context.Context, companyID, attachmentID uuid.UUID, status domain.FileStatus) error
	Delete(ctx context.Context, companyID, attachmentID uuid.UUID) error
}

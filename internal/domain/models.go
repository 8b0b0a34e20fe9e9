package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Company is the business issuing documents. Every other record belongs to one.
type Company struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	HomeState string    `db:"home_state" json:"home_state"`
	StateCode string    `db:"state_code" json:"state_code"`
	Address   string    `db:"address" json:"address"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User is an authenticated user belonging to a company.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CompanyID    uuid.UUID `db:"company_id" json:"company_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Session is the per-request view of who is calling, resolved once from the
// access token.
type Session struct {
	CompanyID uuid.UUID
	UserID    uuid.UUID
	Email     string
	Role      UserRole
	HomeState string
}

// Party is a customer or supplier.
type Party struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	CompanyID      uuid.UUID       `db:"company_id" json:"company_id"`
	Name           string          `db:"name" json:"name"`
	PartyType      PartyType       `db:"party_type" json:"party_type"`
	GSTIN          string          `db:"gstin" json:"gstin"`
	BillingAddress string          `db:"billing_address" json:"billing_address"`
	PlaceOfSupply  string          `db:"place_of_supply" json:"place_of_supply"`
	Mobile         string          `db:"mobile" json:"mobile"`
	Email          string          `db:"email" json:"email"`
	OpeningBalance decimal.Decimal `db:"opening_balance" json:"opening_balance"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// Item is a product or service that can be placed on a document line.
type Item struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	CompanyID     uuid.UUID       `db:"company_id" json:"company_id"`
	Name          string          `db:"name" json:"name"`
	Code          string          `db:"code" json:"code"`
	HSN           string          `db:"hsn" json:"hsn"`
	MRP           decimal.Decimal `db:"mrp" json:"mrp"`
	SellingPrice  decimal.Decimal `db:"selling_price" json:"selling_price"`
	PurchasePrice decimal.Decimal `db:"purchase_price" json:"purchase_price"`
	GSTRate       string          `db:"gst_rate" json:"gst_rate"`
	Unit          string          `db:"unit" json:"unit"`
	Stock         decimal.Decimal `db:"stock" json:"stock"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// Document is an invoice, note or return together with the totals that were
// calculated for it at save time.
type Document struct {
	ID                       uuid.UUID       `db:"id" json:"id"`
	CompanyID                uuid.UUID       `db:"company_id" json:"company_id"`
	DocumentType             DocumentType    `db:"document_type" json:"document_type"`
	DocumentNumber           string          `db:"document_number" json:"document_number"`
	Sequence                 int             `db:"sequence" json:"-"`
	DocumentDate             time.Time       `db:"document_date" json:"document_date"`
	DueDate                  *time.Time      `db:"due_date" json:"due_date"`
	PartyID                  uuid.UUID       `db:"party_id" json:"party_id"`
	PartyName                string          `db:"party_name" json:"party_name"`
	PartyGSTIN               string          `db:"party_gstin" json:"party_gstin"`
	PlaceOfSupply            string          `db:"place_of_supply" json:"place_of_supply"`
	OriginalDocumentID       *uuid.UUID      `db:"original_document_id" json:"original_document_id"`
	AdditionalCharges        decimal.Decimal `db:"additional_charges" json:"additional_charges"`
	OverallDiscount          decimal.Decimal `db:"overall_discount" json:"overall_discount"`
	OverallDiscountType      DiscountType    `db:"overall_discount_type" json:"overall_discount_type"`
	AutoRoundOff             bool            `db:"auto_round_off" json:"auto_round_off"`
	Subtotal                 decimal.Decimal `db:"subtotal" json:"subtotal"`
	ItemDiscountTotal        decimal.Decimal `db:"item_discount_total" json:"item_discount_total"`
	TaxableAfterItemDiscount decimal.Decimal `db:"taxable_after_item_discount" json:"taxable_after_item_discount"`
	OverallDiscountValue     decimal.Decimal `db:"overall_discount_value" json:"overall_discount_value"`
	TaxableAmount            decimal.Decimal `db:"taxable_amount" json:"taxable_amount"`
	TaxAmountTotal           decimal.Decimal `db:"tax_amount_total" json:"tax_amount_total"`
	CGST                     decimal.Decimal `db:"cgst" json:"cgst"`
	SGST                     decimal.Decimal `db:"sgst" json:"sgst"`
	IGST                     decimal.Decimal `db:"igst" json:"igst"`
	TotalBeforeRound         decimal.Decimal `db:"total_before_round" json:"total_before_round"`
	RoundedTotal             decimal.Decimal `db:"rounded_total" json:"rounded_total"`
	RoundOffDelta            decimal.Decimal `db:"round_off_delta" json:"round_off_delta"`
	AmountReceived           decimal.Decimal `db:"amount_received" json:"amount_received"`
	BalanceDue               decimal.Decimal `db:"balance_due" json:"balance_due"`
	PaymentStatus            *PaymentStatus  `db:"payment_status" json:"payment_status"`
	Notes                    string          `db:"notes" json:"notes"`
	CreatedBy                uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt                time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt                time.Time       `db:"updated_at" json:"updated_at"`
	Lines                    []DocumentLine  `db:"-" json:"lines"`
}

// DocumentLine is one stored line of a document.
type DocumentLine struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	DocumentID      uuid.UUID       `db:"document_id" json:"document_id"`
	Position        int             `db:"position" json:"position"`
	ItemID          *uuid.UUID      `db:"item_id" json:"item_id"`
	Name            string          `db:"name" json:"name"`
	HSN             string          `db:"hsn" json:"hsn"`
	Unit            string          `db:"unit" json:"unit"`
	Quantity        decimal.Decimal `db:"quantity" json:"quantity"`
	UnitRate        decimal.Decimal `db:"unit_rate" json:"unit_rate"`
	DiscountPercent decimal.Decimal `db:"discount_percent" json:"discount_percent"`
	TaxRateLabel    string          `db:"tax_rate_label" json:"tax_rate_label"`
	BaseAmount      decimal.Decimal `db:"base_amount" json:"base_amount"`
	DiscountAmount  decimal.Decimal `db:"discount_amount" json:"discount_amount"`
	TaxableAmount   decimal.Decimal `db:"taxable_amount" json:"taxable_amount"`
	TaxPercent      decimal.Decimal `db:"tax_percent" json:"tax_percent"`
	TaxAmount       decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	LineTotal       decimal.Decimal `db:"line_total" json:"line_total"`
}

// Payment is money received from or paid to a party, optionally settling a
// specific invoice.
type Payment struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	CompanyID   uuid.UUID        `db:"company_id" json:"company_id"`
	Direction   PaymentDirection `db:"direction" json:"direction"`
	PartyID     uuid.UUID        `db:"party_id" json:"party_id"`
	DocumentID  *uuid.UUID       `db:"document_id" json:"document_id"`
	Amount      decimal.Decimal  `db:"amount" json:"amount"`
	Mode        PaymentMode      `db:"mode" json:"mode"`
	Reference   string           `db:"reference" json:"reference"`
	PaymentDate time.Time        `db:"payment_date" json:"payment_date"`
	Notes       string           `db:"notes" json:"notes"`
	CreatedBy   uuid.UUID        `db:"created_by" json:"created_by"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
}

// Attachment is a scanned bill or receipt stored against a document.
type Attachment struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	CompanyID    uuid.UUID  `db:"company_id" json:"company_id"`
	DocumentID   uuid.UUID  `db:"document_id" json:"document_id"`
	UploadedBy   uuid.UUID  `db:"uploaded_by" json:"uploaded_by"`
	FileName     string     `db:"file_name" json:"file_name"`
	OriginalName string     `db:"original_name" json:"original_name"`
	FileType     FileType   `db:"file_type" json:"file_type"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	S3Bucket     string     `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string     `db:"s3_key" json:"s3_key"`
	ContentType  string     `db:"content_type" json:"content_type"`
	Status       FileStatus `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// StockMove changes an item's stock by Delta. Negative moves stock out.
type StockMove struct {
	ItemID uuid.UUID
	Delta  decimal.Decimal
}

// DocumentSummary is what gets mailed to a party about a document.
type DocumentSummary struct {
	CompanyName    string
	DocumentType   DocumentType
	DocumentNumber string
	DocumentDate   time.Time
	LineCount      int
	TaxableAmount  decimal.Decimal
	TaxAmount      decimal.Decimal
	RoundedTotal   decimal.Decimal
	BalanceDue     decimal.Decimal
	Status         PaymentStatus
}

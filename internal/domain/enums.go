package domain

// FileType represents the allowed attachment types.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// UserRole defines the role hierarchy within a company.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// FileStatus represents the lifecycle of an uploaded attachment.
type FileStatus string

const (
	FileStatusPending  FileStatus = "pending"
	FileStatusUploaded FileStatus = "uploaded"
	FileStatusFailed   FileStatus = "failed"
)

// PartyType says which side of a trade a party usually sits on.
type PartyType string

const (
	PartyTypeCustomer PartyType = "customer"
	PartyTypeSupplier PartyType = "supplier"
	PartyTypeBoth     PartyType = "both"
)

// DocumentType identifies the kind of billing document.
type DocumentType string

const (
	DocumentTypeSalesInvoice    DocumentType = "sales_invoice"
	DocumentTypePurchaseInvoice DocumentType = "purchase_invoice"
	DocumentTypeCreditNote      DocumentType = "credit_note"
	DocumentTypeDebitNote       DocumentType = "debit_note"
	DocumentTypeSalesReturn     DocumentType = "sales_return"
	DocumentTypePurchaseReturn  DocumentType = "purchase_return"
)

// ValidDocumentTypes lists every supported document type.
var ValidDocumentTypes = map[DocumentType]bool{
	DocumentTypeSalesInvoice:    true,
	DocumentTypePurchaseInvoice: true,
	DocumentTypeCreditNote:      true,
	DocumentTypeDebitNote:       true,
	DocumentTypeSalesReturn:     true,
	DocumentTypePurchaseReturn:  true,
}

// IsInvoice reports whether the document carries a payment balance.
func (t DocumentType) IsInvoice() bool {
	return t == DocumentTypeSalesInvoice || t == DocumentTypePurchaseInvoice
}

// StockDirection returns +1 when the document brings stock in, -1 when it
// takes stock out, and 0 when stock is untouched.
func (t DocumentType) StockDirection() int {
	switch t {
	case DocumentTypePurchaseInvoice, DocumentTypeSalesReturn:
		return 1
	case DocumentTypeSalesInvoice, DocumentTypePurchaseReturn:
		return -1
	default:
		return 0
	}
}

// PaymentDirection returns the payment direction that settles this document.
func (t DocumentType) PaymentDirection() PaymentDirection {
	if t == DocumentTypePurchaseInvoice {
		return PaymentOut
	}
	return PaymentIn
}

// DiscountType says how a document-level discount is expressed.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// PaymentStatus is the settlement state of an invoice.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
)

// PaymentDirection distinguishes money received from money paid.
type PaymentDirection string

const (
	PaymentIn  PaymentDirection = "in"
	PaymentOut PaymentDirection = "out"
)

// PaymentMode is how a payment was made.
type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "cash"
	PaymentModeBank   PaymentMode = "bank"
	PaymentModeUPI    PaymentMode = "upi"
	PaymentModeCheque PaymentMode = "cheque"
)

// ValidPaymentModes lists accepted payment modes.
var ValidPaymentModes = map[PaymentMode]bool{
	PaymentModeCash:   true,
	PaymentModeBank:   true,
	PaymentModeUPI:    true,
	PaymentModeCheque: true,
}

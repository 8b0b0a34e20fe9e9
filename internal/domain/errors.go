package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrCompanyInactive      = errors.New("company is inactive")
	ErrUserInactive         = errors.New("user is inactive")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrDuplicateEmail       = errors.New("email already exists for this company")
	ErrDuplicateCompanySlug = errors.New("company slug already exists")
	ErrUploadFailed         = errors.New("file upload to storage failed")
	ErrPartyNotFound        = errors.New("party not found")
	ErrItemNotFound         = errors.New("item not found")
	ErrDuplicateItemCode    = errors.New("item code already exists")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrInvalidDocumentType  = errors.New("invalid document type")
	ErrDuplicateDocNumber   = errors.New("document number already exists")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPaymentMismatch      = errors.New("payment direction does not settle this document")
	ErrPartyEmailMissing    = errors.New("party has no email address")
	ErrPartyChangeLocked    = errors.New("party cannot change while payments are linked to the document")
	ErrValidationFailed     = errors.New("validation failed")
)

// FieldError is one user-facing validation message bound to a field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError blocks a save and carries every failed field.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Add appends a field error.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns the error only when at least one field failed.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

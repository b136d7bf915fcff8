package protocol

import (
	"strings"

	"github.com/atendely/dispatch-backend/internal/domain"
)

const maxNoteLength = 2000

// IssueInput holds the parameters for issuing a protocol to a consultant.
// The consultant id is taken as-is from the caller; issuance does not verify
// it against the registry.
type IssueInput struct {
	ConsultantID int64
	Note         *string
}

// Validate checks all fields and collects all errors.
func (i IssueInput) Validate() error {
	var errs []domain.FieldError
	if i.ConsultantID <= 0 {
		errs = append(errs, domain.FieldError{Field: "consultant_id", Message: "required"})
	}
	if i.Note != nil && len(strings.TrimSpace(*i.Note)) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 2000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for amending a protocol record. Nil fields
// are left unchanged. ConsultantID zero reassigns the protocol to nobody.
type UpdateInput struct {
	ConsultantID *int64
	Note         *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ConsultantID != nil && *i.ConsultantID < 0 {
		errs = append(errs, domain.FieldError{Field: "consultant_id", Message: "must be non-negative"})
	}
	if i.Note != nil && len(strings.TrimSpace(*i.Note)) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 2000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the parameters for listing protocols.
type ListInput struct {
	ConsultantID *int64
	Limit        int
	Offset       int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.ConsultantID != nil && *i.ConsultantID < 0 {
		errs = append(errs, domain.FieldError{Field: "consultant_id", Message: "must be non-negative"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

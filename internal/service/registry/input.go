package registry

import (
	"strings"

	"github.com/atendely/dispatch-backend/internal/domain"
)

const (
	maxNameLength  = 200
	maxPhoneLength = 30
)

// CreateInput holds the parameters for registering a consultant.
type CreateInput struct {
	Name              string
	Email             *string
	Phone             *string
	CRMID             *int64
	Languages         []string
	Active            bool
	SequentialEnabled bool
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if i.Email != nil {
		email := strings.TrimSpace(*i.Email)
		if email != "" && !strings.Contains(email, "@") {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
		}
	}
	if i.Phone != nil && len(strings.TrimSpace(*i.Phone)) > maxPhoneLength {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "max 30 characters"})
	}
	if i.CRMID != nil && *i.CRMID <= 0 {
		errs = append(errs, domain.FieldError{Field: "crm_id", Message: "must be positive"})
	}

	if len(normalizeLanguages(i.Languages)) == 0 {
		errs = append(errs, domain.FieldError{Field: "languages", Message: "at least one required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for a partial consultant update. Nil
// fields are left unchanged.
type UpdateInput struct {
	Name              *string
	Email             *string
	Phone             *string
	CRMID             *int64
	Languages         []string
	Active            *bool
	SequentialEnabled *bool
	Online            *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be blank"})
		}
		if len(name) > maxNameLength {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
		}
	}
	if i.Email != nil {
		email := strings.TrimSpace(*i.Email)
		if email != "" && !strings.Contains(email, "@") {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
		}
	}
	if i.Phone != nil && len(strings.TrimSpace(*i.Phone)) > maxPhoneLength {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "max 30 characters"})
	}
	if i.CRMID != nil && *i.CRMID <= 0 {
		errs = append(errs, domain.FieldError{Field: "crm_id", Message: "must be positive"})
	}
	if i.Languages != nil && len(normalizeLanguages(i.Languages)) == 0 {
		errs = append(errs, domain.FieldError{Field: "languages", Message: "at least one required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

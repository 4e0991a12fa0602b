package category

import (
	"strings"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

const (
	maxHandleLen      = 25
	maxNameLen        = 100
	maxDescriptionLen = 2000
)

// CreateInput holds the attributes of a new category.
type CreateInput struct {
	Handle       string
	Name         string
	NumEmployees int
	Description  string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	switch handle := strings.TrimSpace(i.Handle); {
	case handle == "":
		errs = append(errs, domain.FieldError{Field: "handle", Message: "required"})
	case len(handle) > maxHandleLen:
		errs = append(errs, domain.FieldError{Field: "handle", Message: "max 25 characters"})
	case strings.ContainsAny(handle, " /?#"):
		errs = append(errs, domain.FieldError{Field: "handle", Message: "must not contain spaces or URL delimiters"})
	}

	errs = append(errs, validateName(i.Name)...)
	errs = append(errs, validateNumEmployees(i.NumEmployees)...)
	errs = append(errs, validateDescription(i.Description)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial update. nil fields are left unchanged.
type UpdateInput struct {
	Name         *string
	NumEmployees *int
	Description  *string
}

// Validate checks the supplied fields.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}
	if i.NumEmployees != nil {
		errs = append(errs, validateNumEmployees(*i.NumEmployees)...)
	}
	if i.Description != nil {
		errs = append(errs, validateDescription(*i.Description)...)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Patch returns the supplied fields keyed by attribute name.
func (i UpdateInput) Patch() domain.Patch {
	var p domain.Patch
	if i.Name != nil {
		p.Set("name", strings.TrimSpace(*i.Name))
	}
	if i.NumEmployees != nil {
		p.Set("numEmployees", *i.NumEmployees)
	}
	if i.Description != nil {
		p.Set("description", *i.Description)
	}
	return p
}

func validateName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if len(name) > maxNameLen {
		return []domain.FieldError{{Field: "name", Message: "max 100 characters"}}
	}
	return nil
}

func validateNumEmployees(n int) []domain.FieldError {
	if n < 0 {
		return []domain.FieldError{{Field: "numEmployees", Message: "must not be negative"}}
	}
	return nil
}

func validateDescription(d string) []domain.FieldError {
	if len(d) > maxDescriptionLen {
		return []domain.FieldError{{Field: "description", Message: "max 2000 characters"}}
	}
	return nil
}

package lawsuit

import (
	"strings"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

const (
	maxTitleLen = 200
	maxTextLen  = 5000
)

// CreateInput holds the attributes of a new lawsuit.
type CreateInput struct {
	Title          string
	Description    string
	Comment        string
	Location       string
	CategoryHandle *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	errs = append(errs, validateTitle(i.Title)...)
	errs = append(errs, validateText("description", i.Description)...)
	errs = append(errs, validateText("comment", i.Comment)...)
	errs = append(errs, validateText("location", i.Location)...)
	if i.CategoryHandle != nil && strings.TrimSpace(*i.CategoryHandle) == "" {
		errs = append(errs, domain.FieldError{Field: "categoryHandle", Message: "must not be empty"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial update. nil fields are left unchanged.
// UnsetCategory detaches the lawsuit from its category.
type UpdateInput struct {
	Title          *string
	Description    *string
	Comment        *string
	Location       *string
	CategoryHandle *string
	UnsetCategory  bool
}

// Validate checks the supplied fields.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.Title != nil {
		errs = append(errs, validateTitle(*i.Title)...)
	}
	if i.Description != nil {
		errs = append(errs, validateText("description", *i.Description)...)
	}
	if i.Comment != nil {
		errs = append(errs, validateText("comment", *i.Comment)...)
	}
	if i.Location != nil {
		errs = append(errs, validateText("location", *i.Location)...)
	}
	if i.CategoryHandle != nil && strings.TrimSpace(*i.CategoryHandle) == "" {
		errs = append(errs, domain.FieldError{Field: "categoryHandle", Message: "must not be empty"})
	}
	if i.UnsetCategory && i.CategoryHandle != nil {
		errs = append(errs, domain.FieldError{Field: "unsetCategory", Message: "cannot be combined with categoryHandle"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Patch returns the supplied fields keyed by attribute name.
func (i UpdateInput) Patch() domain.Patch {
	var p domain.Patch
	if i.Title != nil {
		p.Set("title", strings.TrimSpace(*i.Title))
	}
	if i.Description != nil {
		p.Set("description", *i.Description)
	}
	if i.Comment != nil {
		p.Set("comment", *i.Comment)
	}
	if i.Location != nil {
		p.Set("location", *i.Location)
	}
	if i.CategoryHandle != nil {
		p.Set("categoryHandle", strings.TrimSpace(*i.CategoryHandle))
	}
	if i.UnsetCategory {
		p.Set("categoryHandle", nil)
	}
	return p
}

func validateTitle(title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if len(title) > maxTitleLen {
		return []domain.FieldError{{Field: "title", Message: "max 200 characters"}}
	}
	return nil
}

func validateText(field, v string) []domain.FieldError {
	if len(v) > maxTextLen {
		return []domain.FieldError{{Field: field, Message: "max 5000 characters"}}
	}
	return nil
}

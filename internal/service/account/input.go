package account

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

const (
	maxUsernameLen = 30
	minPasswordLen = 5
	maxPasswordLen = 72 // bcrypt input limit
	maxNameLen     = 30
	maxEmailLen    = 60
)

// CreateInput holds the attributes of a new account.
type CreateInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	IsAdmin   bool
}

// Normalize trims surrounding whitespace from the text fields.
func (i *CreateInput) Normalize() {
	i.Username = strings.TrimSpace(i.Username)
	i.FirstName = strings.TrimSpace(i.FirstName)
	i.LastName = strings.TrimSpace(i.LastName)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case len(i.Username) > maxUsernameLen:
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 30 characters"})
	case strings.ContainsAny(i.Username, " /?#"):
		errs = append(errs, domain.FieldError{Field: "username", Message: "must not contain spaces or URL delimiters"})
	}

	errs = append(errs, validatePassword(i.Password)...)
	errs = append(errs, validateName("firstName", i.FirstName)...)
	errs = append(errs, validateName("lastName", i.LastName)...)
	errs = append(errs, validateEmail(i.Email)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial update. nil fields are left unchanged.
type UpdateInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	IsAdmin   *bool
}

// Validate checks the supplied fields.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.FirstName != nil {
		errs = append(errs, validateName("firstName", strings.TrimSpace(*i.FirstName))...)
	}
	if i.LastName != nil {
		errs = append(errs, validateName("lastName", strings.TrimSpace(*i.LastName))...)
	}
	if i.Email != nil {
		errs = append(errs, validateEmail(strings.TrimSpace(*i.Email))...)
	}
	if i.Password != nil {
		errs = append(errs, validatePassword(*i.Password)...)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// patch returns the supplied fields with the password replaced by hash.
func (i UpdateInput) patch(hash string) domain.Patch {
	var p domain.Patch
	if i.FirstName != nil {
		p.Set("firstName", strings.TrimSpace(*i.FirstName))
	}
	if i.LastName != nil {
		p.Set("lastName", strings.TrimSpace(*i.LastName))
	}
	if i.Email != nil {
		p.Set("email", strings.ToLower(strings.TrimSpace(*i.Email)))
	}
	if i.Password != nil {
		p.Set("password", hash)
	}
	if i.IsAdmin != nil {
		p.Set("isAdmin", *i.IsAdmin)
	}
	return p
}

func (i UpdateInput) isEmpty() bool {
	return i.FirstName == nil && i.LastName == nil && i.Email == nil && i.Password == nil && i.IsAdmin == nil
}

func validatePassword(pw string) []domain.FieldError {
	if len(pw) < minPasswordLen {
		return []domain.FieldError{{Field: "password", Message: "min 5 characters"}}
	}
	if len(pw) > maxPasswordLen {
		return []domain.FieldError{{Field: "password", Message: "max 72 bytes"}}
	}
	return nil
}

func validateName(field, v string) []domain.FieldError {
	if v == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if len(v) > maxNameLen {
		return []domain.FieldError{{Field: field, Message: "max 30 characters"}}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if len(email) > maxEmailLen {
		return []domain.FieldError{{Field: "email", Message: "max 60 characters"}}
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return []domain.FieldError{{Field: "email", Message: "invalid format"}}
	}
	return nil
}

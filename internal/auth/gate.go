package auth

import (
	"fmt"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

// Guard is a permission predicate over the request's caller.
type Guard func(c domain.Caller) error

// RequireIdentified passes any caller that presented a valid token.
func RequireIdentified(c domain.Caller) error {
	if !c.IsIdentified() {
		return fmt.Errorf("authentication required: %w", domain.ErrUnauthorized)
	}
	return nil
}

// RequireAdmin passes identified administrators only.
func RequireAdmin(c domain.Caller) error {
	if !c.IsAdmin() {
		return fmt.Errorf("admin required: %w", domain.ErrUnauthorized)
	}
	return nil
}

// RequireSelfOrAdmin passes administrators and the caller whose subject is
// routeSubject.
func RequireSelfOrAdmin(routeSubject string) Guard {
	return func(c domain.Caller) error {
		if c.IsAdmin() {
			return nil
		}
		if c.IsIdentified() && c.Subject() == routeSubject {
			return nil
		}
		return fmt.Errorf("must be %s or admin: %w", routeSubject, domain.ErrUnauthorized)
	}
}

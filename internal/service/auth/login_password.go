package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

// errBadCredentials is returned for both an unknown username and a wrong
// password so that callers cannot tell which accounts exist.
var errBadCredentials = fmt.Errorf("invalid username/password: %w", domain.ErrUnauthorized)

// Authenticate checks the password and returns a token for the account.
func (s *Service) Authenticate(ctx context.Context, input LoginInput) (string, error) {
	input.Username = strings.TrimSpace(input.Username)
	if err := input.Validate(); err != nil {
		return "", err
	}

	creds, err := s.credentials.GetCredentials(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same bcrypt work as a wrong password.
			_ = s.passwords.Compare(s.passwords.DummyHash(), input.Password)
			return "", errBadCredentials
		}
		return "", fmt.Errorf("auth.Authenticate get credentials: %w", err)
	}

	if err := s.passwords.Compare(creds.PasswordHash, input.Password); err != nil {
		return "", errBadCredentials
	}

	token, err := s.tokens.Issue(creds.Username, creds.IsAdmin)
	if err != nil {
		return "", fmt.Errorf("auth.Authenticate issue token: %w", err)
	}

	s.log.InfoContext(ctx, "account logged in",
		slog.String("username", creds.Username))

	return token, nil
}

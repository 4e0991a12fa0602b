package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lawdesk-backend/internal/service/account"
)

// Register creates a non-admin account and returns a token for it.
// Returns a DuplicateError if the username is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (string, error) {
	created, err := s.accounts.Create(ctx, account.CreateInput{
		Username:  input.Username,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		IsAdmin:   false,
	})
	if err != nil {
		return "", fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "account registered",
		slog.String("username", created.Account.Username))

	return created.Token, nil
}

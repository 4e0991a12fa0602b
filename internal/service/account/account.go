package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
	"github.com/heartmarshall/lawdesk-backend/pkg/ctxutil"
)

// Create stores a new account and issues a token for it.
// Returns a DuplicateError if the username is taken.
func (s *Service) Create(ctx context.Context, input CreateInput) (Created, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return Created{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return Created{}, err
	}

	a := domain.Account{
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		IsAdmin:   input.IsAdmin,
	}

	var created domain.Account
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.accounts.Exists(txCtx, a.Username)
		if err != nil {
			return fmt.Errorf("check account: %w", err)
		}
		if exists {
			return domain.NewDuplicateError("username", a.Username)
		}

		created, err = s.accounts.Create(txCtx, a, hash)
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}
		return nil
	})
	if err != nil {
		return Created{}, err
	}

	token, err := s.tokens.Issue(created.Username, created.IsAdmin)
	if err != nil {
		return Created{}, err
	}

	s.log.InfoContext(ctx, "account created",
		slog.String("username", created.Username),
		slog.Bool("is_admin", created.IsAdmin))

	return Created{Account: created, Token: token}, nil
}

// FindAll lists accounts ordered by username.
func (s *Service) FindAll(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accounts.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find accounts: %w", err)
	}
	return accounts, nil
}

// Get returns the account with the ids of its assigned lawsuits.
func (s *Service) Get(ctx context.Context, username string) (domain.AccountDetail, error) {
	a, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return domain.AccountDetail{}, err
	}

	ids, err := s.accounts.LawsuitIDs(ctx, a.Username)
	if err != nil {
		return domain.AccountDetail{}, fmt.Errorf("assigned lawsuits: %w", err)
	}

	return domain.AccountDetail{Account: a, LawsuitIDs: ids}, nil
}

// Update changes the supplied fields. A new password is hashed before it is
// stored. Only administrators may change isAdmin.
func (s *Service) Update(ctx context.Context, username string, input UpdateInput) (domain.Account, error) {
	if input.isEmpty() {
		return domain.Account{}, domain.ErrInvalidUpdate
	}
	if err := input.Validate(); err != nil {
		return domain.Account{}, err
	}

	if input.IsAdmin != nil && !ctxutil.CallerFromCtx(ctx).IsAdmin() {
		return domain.Account{}, fmt.Errorf("only admins may change isAdmin: %w", domain.ErrUnauthorized)
	}

	var hash string
	if input.Password != nil {
		var err error
		if hash, err = s.hasher.Hash(*input.Password); err != nil {
			return domain.Account{}, err
		}
	}

	patch := input.patch(hash)
	updated, err := s.accounts.Update(ctx, username, patch)
	if err != nil {
		return domain.Account{}, err
	}

	s.log.InfoContext(ctx, "account updated",
		slog.String("username", username),
		slog.Int("fields", patch.Len()))
	return updated, nil
}

// Remove deletes the account and its assignments.
func (s *Service) Remove(ctx context.Context, username string) error {
	if err := s.accounts.Delete(ctx, username); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "account removed", slog.String("username", username))
	return nil
}

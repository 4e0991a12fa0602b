package account

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

// AddAssignment assigns the lawsuit to the account. Both ends are checked
// before the join table is touched; assigning twice is a no-op.
func (s *Service) AddAssignment(ctx context.Context, username string, lawsuitID int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireBoth(txCtx, username, lawsuitID); err != nil {
			return err
		}
		return s.accounts.AddAssignment(txCtx, username, lawsuitID)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "lawsuit assigned",
		slog.String("username", username),
		slog.Int64("lawsuit_id", lawsuitID))
	return nil
}

// RemoveAssignment unassigns the lawsuit from the account. Both ends are
// checked first; removing a pair that is not assigned is not an error.
func (s *Service) RemoveAssignment(ctx context.Context, username string, lawsuitID int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireBoth(txCtx, username, lawsuitID); err != nil {
			return err
		}
		return s.accounts.RemoveAssignment(txCtx, username, lawsuitID)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "lawsuit unassigned",
		slog.String("username", username),
		slog.Int64("lawsuit_id", lawsuitID))
	return nil
}

// requireBoth checks the account, then the lawsuit, and names the first one missing.
func (s *Service) requireBoth(ctx context.Context, username string, lawsuitID int64) error {
	ok, err := s.accounts.Exists(ctx, username)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewNotFoundError("account", username)
	}

	ok, err = s.lawsuits.Exists(ctx, lawsuitID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewNotFoundError("lawsuit", strconv.FormatInt(lawsuitID, 10))
	}
	return nil
}

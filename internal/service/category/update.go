package category

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

// Update changes the supplied fields. Returns ErrInvalidUpdate when no field
// is supplied and a NotFoundError when the handle does not exist.
func (s *Service) Update(ctx context.Context, handle string, input UpdateInput) (domain.Category, error) {
	if err := input.Validate(); err != nil {
		return domain.Category{}, err
	}

	patch := input.Patch()
	if patch.IsEmpty() {
		return domain.Category{}, domain.ErrInvalidUpdate
	}

	updated, err := s.categories.Update(ctx, handle, patch)
	if err != nil {
		return domain.Category{}, err
	}

	s.log.InfoContext(ctx, "category updated",
		slog.String("handle", handle),
		slog.Int("fields", patch.Len()))
	return updated, nil
}

// Remove deletes the category. Its lawsuits become uncategorised.
func (s *Service) Remove(ctx context.Context, handle string) error {
	if err := s.categories.Delete(ctx, handle); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "category removed", slog.String("handle", handle))
	return nil
}

package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

// Create adds a category. Returns a DuplicateError if the handle is taken.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Category, error) {
	if err := input.Validate(); err != nil {
		return domain.Category{}, err
	}

	c := domain.Category{
		Handle:       strings.TrimSpace(input.Handle),
		Name:         strings.TrimSpace(input.Name),
		NumEmployees: input.NumEmployees,
		Description:  input.Description,
	}

	var created domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.categories.Exists(txCtx, c.Handle)
		if err != nil {
			return fmt.Errorf("check category: %w", err)
		}
		if exists {
			return domain.NewDuplicateError("category", c.Handle)
		}

		created, err = s.categories.Create(txCtx, c)
		if err != nil {
			return fmt.Errorf("create category: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Category{}, err
	}

	s.log.InfoContext(ctx, "category created", slog.String("handle", created.Handle))
	return created, nil
}

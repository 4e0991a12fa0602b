package lawsuit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

// Create files a new lawsuit. A categoryHandle that does not exist is a
// NotFoundError.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Lawsuit, error) {
	if err := input.Validate(); err != nil {
		return domain.Lawsuit{}, err
	}

	l := domain.Lawsuit{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Comment:     input.Comment,
		Location:    input.Location,
	}
	if input.CategoryHandle != nil {
		h := strings.TrimSpace(*input.CategoryHandle)
		l.CategoryHandle = &h
	}

	var created domain.Lawsuit
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if l.CategoryHandle != nil {
			if err := s.requireCategory(txCtx, *l.CategoryHandle); err != nil {
				return err
			}
		}

		var err error
		created, err = s.lawsuits.Create(txCtx, l)
		if err != nil {
			return fmt.Errorf("create lawsuit: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Lawsuit{}, err
	}

	s.log.InfoContext(ctx, "lawsuit created", slog.Int64("lawsuit_id", created.ID))
	return created, nil
}

// FindAll lists lawsuits matching filter, ordered by id.
func (s *Service) FindAll(ctx context.Context, filter domain.LawsuitFilter) ([]domain.LawsuitListItem, error) {
	lawsuits, err := s.lawsuits.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find lawsuits: %w", err)
	}
	return lawsuits, nil
}

// Get returns the lawsuit with its category attached.
func (s *Service) Get(ctx context.Context, id int64) (domain.LawsuitDetail, error) {
	l, err := s.lawsuits.GetByID(ctx, id)
	if err != nil {
		return domain.LawsuitDetail{}, err
	}

	detail := domain.LawsuitDetail{Lawsuit: l}
	if l.CategoryHandle == nil {
		return detail, nil
	}

	c, err := s.categories.GetByHandle(ctx, *l.CategoryHandle)
	switch {
	case err == nil:
		detail.Category = &c
	case errors.Is(err, domain.ErrNotFound):
		// Category removed between the two reads.
	default:
		return domain.LawsuitDetail{}, fmt.Errorf("lawsuit category: %w", err)
	}

	return detail, nil
}

// Update changes the supplied fields and bumps updated_at.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (domain.Lawsuit, error) {
	if err := input.Validate(); err != nil {
		return domain.Lawsuit{}, err
	}

	patch := input.Patch()
	if patch.IsEmpty() {
		return domain.Lawsuit{}, domain.ErrInvalidUpdate
	}

	var updated domain.Lawsuit
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if v, _ := patch.Get("categoryHandle"); v != nil {
			if err := s.requireCategory(txCtx, v.(string)); err != nil {
				return err
			}
		}

		var err error
		updated, err = s.lawsuits.Update(txCtx, id, patch)
		return err
	})
	if err != nil {
		return domain.Lawsuit{}, err
	}

	s.log.InfoContext(ctx, "lawsuit updated",
		slog.Int64("lawsuit_id", id),
		slog.Int("fields", patch.Len()))
	return updated, nil
}

// Remove deletes the lawsuit and its assignments.
func (s *Service) Remove(ctx context.Context, id int64) error {
	if err := s.lawsuits.Delete(ctx, id); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "lawsuit removed", slog.Int64("lawsuit_id", id))
	return nil
}

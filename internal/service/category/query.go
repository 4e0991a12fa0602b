package category

import (
	"context"
	"fmt"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

// FindAll lists categories matching filter, ordered by handle.
func (s *Service) FindAll(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error) {
	categories, err := s.categories.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	return categories, nil
}

// Get returns the category with its lawsuits.
func (s *Service) Get(ctx context.Context, handle string) (domain.CategoryDetail, error) {
	c, err := s.categories.GetByHandle(ctx, handle)
	if err != nil {
		return domain.CategoryDetail{}, err
	}

	lawsuits, err := s.categories.Lawsuits(ctx, c.Handle)
	if err != nil {
		return domain.CategoryDetail{}, fmt.Errorf("category lawsuits: %w", err)
	}

	return domain.CategoryDetail{Category: c, Lawsuits: lawsuits}, nil
}

package category

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

type categoryRepo interface {
	Exists(ctx context.Context, handle string) (bool, error)
	Create(ctx context.Context, c domain.Category) (domain.Category, error)
	FindAll(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error)
	GetByHandle(ctx context.Context, handle string) (domain.Category, error)
	Lawsuits(ctx context.Context, handle string) ([]domain.LawsuitSummary, error)
	Update(ctx context.Context, handle string, patch domain.Patch) (domain.Category, error)
	Delete(ctx context.Context, handle string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages categories (departments).
type Service struct {
	categories categoryRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new category service.
func NewService(log *slog.Logger, categories categoryRepo, tx txManager) *Service {
	return &Service{
		categories: categories,
		tx:         tx,
		log:        log.With("service", "category"),
	}
}

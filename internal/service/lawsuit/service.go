package lawsuit

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

type lawsuitRepo interface {
	Create(ctx context.Context, l domain.Lawsuit) (domain.Lawsuit, error)
	FindAll(ctx context.Context, filter domain.LawsuitFilter) ([]domain.LawsuitListItem, error)
	GetByID(ctx context.Context, id int64) (domain.Lawsuit, error)
	Update(ctx context.Context, id int64, patch domain.Patch) (domain.Lawsuit, error)
	Delete(ctx context.Context, id int64) error
}

type categoryRepo interface {
	Exists(ctx context.Context, handle string) (bool, error)
	GetByHandle(ctx context.Context, handle string) (domain.Category, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages lawsuits.
type Service struct {
	lawsuits   lawsuitRepo
	categories categoryRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new lawsuit service.
func NewService(log *slog.Logger, lawsuits lawsuitRepo, categories categoryRepo, tx txManager) *Service {
	return &Service{
		lawsuits:   lawsuits,
		categories: categories,
		tx:         tx,
		log:        log.With("service", "lawsuit"),
	}
}

// requireCategory fails with a NotFoundError naming handle when it does not exist.
func (s *Service) requireCategory(ctx context.Context, handle string) error {
	ok, err := s.categories.Exists(ctx, handle)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewNotFoundError("category", handle)
	}
	return nil
}

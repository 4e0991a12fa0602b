package account

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

type accountRepo interface {
	Exists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, a domain.Account, passwordHash string) (domain.Account, error)
	FindAll(ctx context.Context) ([]domain.Account, error)
	GetByUsername(ctx context.Context, username string) (domain.Account, error)
	LawsuitIDs(ctx context.Context, username string) ([]int64, error)
	Update(ctx context.Context, username string, patch domain.Patch) (domain.Account, error)
	Delete(ctx context.Context, username string) error
	AddAssignment(ctx context.Context, username string, lawsuitID int64) error
	RemoveAssignment(ctx context.Context, username string, lawsuitID int64) error
}

type lawsuitRepo interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

type tokenIssuer interface {
	Issue(subject string, isAdmin bool) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages accounts and their lawsuit assignments.
type Service struct {
	accounts accountRepo
	lawsuits lawsuitRepo
	hasher   passwordHasher
	tokens   tokenIssuer
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new account service.
func NewService(
	log *slog.Logger,
	accounts accountRepo,
	lawsuits lawsuitRepo,
	hasher passwordHasher,
	tokens tokenIssuer,
	tx txManager,
) *Service {
	return &Service{
		accounts: accounts,
		lawsuits: lawsuits,
		hasher:   hasher,
		tokens:   tokens,
		tx:       tx,
		log:      log.With("service", "account"),
	}
}

// Created is the result of Create: the stored account and a token for it.
type Created struct {
	Account domain.Account
	Token   string
}

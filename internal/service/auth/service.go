package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
	"github.com/heartmarshall/lawdesk-backend/internal/service/account"
)

// accountCreator creates accounts. Registration reuses the account service
// so that validation and duplicate detection stay in one place.
type accountCreator interface {
	Create(ctx context.Context, input account.CreateInput) (account.Created, error)
}

// credentialsRepo reads stored password hashes.
type credentialsRepo interface {
	GetCredentials(ctx context.Context, username string) (domain.AccountCredentials, error)
}

type passwordVerifier interface {
	Compare(hash, password string) error
	DummyHash() string
}

type tokenIssuer interface {
	Issue(subject string, isAdmin bool) (string, error)
}

// Service implements registration and password login.
type Service struct {
	log         *slog.Logger
	accounts    accountCreator
	credentials credentialsRepo
	passwords   passwordVerifier
	tokens      tokenIssuer
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	accounts accountCreator,
	credentials credentialsRepo,
	passwords passwordVerifier,
	tokens tokenIssuer,
) *Service {
	return &Service{
		log:         logger.With("service", "auth"),
		accounts:    accounts,
		credentials: credentials,
		passwords:   passwords,
		tokens:      tokens,
	}
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lawdesk-backend/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/lawdesk-backend/internal/adapter/postgres/account"
	categoryrepo "github.com/heartmarshall/lawdesk-backend/internal/adapter/postgres/category"
	lawsuitrepo "github.com/heartmarshall/lawdesk-backend/internal/adapter/postgres/lawsuit"
	authpkg "github.com/heartmarshall/lawdesk-backend/internal/auth"
	"github.com/heartmarshall/lawdesk-backend/internal/config"
	"github.com/heartmarshall/lawdesk-backend/internal/service/account"
	authsvc "github.com/heartmarshall/lawdesk-backend/internal/service/auth"
	"github.com/heartmarshall/lawdesk-backend/internal/service/category"
	"github.com/heartmarshall/lawdesk-backend/internal/service/lawsuit"
	"github.com/heartmarshall/lawdesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/lawdesk-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), serves HTTP until ctx is cancelled
// and then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	limiter, closeLimiter, err := newLimiter(ctx, cfg.RateLimit, logger)
	if err != nil {
		return err
	}
	defer closeLimiter()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           NewHandler(cfg, logger, pool, limiter),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// NewHandler assembles repositories, services and handlers over pool and
// returns the root handler with the full middleware chain applied.
// limiter may be nil, in which case credential endpoints are not throttled.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, limiter middleware.Limiter) http.Handler {
	txm := postgres.NewTxManager(pool)

	accounts := accountrepo.New(pool)
	categories := categoryrepo.New(pool)
	lawsuits := lawsuitrepo.New(pool)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := authpkg.NewPasswordHasher(cfg.Auth.BcryptCost)

	accountService := account.NewService(logger, accounts, lawsuits, hasher, jwtMgr, txm)
	authService := authsvc.NewService(logger, accountService, accounts, hasher, jwtMgr)
	categoryService := category.NewService(logger, categories, txm)
	lawsuitService := lawsuit.NewService(logger, lawsuits, categories, txm)

	deps := []rest.Dependency{{Name: "database", Pinger: pool}}
	if p, ok := limiter.(rest.Pinger); ok {
		deps = append(deps, rest.Dependency{Name: "redis", Pinger: p})
	}

	opts := rest.RouterOptions{}
	if !cfg.Metrics.Disabled {
		opts.Metrics = middleware.NewMetrics()
		opts.MetricsPath = cfg.Metrics.Path
	}
	if limiter != nil {
		opts.AuthLimit = middleware.RateLimit(logger, limiter, cfg.RateLimit.AuthPerMinute)
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(Version, deps...),
		Auth:       rest.NewAuthHandler(authService, logger),
		Categories: rest.NewCategoryHandler(categoryService, logger),
		Lawsuits:   rest.NewLawsuitHandler(lawsuitService, logger),
		Users:      rest.NewUserHandler(accountService, logger),
	}, opts)

	// Auth runs before Logger so access lines carry the caller.
	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Auth(logger, jwtMgr),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}

// newLimiter picks the credential-endpoint limiter. The returned func
// releases it and is never nil.
func newLimiter(ctx context.Context, cfg config.RateLimitConfig, logger *slog.Logger) (middleware.Limiter, func(), error) {
	if cfg.Disabled {
		logger.Info("rate limiting disabled")
		return nil, func() {}, nil
	}

	if cfg.UsesRedis() {
		rl, err := middleware.NewRedisLimiter(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("rate limiting via redis", slog.String("addr", cfg.RedisAddr))
		return rl, func() {
			if err := rl.Close(); err != nil {
				logger.Warn("close redis limiter", slog.String("error", err.Error()))
			}
		}, nil
	}

	rl := middleware.NewRateLimiter(cfg.CleanupPeriod)
	return rl, rl.Stop, nil
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/lawdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lawdesk-backend/internal/app"
	"github.com/heartmarshall/lawdesk-backend/internal/config"
)

const commandTimeout = 30 * time.Second

// env is what the subcommands run against.
type env struct {
	cfg  *config.Config
	pool *pgxpool.Pool
}

// sqlDB exposes the pool through database/sql for goose. Closing the
// returned DB does not close the pool.
func (e *env) sqlDB() *sql.DB {
	return stdlib.OpenDBFromPool(e.pool)
}

func (e *env) close() {
	if e.pool != nil {
		e.pool.Close()
	}
}

// envLoader opens the environment for one command invocation.
type envLoader func(ctx context.Context) (*env, error)

func loadEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, pool: pool}, nil
}

func newRootCmd(load envLoader) *cobra.Command {
	root := &cobra.Command{
		Use:           "lawctl",
		Short:         "Operator tool for the lawdesk backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(load),
		newPromoteCmd(load),
		newTokenCmd(load),
	)
	return root
}

// withEnv adapts a command body to cobra, bounding it by commandTimeout.
func withEnv(load envLoader, run func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
		defer cancel()

		e, err := load(ctx)
		if err != nil {
			return fmt.Errorf("load environment: %w", err)
		}
		defer e.close()

		return run(ctx, cmd, e, args)
	}
}

package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/lawdesk-backend/migrations"
)

func newMigrateCmd(load envLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply, roll back or inspect schema migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withEnv(load, func(ctx context.Context, cmd *cobra.Command, e *env, _ []string) error {
				return withProvider(e, func(p *goose.Provider) error {
					results, err := p.Up(ctx)
					if err != nil {
						return fmt.Errorf("migrate up: %w", err)
					}
					if len(results) == 0 {
						fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
					}
					for _, r := range results {
						fmt.Fprintln(cmd.OutOrStdout(), r.String())
					}
					return nil
				})
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: withEnv(load, func(ctx context.Context, cmd *cobra.Command, e *env, _ []string) error {
				return withProvider(e, func(p *goose.Provider) error {
					r, err := p.Down(ctx)
					if err != nil {
						return fmt.Errorf("migrate down: %w", err)
					}
					fmt.Fprintln(cmd.OutOrStdout(), r.String())
					return nil
				})
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: withEnv(load, func(ctx context.Context, cmd *cobra.Command, e *env, _ []string) error {
				return withProvider(e, func(p *goose.Provider) error {
					statuses, err := p.Status(ctx)
					if err != nil {
						return fmt.Errorf("migrate status: %w", err)
					}
					w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
					fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tFILE")
					for _, s := range statuses {
						applied := "-"
						if s.State == goose.StateApplied {
							applied = s.AppliedAt.Format("2006-01-02 15:04:05")
						}
						fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
					}
					return w.Flush()
				})
			}),
		},
	)
	return cmd
}

func withProvider(e *env, fn func(p *goose.Provider) error) error {
	db := e.sqlDB()
	defer db.Close()

	p, err := migrations.NewProvider(db)
	if err != nil {
		return err
	}
	return fn(p)
}

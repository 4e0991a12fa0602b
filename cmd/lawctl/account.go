package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	accountrepo "github.com/heartmarshall/lawdesk-backend/internal/adapter/postgres/account"
	authpkg "github.com/heartmarshall/lawdesk-backend/internal/auth"
	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

// newPromoteCmd grants admin rights to an existing account. It is how the
// first admin is bootstrapped, since only admins may grant isAdmin over HTTP.
func newPromoteCmd(load envLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "promote <username>",
		Short: "Grant admin rights to an account",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(load, func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
			username := args[0]

			var patch domain.Patch
			patch.Set("isAdmin", true)

			if _, err := accountrepo.New(e.pool).Update(ctx, username, patch); err != nil {
				return fmt.Errorf("promote %s: %w", username, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "account %q is now an admin\n", username)
			return nil
		}),
	}
}

// newTokenCmd prints a bearer token for an existing account, carrying the
// account's current admin flag.
func newTokenCmd(load envLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "token <username>",
		Short: "Issue a bearer token for an account",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(load, func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
			a, err := accountrepo.New(e.pool).GetByUsername(ctx, args[0])
			if err != nil {
				return fmt.Errorf("token %s: %w", args[0], err)
			}

			auth := e.cfg.Auth
			token, err := authpkg.NewJWTManager(auth.JWTSecret, auth.JWTIssuer, auth.AccessTokenTTL).Issue(a.Username, a.IsAdmin)
			if err != nil {
				return fmt.Errorf("token %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		}),
	}
}

// Command lawctl is the operator CLI for lawdesk: schema migrations and
// account bootstrap.
//
// Usage:
//
//	lawctl migrate up|down|status
//	lawctl promote <username>
//	lawctl token <username>
//
// It reads the same configuration as the server (DATABASE_DSN, AUTH_JWT_SECRET, ...).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(loadEnv).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lawctl:", err)
		os.Exit(1)
	}
}

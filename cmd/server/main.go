// Command server runs the lawdesk HTTP API.
//
// Configuration comes from the environment (see internal/config), optionally
// layered over the YAML file named by CONFIG_PATH. SIGINT and SIGTERM trigger
// a graceful shutdown.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/lawdesk-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

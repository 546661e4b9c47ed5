// ./main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/freshsips/bobagen/cmd"
	"github.com/freshsips/bobagen/internal/observability"
)

// main is the entry point for the bobagen CLI.
func main() {
	// Set up a context that listens for interrupt signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := cmd.Execute(ctx)
	observability.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// Package main is the entrypoint of autostepper.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"autostepper/internal/cfg"
)

// main is the main entrypoint of the program.
func main() {
	// create cancellable context for shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	defer cancel()

	// ---- INIT COMMANDS ----
	if err := cfg.InitCommands(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "autostepper exiting with error: %v\n", err)
		os.Exit(1)
	}

	// ---- RUN PROGRAM ----
	if err := cfg.Execute(); err != nil {
		// Cobra already printed the error.
		cancel()
		os.Exit(1)
	}
}

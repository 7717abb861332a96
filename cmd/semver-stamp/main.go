package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/andyballingall/semver-stamp/internal/app"
)

func main() {
	// Create context that cancels on SIGINT (Ctrl+C) or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Failures are already reported on stderr with the fallback on stdout, and
	// must never fail the calling build.
	_ = app.Run(ctx, os.Args, os.Stdout, os.Stderr, nil)
}

package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// ShutdownContext is cancelled on SIGINT or SIGTERM.
func ShutdownContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

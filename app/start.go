package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fantakl/votes-admin/pkg/attr"
)

const shutdownTimeout = 15 * time.Second

// Start serves the admin API until ctx is cancelled, then drains in-flight
// requests.
func (app *App) Start(ctx context.Context) error {
	logger := app.Observability.Logger

	srv := &http.Server{
		Addr:              app.Config.HTTP.Address,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "Starting HTTP server", attr.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Serve runs the API on addr until ctx is cancelled, then shuts down
// gracefully, giving in-flight requests shutdownTimeout to finish.
func (a *API) Serve(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	server := &http.Server{
		Addr:    addr,
		Handler: a.Routes(),
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	a.Logger.Info().Str("addr", addr).Msg("server listening")

	select {
	case <-ctx.Done():
		a.Logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}

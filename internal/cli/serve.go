package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/httpapi"
	"github.com/leopoldovcfonseca/ptashelf/internal/app/ptas"
	"github.com/leopoldovcfonseca/ptashelf/internal/ports/out/ptarepo"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			backend, err := OpenBackend(ctx, opts.cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := backend.Close(); err != nil {
					log.Printf("close %s backend: %v", opts.cfg.DataBackend, err)
				}
			}()

			srv := &http.Server{
				Addr:              ":" + opts.cfg.Port,
				Handler:           newHandler(backend.Repo),
				ReadHeaderTimeout: 5 * time.Second,
			}
			return serve(ctx, srv, opts.cfg.DataBackend)
		},
	}
}

func newHandler(repo ptarepo.Repository) http.Handler {
	return httpapi.NewRouter(httpapi.NewServer(ptas.NewService(repo)))
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, backend string) error {
	errc := make(chan error, 1)
	go func() {
		log.Printf("ptashelf listening on %s (backend=%s)", srv.Addr, backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Implements: prd009-atelier-cli R3 (serve command); prd007-http-api R1.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/atelier/internal/httpapi"
	"github.com/mesh-intelligence/atelier/internal/sqlite"
)

const shutdownTimeout = 10 * time.Second

// newServeCmd creates the "serve" subcommand. Serve attaches the SQLite
// backend and runs the HTTP API until SIGINT or SIGTERM, then shuts down
// gracefully and detaches the store.
func newServeCmd() *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfig()
			if err != nil {
				return exitError(exitSysError, fmt.Sprintf("serve: %v", err))
			}
			config, err := storeConfig(v)
			if err != nil {
				return exitError(exitSysError, fmt.Sprintf("serve: %v", err))
			}
			if listenAddr != "" {
				config.ListenAddr = listenAddr
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			backend := sqlite.NewBackend()
			if err := backend.Attach(config); err != nil {
				return exitError(exitSysError, fmt.Sprintf("serve: attach store: %v", err))
			}
			defer func() {
				if err := backend.Detach(); err != nil {
					logger.Error("detach store", "error", err)
				}
			}()

			api := httpapi.NewServer(backend, logger)
			server := &http.Server{
				Addr:              config.ListenAddr,
				Handler:           api.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
				IdleTimeout:       2 * time.Minute,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server listening", "addr", config.ListenAddr)
				errCh <- server.ListenAndServe()
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case sig := <-sigCh:
				logger.Info("shutting down", "signal", sig.String())
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := server.Shutdown(ctx); err != nil {
					return exitError(exitSysError, fmt.Sprintf("serve: shutdown: %v", err))
				}
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return exitError(exitSysError, fmt.Sprintf("serve: %v", err))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (overrides config listen_addr)")
	return cmd
}

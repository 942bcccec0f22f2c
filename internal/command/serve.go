package command

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(opts *options) *cobra.Command {
	var (
		addr string
		dev  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("dev") {
				cfg.Dev = dev
			}

			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			app, err := newApp(cfg, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           app.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			log.Info("server.start", "addr", cfg.Addr, "mode", cfg.Mode().String(), "routes", len(app.Routes()))
			return run(ctx, srv)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config and environment)")
	cmd.Flags().BoolVar(&dev, "dev", false, "disable caching and show error details")
	return cmd
}

// run serves until ctx is done, then drains in-flight requests.
func run(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

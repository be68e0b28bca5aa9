package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/desertthunder/lyrx/internal/web"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the web UI until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	cfg := r.config.Server
	if cmd.IsSet("host") {
		cfg.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		cfg.Port = int(cmd.Int("port"))
	}

	srv, err := r.newServer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("starting web server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	if cmd.Bool("open") {
		url := fmt.Sprintf("http://%s/home", srv.Addr)
		if err := shared.OpenBrowser(url); err != nil {
			r.logger.Warn("failed to open browser", "url", url, "error", err)
		}
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		r.logger.Info("shutting down web server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func (r *Runner) newServer(cfg shared.ServerConfig) (*http.Server, error) {
	app, err := web.New(r.lyrics, r.config.Contact, r.config.UI.Language, r.logger)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           app.Handler(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

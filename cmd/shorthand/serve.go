package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lehtoroni/shorthand/internal/config"
	"github.com/lehtoroni/shorthand/internal/playground"
)

func serveCmd() *cobra.Command {
	var (
		port    int
		host    string
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a live document playground",
		Long: `Serve an HTML document with a selector query API and live reload.

The playground watches the file for changes, re-parses it, and
refreshes connected browsers. Endpoints:

  /            the served document
  /api/query   JSON selector queries (?selector=...)
  /metrics     Prometheus metrics
  /ws          live-reload WebSocket

Settings come from shorthand.yml when present; flags win over the
file.

Examples:
  shorthand serve page.html
  shorthand serve --port=8080 page.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.FileName)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.File = args[0]
			}
			if cfg.File == "" {
				return errors.New("no document: pass a file argument or set file in shorthand.yml")
			}
			if port != 0 {
				cfg.Port = port
			}
			if host != "" {
				cfg.Host = host
			}
			if noWatch {
				cfg.Watch = false
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Disable file watching and live reload")

	return cmd
}

func runServe(cfg config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	srv, err := playground.New(cfg, playground.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

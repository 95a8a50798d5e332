package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kanbo/internal/app"
	"kanbo/internal/kanban/service"
	"kanbo/internal/logs"
	"kanbo/internal/server"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *options) *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board as a JSON API",
		Long:  "Serve the board over HTTP. Requests are applied one at a time; the board is saved on shutdown when a board directory is configured.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts, open)
		},
	}

	cmd.Flags().StringVar(&opts.serverAddr, "addr", "", "Listen address (default from config, 127.0.0.1:8080)")
	cmd.Flags().BoolVar(&open, "open", false, "Open the board API in a browser")
	return cmd
}

func runServe(ctx context.Context, opts *options, open bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a, err := app.New(ctx, opts.cfg)
	if err != nil {
		return err
	}

	dispatcher := service.NewDispatcher(a.Service)
	runErr := make(chan error, 1)
	go func() {
		runErr <- dispatcher.Run(ctx)
	}()

	addr := opts.cfg.Server.Addr
	url := fmt.Sprintf("http://%s/api/board", addr)
	fmt.Printf("Serving %s (board from %s)\n", url, a.SeedSource)
	if open {
		if err := browser.OpenURL(url); err != nil {
			logs.Warnf("could not open browser: %v", err)
		}
	}

	serveErr := server.New(dispatcher).ListenAndServe(ctx, addr)
	cancel()
	if err := <-runErr; err != nil && !errors.Is(err, context.Canceled) {
		logs.Warnf("dispatcher stopped: %v", err)
	}

	if err := a.SaveBoard(); err != nil {
		logs.Errorf("saving board on shutdown: %v", err)
		if serveErr == nil {
			serveErr = err
		}
	}
	return serveErr
}

package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-stats-card/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the stats card over HTTP",
	Long:  `Starts an HTTP server that renders a fresh stats card on every request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd, os.Stderr)
		aggregator, cfg, env, err := setup(cmd, logger)
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = ":" + env.Port
		}
		srv := &http.Server{
			Addr:              addr,
			Handler:           server.NewHandler(aggregator, cfg, logger).Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server listening", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-quit:
		}

		logger.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}
		logger.Info("server stopped gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (default: :$PORT)")
}

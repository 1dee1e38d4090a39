// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdtex/internal/api"
	"github.com/pdiddy/mdtex/internal/latex"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the converter over HTTP",
	Long: `Serve starts an HTTP server with these endpoints:

  GET  /health          liveness check
  POST /convert         convert the Markdown request body; ?source= names the run
  GET  /runs            list recorded runs (history enabled only)
  GET  /runs/{id}       one run with its diagnostics (history enabled only)

The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	conv, err := latex.New(cfg.Converter)
	if err != nil {
		return err
	}

	store, err := openHistory(cfg.History)
	if err != nil {
		return err
	}

	var runs api.RunStore
	if store != nil {
		defer store.Close()
		runs = store
	}

	srv := api.NewServer(conv, runs, log, cfg.Server)
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting mdtex server", "addr", cfg.Server.Addr, "history", cfg.History.Enabled)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-cmd.Context().Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8090)")
	serveCmd.Flags().Int64("max-body-bytes", 0, "largest accepted request body")
	bindFlags(serveCmd.Flags(), []flagBinding{
		{"addr", keyServerAddr},
		{"max-body-bytes", keyMaxBodyBytes},
	})

	rootCmd.AddCommand(serveCmd)
}

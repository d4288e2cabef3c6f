// ABOUTME: CLI command to run the HTTP API for the clarification pipeline
// ABOUTME: chi server with graceful shutdown and optional stats recording
package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/avicola/clarify/internal/api"
	"github.com/avicola/clarify/internal/storage/sqlite"
)

var serveNoStats bool

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the clarification pipeline as an HTTP API.

Endpoints:
  GET  /api/v1/health
  POST /api/v1/extract  {"text": "..."}
  POST /api/v1/clarify  {"text": "...", "language": "fr"}
  GET  /api/v1/stats`,
		RunE: runServe,
	}

	cmd.Flags().BoolVar(&serveNoStats, "no-stats", false, "Disable trace recording")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	p, err := buildPipeline()
	if err != nil {
		return err
	}

	var stats *sqlite.StatsStore
	if !serveNoStats {
		db, err := sqlite.Open(p.cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening stats database: %w", err)
		}
		defer func() { _ = db.Close() }()
		stats = sqlite.NewStatsStore(db)
	}

	handler := api.NewHandler(p.extractor, p.generator, stats, versionInfo.Version)
	server := &http.Server{
		Addr:              p.cfg.HTTPAddr,
		Handler:           api.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	if !quiet {
		log.Printf("clarify HTTP API listening on %s", p.cfg.HTTPAddr)
	}

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, gracefully shutting down...")
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

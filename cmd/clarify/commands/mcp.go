// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to call the clarification pipeline via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/avicola/clarify/internal/mcp"
	"github.com/avicola/clarify/internal/storage/sqlite"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

var mcpNoStats bool

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the clarification pipeline as an MCP (Model Context Protocol) server
over stdio, exposing fact extraction and question generation as tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an agent host)
  clarify mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "clarify": {
  #       "command": "clarify",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	cmd.Flags().BoolVar(&mcpNoStats, "no-stats", false, "Disable trace recording")

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" && !quiet {
		log.Println("Warning: OPENAI_API_KEY not set - questions will use the deterministic fallback")
	}

	p, err := buildPipeline()
	if err != nil {
		return err
	}

	var stats *sqlite.StatsStore
	if !mcpNoStats {
		db, err := sqlite.Open(p.cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening stats database: %w", err)
		}
		defer func() { _ = db.Close() }()
		stats = sqlite.NewStatsStore(db)
	}

	server := mcpserver.NewMCPServer(
		"Clarify Pipeline",
		versionInfo.Version,
	)

	mcp.RegisterTools(server, p.extractor, p.generator, stats)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("clarify MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, gracefully shutting down...")
		}
		return nil
	case err := <-serverErr:
		return err
	}
}

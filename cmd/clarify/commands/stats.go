// ABOUTME: CLI command to display aggregate pipeline statistics
// ABOUTME: Reads the stats database and prints the SQL aggregation summary
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/avicola/clarify/internal/config"
	"github.com/avicola/clarify/internal/storage/sqlite"
)

var statsJSON bool

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate pipeline statistics",
		Long: `Show aggregate statistics recorded by the serve and mcp commands:
generation counts, fallback rate, mean validation score, and breakdowns by
fallback reason, language, and context type.`,
		RunE: runStats,
	}

	cmd.Flags().BoolVar(&statsJSON, "json", false, "Print summary as JSON")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening stats database: %w", err)
	}
	defer func() { _ = db.Close() }()

	summary, err := sqlite.NewStatsStore(db).Summarize()
	if err != nil {
		return fmt.Errorf("summarizing stats: %w", err)
	}

	if statsJSON {
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Generations:           %d\n", summary.Generations)
	_, _ = fmt.Fprintf(w, "Fallback rate:         %.1f%%\n", summary.FallbackRate*100)
	_, _ = fmt.Fprintf(w, "Mean validation score: %.2f\n", summary.MeanValidationScore)
	if len(summary.FallbackReasons) > 0 {
		_, _ = fmt.Fprintln(w, "Fallback reasons:")
		for reason, n := range summary.FallbackReasons {
			_, _ = fmt.Fprintf(w, "  %-24s %d\n", reason, n)
		}
	}
	if len(summary.Languages) > 0 {
		_, _ = fmt.Fprintln(w, "Languages:")
		for lang, n := range summary.Languages {
			_, _ = fmt.Fprintf(w, "  %-24s %d\n", lang, n)
		}
	}
	_, _ = fmt.Fprintf(w, "Extractions:           %d\n", summary.Extractions)
	_, _ = fmt.Fprintf(w, "Mean fields extracted: %.1f\n", summary.MeanFieldCount)
	if len(summary.ContextTypes) > 0 {
		_, _ = fmt.Fprintln(w, "Context types:")
		for ct, n := range summary.ContextTypes {
			_, _ = fmt.Fprintf(w, "  %-24s %d\n", ct, n)
		}
	}
	return nil
}

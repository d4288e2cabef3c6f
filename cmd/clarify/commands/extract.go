// ABOUTME: CLI command to extract structured facts from a question
// ABOUTME: Prints the fact record as JSON for inspection or piping
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewExtractCmd creates the extract command
func NewExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [text]",
		Short: "Extract structured facts from a farmer question",
		Long: `Extract structured facts from a free-form farmer question.

Examples:
  clarify extract "Mes poulets Ross 308 de 21 jours ont la diarrhée"
  echo "My broilers weigh 500g at 3 weeks" | clarify extract`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExtract,
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	text, err := readText(args)
	if err != nil {
		return err
	}

	p, err := buildPipeline()
	if err != nil {
		return err
	}

	facts := p.extractor.Extract(text)

	out, err := json.MarshalIndent(facts, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding facts: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// readText returns the first argument or, when absent, trimmed stdin.
func readText(args []string) (string, error) {
	var text string
	if len(args) > 0 {
		text = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no text provided")
	}
	return text, nil
}

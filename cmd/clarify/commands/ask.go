// ABOUTME: CLI command to generate clarification questions for a question
// ABOUTME: Shows the questions and, when verbose, the generation trace
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	askLanguage string
	askJSON     bool
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [text]",
		Short: "Generate clarification questions for a farmer question",
		Long: `Generate up to 4 clarification questions for a free-form farmer
question. Uses the configured language model when available, otherwise the
deterministic template fallback.

Examples:
  clarify ask "Mes poulets ont la diarrhée"
  clarify ask --language en "My chickens are not growing"
  clarify ask --json "Mes poulets ont la diarrhée"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().StringVar(&askLanguage, "language", "fr", "Question language (fr, en, es)")
	cmd.Flags().BoolVar(&askJSON, "json", false, "Print questions and trace as JSON")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	text, err := readText(args)
	if err != nil {
		return err
	}

	p, err := buildPipeline()
	if err != nil {
		return err
	}

	result := p.generator.Generate(cmd.Context(), text, askLanguage)

	if askJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	for i, q := range result.Questions {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, q)
	}
	if len(result.Questions) == 0 && !quiet {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "(no questions generated)")
	}
	if verbose {
		t := result.Trace
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\ntrace: attempted=%t succeeded=%t score=%.2f fallback=%t reason=%s\n",
			t.ExternalCallAttempted, t.ExternalCallSucceeded, t.ValidationScore, t.FallbackUsed, t.FallbackReason)
	}
	return nil
}

// ABOUTME: Root CLI command with global flags for the clarify tool
// ABOUTME: Wires subcommands for extraction, clarification, serving, and stats
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clarify",
		Short: "Clarification question pipeline for poultry advisory assistants",
		Long: `clarify extracts structured facts (age, breed, sex, weight, symptoms)
from free-form farmer questions and generates clarification questions,
either via an external language model with validation or via a
deterministic template fallback.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")

	cmd.AddCommand(
		NewExtractCmd(),
		NewAskCmd(),
		NewServeCmd(),
		NewMCPCmd(),
		NewStatsCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

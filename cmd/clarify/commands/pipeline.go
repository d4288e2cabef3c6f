// ABOUTME: Shared pipeline construction for CLI commands
// ABOUTME: Builds lexicon, extractor, and generator from environment config
package commands

import (
	"log"

	"github.com/avicola/clarify/internal/clarify"
	"github.com/avicola/clarify/internal/config"
	"github.com/avicola/clarify/internal/extract"
	"github.com/avicola/clarify/internal/lexicon"
	"github.com/avicola/clarify/internal/llm"
)

// pipeline bundles the two core components plus their configuration.
type pipeline struct {
	cfg       *config.Config
	extractor *extract.Extractor
	generator *clarify.Generator
}

// buildPipeline constructs the extractor and generator from environment
// configuration. A missing API key is non-fatal: the generator runs with a
// nil completer and every call takes the deterministic fallback.
func buildPipeline() (*pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	lex := lexicon.New()

	var completer llm.Completer
	missingCredential := cfg.OpenAIKey == ""
	if !missingCredential {
		client, err := llm.NewOpenAIClient(cfg.OpenAIKey, cfg.ChatModel)
		if err != nil {
			// Degrade to fallback-only generation rather than failing startup.
			if verbose {
				log.Printf("Warning: OpenAI client unavailable: %v", err)
			}
		} else {
			completer = client
		}
	} else if verbose {
		log.Println("OPENAI_API_KEY not set - using deterministic fallback questions")
	}

	generator := clarify.New(lex, completer, clarify.Options{
		MaxQuestions:        cfg.MaxQuestions,
		ValidationThreshold: cfg.ValidationThreshold,
		Timeout:             cfg.Timeout,
		DisableFallback:     !cfg.FallbackEnabled,
		MissingCredential:   missingCredential,
	})

	return &pipeline{
		cfg:       cfg,
		extractor: extract.New(lex),
		generator: generator,
	}, nil
}

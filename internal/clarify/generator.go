// ABOUTME: Clarification question generator with model-driven and fallback paths
// ABOUTME: Every failure degrades to a deterministic result plus a descriptive trace
package clarify

import (
	"context"
	"fmt"
	"time"

	"github.com/avicola/clarify/internal/lexicon"
	"github.com/avicola/clarify/internal/llm"
	"github.com/avicola/clarify/internal/models"
)

const (
	// DefaultMaxQuestions caps the questions shown to the user per turn
	DefaultMaxQuestions = 4
	// DefaultThreshold is the mean-score gate for model-generated questions
	DefaultThreshold = 0.5
	// DefaultTimeout bounds the single external model call
	DefaultTimeout = 25 * time.Second
)

// Options configures a Generator. Zero values select the defaults above
// with fallback enabled.
type Options struct {
	MaxQuestions        int
	ValidationThreshold float64
	Timeout             time.Duration
	DisableFallback     bool
	// MissingCredential marks a nil completer as caused by an absent API
	// key, so the trace records api_key_missing instead of
	// openai_unavailable.
	MissingCredential bool
}

// Generator produces up to MaxQuestions clarification questions for one
// utterance. Stateless per call beyond the shared read-only lexicon; safe
// for concurrent use. A nil completer routes every call to the fallback.
type Generator struct {
	lex       *lexicon.Lexicon
	completer llm.Completer
	opts      Options
}

// New creates a Generator. completer may be nil when the external model
// dependency is unavailable.
func New(lex *lexicon.Lexicon, completer llm.Completer, opts Options) *Generator {
	if opts.MaxQuestions <= 0 {
		opts.MaxQuestions = DefaultMaxQuestions
	}
	if opts.ValidationThreshold <= 0 {
		opts.ValidationThreshold = DefaultThreshold
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Generator{lex: lex, completer: completer, opts: opts}
}

// Generate returns clarification questions for the utterance plus the
// trace describing how they were produced. It never returns an error:
// every failure mode degrades to the deterministic fallback (or to an
// empty list when fallback is disabled).
func (g *Generator) Generate(ctx context.Context, text, language string) *models.GeneratedQuestions {
	lang := models.NormalizeLanguage(language)
	var trace models.GenerationTrace

	if g.completer == nil {
		reason := models.FallbackOpenAIUnavailable
		if g.opts.MissingCredential {
			reason = models.FallbackAPIKeyMissing
		}
		return g.degrade(text, lang, reason, trace)
	}

	trace.ExternalCallAttempted = true
	raw, err := g.complete(ctx, g.lex.Templates.Prompt(lang, text))
	if err != nil {
		return g.degrade(text, lang, models.ExceptionReason(err), trace)
	}
	trace.ExternalCallSucceeded = true

	candidates := parseQuestions(raw, lang, g.opts.MaxQuestions, g.lex.Templates)
	trace.QuestionsGenerated = len(candidates)
	if len(candidates) == 0 {
		return g.degrade(text, lang, models.FallbackNoFinalQuestions, trace)
	}

	trace.ValidationPerformed = true
	scores := scoreQuestions(candidates, lang, g.lex.Templates)
	trace.ValidationScore = meanScore(scores)

	valid := make([]string, 0, len(candidates))
	for i, q := range candidates {
		if scores[i] >= validScore {
			valid = append(valid, q)
		}
	}
	trace.QuestionsValidated = len(valid)

	var final []string
	if trace.ValidationScore >= g.opts.ValidationThreshold {
		// Guarded: a passing mean with zero valid questions cannot occur
		// under the current scoring rule, but keep the original candidates
		// as the safety net against future scoring changes.
		final = valid
		if len(final) == 0 {
			final = candidates
		}
	} else if len(valid) > 0 {
		final = valid
	} else {
		return g.degrade(text, lang, models.FallbackValidationFailed, trace)
	}

	if len(final) == 0 {
		return g.degrade(text, lang, models.FallbackNoFinalQuestions, trace)
	}
	if len(final) > g.opts.MaxQuestions {
		final = final[:g.opts.MaxQuestions]
	}
	return &models.GeneratedQuestions{Questions: final, Trace: trace}
}

// complete runs the single bounded external call. Panics from the client
// are converted to errors so nothing propagates past Generate.
func (g *Generator) complete(ctx context.Context, prompt string) (raw string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("completer panic: %v", r)
		}
	}()
	cctx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()
	return g.completer.Complete(cctx, prompt)
}

// degrade finishes the call on the fallback path (or with an empty list
// when fallback is disabled), recording the reason either way.
func (g *Generator) degrade(text, lang, reason string, trace models.GenerationTrace) *models.GeneratedQuestions {
	trace.FallbackReason = reason
	if g.opts.DisableFallback {
		return &models.GeneratedQuestions{Questions: []string{}, Trace: trace}
	}
	trace.FallbackUsed = true
	questions := g.fallbackQuestions(text, lang)
	if len(questions) > g.opts.MaxQuestions {
		questions = questions[:g.opts.MaxQuestions]
	}
	return &models.GeneratedQuestions{Questions: questions, Trace: trace}
}

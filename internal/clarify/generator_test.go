// ABOUTME: Tests for the question generator's two paths and trace semantics
// ABOUTME: Uses canned completers so no live network dependency is needed
package clarify

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/avicola/clarify/internal/lexicon"
	"github.com/avicola/clarify/internal/models"
)

// fakeCompleter returns canned text or a canned error.
type fakeCompleter struct {
	text string
	err  error
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return f.text, f.err
}

// blockingCompleter waits for context cancellation, simulating a hung call.
type blockingCompleter struct{}

func (b *blockingCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func newGenerator(c interface {
	Complete(context.Context, string) (string, error)
}, opts Options) *Generator {
	return New(lexicon.New(), c, opts)
}

func TestGenerate_NilCompleterUsesFallback(t *testing.T) {
	g := New(lexicon.New(), nil, Options{})

	result := g.Generate(context.Background(), "Mes poulets ont la diarrhée", "fr")

	if !result.Trace.FallbackUsed {
		t.Error("FallbackUsed = false, want true")
	}
	if result.Trace.FallbackReason != models.FallbackOpenAIUnavailable {
		t.Errorf("FallbackReason = %q, want %q", result.Trace.FallbackReason, models.FallbackOpenAIUnavailable)
	}
	if result.Trace.ExternalCallAttempted {
		t.Error("ExternalCallAttempted = true, want false when dependency is missing")
	}
	if len(result.Questions) == 0 {
		t.Error("fallback should produce questions")
	}
}

func TestGenerate_FallbackDeterministic(t *testing.T) {
	g := New(lexicon.New(), nil, Options{})

	first := g.Generate(context.Background(), "Mes poulets ont la diarrhée", "fr")
	for i := 0; i < 5; i++ {
		got := g.Generate(context.Background(), "Mes poulets ont la diarrhée", "fr")
		if !reflect.DeepEqual(got.Questions, first.Questions) {
			t.Fatalf("fallback not deterministic: %v vs %v", got.Questions, first.Questions)
		}
	}
}

func TestGenerate_MissingCredentialReason(t *testing.T) {
	g := New(lexicon.New(), nil, Options{MissingCredential: true})

	result := g.Generate(context.Background(), "question", "fr")
	if result.Trace.FallbackReason != models.FallbackAPIKeyMissing {
		t.Errorf("FallbackReason = %q, want %q", result.Trace.FallbackReason, models.FallbackAPIKeyMissing)
	}
}

func TestGenerate_ExternalErrorRoutesToFallback(t *testing.T) {
	g := newGenerator(&fakeCompleter{err: errors.New("rate limited")}, Options{})

	result := g.Generate(context.Background(), "Mes poulets ont la diarrhée", "fr")

	if !result.Trace.ExternalCallAttempted {
		t.Error("ExternalCallAttempted = false, want true")
	}
	if result.Trace.ExternalCallSucceeded {
		t.Error("ExternalCallSucceeded = true, want false")
	}
	if !result.Trace.FallbackUsed {
		t.Error("FallbackUsed = false, want true")
	}
	if !strings.HasPrefix(result.Trace.FallbackReason, "exception:") {
		t.Errorf("FallbackReason = %q, want exception: prefix", result.Trace.FallbackReason)
	}
	if len(result.Questions) == 0 {
		t.Error("fallback should still produce questions")
	}
}

func TestGenerate_TimeoutIsBounded(t *testing.T) {
	g := newGenerator(&blockingCompleter{}, Options{Timeout: 20 * time.Millisecond})

	start := time.Now()
	result := g.Generate(context.Background(), "Mes poulets ont la diarrhée", "fr")
	elapsed := time.Since(start)

	if elapsed > 2*time.Second {
		t.Fatalf("Generate took %s, want bounded by timeout", elapsed)
	}
	if !result.Trace.FallbackUsed {
		t.Error("FallbackUsed = false, want true after timeout")
	}
	if !strings.HasPrefix(result.Trace.FallbackReason, "exception:") {
		t.Errorf("FallbackReason = %q, want exception: prefix", result.Trace.FallbackReason)
	}
}

func TestGenerate_SuccessfulModelPath(t *testing.T) {
	response := `{"questions": [
		"Quel est l'âge de vos poulets en jours ?",
		"Quelle est la race ou souche utilisée ?",
		"Quel aliment donnez-vous actuellement ?"
	]}`
	g := newGenerator(&fakeCompleter{text: response}, Options{})

	result := g.Generate(context.Background(), "Mes poulets sont petits", "fr")

	if result.Trace.FallbackUsed {
		t.Fatalf("FallbackUsed = true (reason %q), want false", result.Trace.FallbackReason)
	}
	if !result.Trace.ExternalCallSucceeded {
		t.Error("ExternalCallSucceeded = false, want true")
	}
	if !result.Trace.ValidationPerformed {
		t.Error("ValidationPerformed = false, want true")
	}
	if result.Trace.ValidationScore < 0.5 {
		t.Errorf("ValidationScore = %f, want >= 0.5", result.Trace.ValidationScore)
	}
	if len(result.Questions) != 3 {
		t.Errorf("len(Questions) = %d, want 3", len(result.Questions))
	}
	if result.Trace.QuestionsGenerated != 3 || result.Trace.QuestionsValidated != 3 {
		t.Errorf("generated/validated = %d/%d, want 3/3",
			result.Trace.QuestionsGenerated, result.Trace.QuestionsValidated)
	}
}

func TestGenerate_MixedScoresKeepValidSubset(t *testing.T) {
	// Scores {0.8, 0.8, 0.2}: mean 0.6 passes the gate, the weak question
	// is filtered out.
	response := `{"questions": [
		"Quel est l'âge par exemple de vos poulets ?",
		"Quelle est la race par exemple de vos poulets ?",
		"Par exemple ?"
	]}`
	g := newGenerator(&fakeCompleter{text: response}, Options{})

	result := g.Generate(context.Background(), "Mes poulets sont petits", "fr")

	if result.Trace.FallbackUsed {
		t.Fatalf("FallbackUsed = true (reason %q), want false", result.Trace.FallbackReason)
	}
	if result.Trace.ValidationScore < 0.55 || result.Trace.ValidationScore > 0.65 {
		t.Errorf("ValidationScore = %f, want ~0.6", result.Trace.ValidationScore)
	}
	if len(result.Questions) != 2 {
		t.Errorf("len(Questions) = %d, want the 2 valid questions", len(result.Questions))
	}
	if result.Trace.QuestionsValidated != 2 {
		t.Errorf("QuestionsValidated = %d, want 2", result.Trace.QuestionsValidated)
	}
}

func TestGenerate_AllLowScoresTriggerFallback(t *testing.T) {
	response := `{"questions": ["Par exemple ?", "Généralement ?", "Etc ?"]}`
	g := newGenerator(&fakeCompleter{text: response}, Options{})

	result := g.Generate(context.Background(), "Mes poulets ont la diarrhée", "fr")

	if !result.Trace.FallbackUsed {
		t.Fatal("FallbackUsed = false, want true for filler-only questions")
	}
	if result.Trace.FallbackReason != models.FallbackValidationFailed {
		t.Errorf("FallbackReason = %q, want %q", result.Trace.FallbackReason, models.FallbackValidationFailed)
	}
	if result.Trace.QuestionsValidated != 0 {
		t.Errorf("QuestionsValidated = %d, want 0", result.Trace.QuestionsValidated)
	}
}

func TestGenerate_NoParsableQuestions(t *testing.T) {
	g := newGenerator(&fakeCompleter{text: "Je ne peux pas aider avec cela."}, Options{})

	result := g.Generate(context.Background(), "Mes poulets ont la diarrhée", "fr")

	if !result.Trace.FallbackUsed {
		t.Fatal("FallbackUsed = false, want true")
	}
	if result.Trace.FallbackReason != models.FallbackNoFinalQuestions {
		t.Errorf("FallbackReason = %q, want %q", result.Trace.FallbackReason, models.FallbackNoFinalQuestions)
	}
}

func TestGenerate_MaxQuestionsRespected(t *testing.T) {
	response := `{"questions": [
		"Quel est l'âge de vos poulets en jours ?",
		"Quelle est la race ou souche utilisée ?",
		"Quel aliment donnez-vous actuellement ?",
		"Quelle est la température du bâtiment ?",
		"Quelle est la densité dans le poulailler ?",
		"Quel est le poids moyen observé en grammes ?"
	]}`

	tests := []struct {
		name string
		opts Options
		max  int
	}{
		{"default cap", Options{}, DefaultMaxQuestions},
		{"custom cap", Options{MaxQuestions: 2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGenerator(&fakeCompleter{text: response}, tt.opts)
			result := g.Generate(context.Background(), "Mes poulets sont petits", "fr")
			if len(result.Questions) > tt.max {
				t.Errorf("len(Questions) = %d, want <= %d", len(result.Questions), tt.max)
			}
		})
	}

	t.Run("fallback path", func(t *testing.T) {
		g := New(lexicon.New(), nil, Options{MaxQuestions: 2})
		result := g.Generate(context.Background(), "Mes poulets ont la diarrhée", "fr")
		if len(result.Questions) > 2 {
			t.Errorf("len(Questions) = %d, want <= 2 on fallback path", len(result.Questions))
		}
	})
}

func TestGenerate_DisabledFallbackReturnsEmpty(t *testing.T) {
	g := New(lexicon.New(), nil, Options{DisableFallback: true})

	result := g.Generate(context.Background(), "Mes poulets ont la diarrhée", "fr")

	if result.Trace.FallbackUsed {
		t.Error("FallbackUsed = true, want false when fallback is disabled")
	}
	if result.Trace.FallbackReason != models.FallbackOpenAIUnavailable {
		t.Errorf("FallbackReason = %q, want %q still recorded", result.Trace.FallbackReason, models.FallbackOpenAIUnavailable)
	}
	if len(result.Questions) != 0 {
		t.Errorf("len(Questions) = %d, want 0", len(result.Questions))
	}
}

func TestGenerate_PanickingCompleterIsContained(t *testing.T) {
	g := newGenerator(panicCompleter{}, Options{})

	result := g.Generate(context.Background(), "Mes poulets ont la diarrhée", "fr")

	if !result.Trace.FallbackUsed {
		t.Error("FallbackUsed = false, want true after completer panic")
	}
	if !strings.HasPrefix(result.Trace.FallbackReason, "exception:") {
		t.Errorf("FallbackReason = %q, want exception: prefix", result.Trace.FallbackReason)
	}
}

type panicCompleter struct{}

func (panicCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	panic("client bug")
}

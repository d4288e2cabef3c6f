// ABOUTME: Tests for the extract and ask commands
// ABOUTME: Runs the real pipeline with the API key cleared so output is deterministic
package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/avicola/clarify/internal/models"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) error: %v", args, err)
	}
	return out.String()
}

func TestExtractCmd(t *testing.T) {
	got := runCommand(t, "extract", "Mes Ross 308 de 21 jours ont la diarrhée")

	var facts models.ExtractedFacts
	if err := json.Unmarshal([]byte(got), &facts); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, got)
	}
	if facts.BreedSpecific != "Ross 308" {
		t.Errorf("BreedSpecific = %q, want Ross 308", facts.BreedSpecific)
	}
	if facts.AgeDays == nil || *facts.AgeDays != 21 {
		t.Errorf("AgeDays = %v, want 21", facts.AgeDays)
	}
}

func TestAskCmd_NumberedOutput(t *testing.T) {
	got := runCommand(t, "ask", "Mes poulets ont la diarrhée")

	if !strings.HasPrefix(got, "1. ") {
		t.Errorf("output should start with a numbered question:\n%s", got)
	}
	if !strings.Contains(got, "?") {
		t.Errorf("output should contain questions:\n%s", got)
	}
}

func TestAskCmd_JSONOutput(t *testing.T) {
	got := runCommand(t, "ask", "--json", "Mes poulets ont la diarrhée")

	var result models.GeneratedQuestions
	if err := json.Unmarshal([]byte(got), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, got)
	}
	if !result.Trace.FallbackUsed {
		t.Error("FallbackUsed = false, want true without an API key")
	}
	if result.Trace.FallbackReason != models.FallbackAPIKeyMissing {
		t.Errorf("FallbackReason = %q, want %q", result.Trace.FallbackReason, models.FallbackAPIKeyMissing)
	}
	if len(result.Questions) == 0 {
		t.Error("Questions should not be empty")
	}
}

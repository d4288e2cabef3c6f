// ABOUTME: Tests for model-response parsing
// ABOUTME: Covers the JSON path and the free-text recovery path
package clarify

import (
	"reflect"
	"testing"

	"github.com/avicola/clarify/internal/lexicon"
)

func TestParseQuestions_JSONObject(t *testing.T) {
	lex := lexicon.New()

	raw := `{"questions": ["Quel est l'âge de vos poulets en jours ?", "Quelle est la race utilisée ?"]}`
	got := parseQuestions(raw, "fr", 4, lex.Templates)

	want := []string{
		"Quel est l'âge de vos poulets en jours ?",
		"Quelle est la race utilisée ?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseQuestions() = %v, want %v", got, want)
	}
}

func TestParseQuestions_JSONEmbeddedInProse(t *testing.T) {
	lex := lexicon.New()

	raw := `Voici mes questions :
{"questions": ["Quel est l'âge de vos poulets en jours ?"]}
J'espère que cela aide.`
	got := parseQuestions(raw, "fr", 4, lex.Templates)

	if len(got) != 1 {
		t.Fatalf("parseQuestions() = %v, want 1 question from embedded JSON", got)
	}
}

func TestParseQuestions_JSONAppendsQuestionMark(t *testing.T) {
	lex := lexicon.New()

	raw := `{"questions": ["Quelle ration donnez-vous actuellement"]}`
	got := parseQuestions(raw, "fr", 4, lex.Templates)

	if len(got) != 1 || got[0] != "Quelle ration donnez-vous actuellement ?" {
		t.Errorf("parseQuestions() = %v, want terminal question mark appended", got)
	}
}

func TestParseQuestions_JSONSkipsBlankEntries(t *testing.T) {
	lex := lexicon.New()

	raw := `{"questions": ["", "  ", "Quel est l'âge de vos poulets en jours ?"]}`
	got := parseQuestions(raw, "fr", 4, lex.Templates)

	if len(got) != 1 {
		t.Errorf("parseQuestions() = %v, want blank entries dropped", got)
	}
}

func TestParseQuestions_JSONRespectsMax(t *testing.T) {
	lex := lexicon.New()

	raw := `{"questions": ["Quel est l'âge de vos poulets en jours ?",
		"Quelle est la race utilisée dans votre élevage ?",
		"Quel aliment donnez-vous actuellement à vos poulets ?"]}`
	got := parseQuestions(raw, "fr", 2, lex.Templates)

	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestParseQuestions_FreeTextRecovery(t *testing.T) {
	lex := lexicon.New()

	raw := `Voici mes suggestions :
1. Quel est l'âge de vos poulets en jours ?
2. Quelle est la race utilisée dans votre élevage ?
- Quel aliment donnez-vous actuellement

Merci de préciser.`
	got := parseQuestions(raw, "fr", 4, lex.Templates)

	want := []string{
		"Quel est l'âge de vos poulets en jours ?",
		"Quelle est la race utilisée dans votre élevage ?",
		"Quel aliment donnez-vous actuellement ?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseQuestions() = %v, want %v", got, want)
	}
}

func TestParseFreeText_DropsShortAndLongLines(t *testing.T) {
	lex := lexicon.New()

	raw := "Quel âge ?\n" + // below the minimum length
		"Quelle est la race utilisée dans votre élevage ?"
	got := parseFreeText(raw, "fr", 4, lex.Templates)

	if len(got) != 1 {
		t.Fatalf("parseFreeText() = %v, want short line dropped", got)
	}

	long := "Quelle est "
	for len([]rune(long)) < maxLineLen {
		long += "très "
	}
	long += "?"
	got = parseFreeText(long, "fr", 4, lex.Templates)
	if len(got) != 0 {
		t.Errorf("parseFreeText() = %v, want over-long line dropped", got)
	}
}

func TestParseFreeText_DeduplicatesLines(t *testing.T) {
	lex := lexicon.New()

	raw := `1. Quel est l'âge de vos poulets en jours ?
2. Quel est l'âge de vos poulets en jours ?`
	got := parseFreeText(raw, "fr", 4, lex.Templates)

	if len(got) != 1 {
		t.Errorf("parseFreeText() = %v, want duplicates removed", got)
	}
}

func TestParseFreeText_IgnoresNonInterrogativeLines(t *testing.T) {
	lex := lexicon.New()

	raw := `Je ne peux pas répondre sans plus de détails.
Voici des informations générales sur les poulets.`
	got := parseFreeText(raw, "fr", 4, lex.Templates)

	if len(got) != 0 {
		t.Errorf("parseFreeText() = %v, want no candidates from declarative prose", got)
	}
}

func TestEnsureQuestionMark(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Quel âge ont-ils ?", "Quel âge ont-ils ?"},
		{"Quel âge ont-ils", "Quel âge ont-ils ?"},
	}
	for _, tt := range tests {
		if got := ensureQuestionMark(tt.in); got != tt.want {
			t.Errorf("ensureQuestionMark(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

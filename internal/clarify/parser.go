// ABOUTME: Parses raw model output into candidate questions
// ABOUTME: JSON object first, then line-based free-text recovery
package clarify

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/avicola/clarify/internal/lexicon"
)

// Cleaned free-text lines outside [minLineLen, maxLineLen) are dropped.
const (
	minLineLen = 15
	maxLineLen = 150
)

var listMarkerRe = regexp.MustCompile(`^[\s\-\*•\d\.\)]+`)

// parseQuestions extracts up to max candidate questions from the raw model
// response. A malformed response is not an error state: when no JSON
// object decodes, recovery falls back to scanning free text for
// interrogative lines.
func parseQuestions(raw, lang string, max int, t *lexicon.Templates) []string {
	if qs := parseJSON(raw, max); len(qs) > 0 {
		return qs
	}
	return parseFreeText(raw, lang, max, t)
}

// parseJSON locates a JSON object substring and decodes its question array.
func parseJSON(raw string, max int) []string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil
	}

	var payload struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil
	}

	out := make([]string, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		out = append(out, ensureQuestionMark(q))
		if len(out) == max {
			break
		}
	}
	return out
}

// ensureQuestionMark appends a terminal question mark when missing.
func ensureQuestionMark(q string) string {
	if strings.HasSuffix(q, "?") {
		return q
	}
	return q + " ?"
}

// parseFreeText keeps lines that look like questions: they contain a
// question mark or a language-appropriate interrogative keyword, survive
// list-marker stripping, and land within the length bounds.
func parseFreeText(raw, lang string, max int, t *lexicon.Templates) []string {
	interrogatives := lexicon.ForLanguage(t.Interrogatives, lang)
	seen := make(map[string]bool)
	var out []string

	for _, line := range strings.Split(raw, "\n") {
		clean := strings.TrimSpace(listMarkerRe.ReplaceAllString(line, ""))
		if clean == "" {
			continue
		}
		if !isInterrogative(clean, interrogatives) {
			continue
		}
		n := len([]rune(clean))
		if n < minLineLen || n >= maxLineLen {
			continue
		}
		if seen[clean] {
			continue
		}
		seen[clean] = true
		out = append(out, ensureQuestionMark(clean))
		if len(out) == max {
			break
		}
	}
	return out
}

func isInterrogative(line string, interrogatives []string) bool {
	if strings.Contains(line, "?") {
		return true
	}
	lower := strings.ToLower(line)
	for _, kw := range interrogatives {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ABOUTME: Heuristic quality scoring for model-generated questions
// ABOUTME: Length, punctuation, vagueness, and domain-vocabulary checks
package clarify

import (
	"strings"

	"github.com/avicola/clarify/internal/lexicon"
)

// validScore is the per-question acceptance bar.
const validScore = 0.5

// Scoring weights. A question collects points for being well-sized,
// punctuated as a question, free of filler phrases, and anchored in
// domain vocabulary.
const (
	lengthWeight    = 0.3
	questionWeight  = 0.2
	vaguenessWeight = 0.2
	technicalWeight = 0.3

	scoredMinLen = 20
	scoredMaxLen = 150
)

// scoreQuestion rates one candidate question in [0, 1].
func scoreQuestion(q, lang string, t *lexicon.Templates) float64 {
	score := 0.0
	lower := strings.ToLower(q)

	if n := len([]rune(q)); n >= scoredMinLen && n <= scoredMaxLen {
		score += lengthWeight
	}
	if strings.Contains(q, "?") {
		score += questionWeight
	}
	if !containsAny(lower, lexicon.ForLanguage(t.VaguePhrases, lang)) {
		score += vaguenessWeight
	}
	if containsAny(lower, lexicon.ForLanguage(t.TechnicalTerms, lang)) {
		score += technicalWeight
	}
	return score
}

// scoreQuestions rates every candidate, preserving order.
func scoreQuestions(questions []string, lang string, t *lexicon.Templates) []float64 {
	scores := make([]float64, len(questions))
	for i, q := range questions {
		scores[i] = scoreQuestion(q, lang, t)
	}
	return scores
}

// meanScore is the overall validation score: the mean of all per-question
// scores, 0 when there are no candidates.
func meanScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

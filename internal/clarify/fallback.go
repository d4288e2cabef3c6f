// ABOUTME: Deterministic template-based question generation
// ABOUTME: Keyword-keyed fact slots rendered per language, no external calls
package clarify

import (
	"strings"

	"github.com/avicola/clarify/internal/lexicon"
)

// fallbackQuestions classifies the utterance by keyword category and
// renders one template question per required fact slot, then fills the
// remaining slots in fixed order. Identical input always yields the same
// ordered list.
func (g *Generator) fallbackQuestions(text, lang string) []string {
	lower := strings.ToLower(text)
	t := g.lex.Templates

	category := g.classify(lower)
	if category == nil {
		generic := lexicon.ForLanguage(t.Generic, lang)
		out := make([]string, len(generic))
		copy(out, generic)
		return out
	}

	slotQuestions := t.SlotQuestionsFor(lang)
	seen := make(map[string]bool)
	var out []string

	add := func(slot lexicon.Slot) {
		q, ok := slotQuestions[slot]
		if !ok || seen[q] {
			return
		}
		seen[q] = true
		out = append(out, q)
	}

	for _, slot := range category.Slots {
		add(slot)
	}
	for _, slot := range g.lex.SlotOrder {
		add(slot)
	}
	return out
}

// classify returns the first fallback category with a keyword present in
// the utterance, or nil when none matches.
func (g *Generator) classify(lower string) *lexicon.FallbackCategory {
	for i := range g.lex.FallbackCategories {
		cat := &g.lex.FallbackCategories[i]
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				return cat
			}
		}
	}
	return nil
}

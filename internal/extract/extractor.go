// ABOUTME: Entity extractor turning raw utterances into structured fact records
// ABOUTME: Pure pattern matching and unit normalization; fail-open, never panics
package extract

import (
	"strconv"
	"strings"

	"github.com/avicola/clarify/internal/lexicon"
	"github.com/avicola/clarify/internal/models"
)

// Age and weight plausibility bounds. Matches outside these are discarded
// and scanning continues with the next pattern.
const (
	minAgeDays  = 1
	maxAgeDays  = 500
	minAgeWeeks = 1
	maxAgeWeeks = 80
	minGrams    = 1.0
	maxGrams    = 10000.0
)

// Extractor maps one utterance to an ExtractedFacts record. Stateless per
// call beyond the shared read-only lexicon; safe for concurrent use.
type Extractor struct {
	lex *lexicon.Lexicon
}

// New creates an Extractor over the given lexicon.
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract parses the utterance into a fact record. It never panics to the
// caller: any internal fault yields an empty record, since downstream
// consumers treat missing facts as "unknown" rather than as an error.
func (e *Extractor) Extract(text string) (facts *models.ExtractedFacts) {
	facts = models.NewExtractedFacts()
	defer func() {
		if r := recover(); r != nil {
			facts = models.NewExtractedFacts()
		}
	}()

	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return facts
	}

	e.extractAge(lower, facts)
	e.extractBreed(lower, facts)
	e.extractSex(lower, facts)
	e.extractWeight(lower, facts)
	e.extractSymptoms(lower, facts)
	e.extractContext(lower, facts)
	e.normalize(facts)
	return facts
}

func (e *Extractor) extractAge(text string, f *models.ExtractedFacts) {
	for _, re := range e.lex.AgeDayPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n >= minAgeDays && n <= maxAgeDays {
			f.AgeDays = &n
			break
		}
	}
	for _, re := range e.lex.AgeWeekPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n >= minAgeWeeks && n <= maxAgeWeeks {
			f.AgeWeeks = &n
			break
		}
	}
	for _, stage := range e.lex.AgeStages {
		if strings.Contains(text, stage.Alias) {
			f.AgeStage = stage.Canonical
			break
		}
	}
}

func (e *Extractor) extractBreed(text string, f *models.ExtractedFacts) {
	for _, alias := range e.lex.BreedAliases {
		if strings.Contains(text, alias.Alias) {
			f.BreedSpecific = alias.Canonical
			break
		}
	}
	if f.BreedSpecific == "" {
		for _, re := range e.lex.NumberedBreeds {
			if span := re.FindString(text); span != "" {
				f.BreedSpecific = titleCase(span)
				break
			}
		}
	}
	// Generic breed is an independent scan; both fields may be populated.
	for _, kw := range e.lex.GenericBreeds {
		if strings.Contains(text, kw) {
			f.BreedGeneric = kw
			break
		}
	}
}

func (e *Extractor) extractSex(text string, f *models.ExtractedFacts) {
	for _, group := range e.lex.SexGroups {
		for _, re := range group.Patterns {
			if re.MatchString(text) {
				f.Sex = group.Sex
				return
			}
		}
	}
}

func (e *Extractor) extractWeight(text string, f *models.ExtractedFacts) {
	for _, kw := range e.lex.WeightKeywords {
		if strings.Contains(text, kw) {
			f.WeightMentioned = true
			break
		}
	}
	for _, wp := range e.lex.WeightPatterns {
		m := wp.Re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err != nil {
			continue
		}
		grams := v * wp.Factor
		if grams < minGrams || grams > maxGrams {
			continue
		}
		f.WeightGrams = &grams
		if wp.HasUnit {
			f.WeightUnit = m[2]
		}
		break
	}
}

func (e *Extractor) extractSymptoms(text string, f *models.ExtractedFacts) {
	seen := make(map[string]bool)
	for _, cat := range e.lex.Symptoms {
		for _, kw := range cat.Keywords {
			if strings.Contains(text, kw) && !seen[kw] {
				seen[kw] = true
				f.Symptoms = append(f.Symptoms, kw)
			}
		}
	}
}

func (e *Extractor) extractContext(text string, f *models.ExtractedFacts) {
	for _, bucket := range e.lex.ContextBuckets {
		for _, kw := range bucket.Keywords {
			if strings.Contains(text, kw) {
				f.ContextType = bucket.Type
				break
			}
		}
		if f.ContextType != "" {
			break
		}
	}
	for _, kw := range e.lex.HousingKeywords {
		if strings.Contains(text, kw) {
			f.HousingConditions = kw
			break
		}
	}
	for _, kw := range e.lex.FeedingKeywords {
		if strings.Contains(text, kw) {
			f.FeedingContext = kw
			break
		}
	}
}

// normalize is the post-processing pass: derive the missing age field,
// re-normalize sex through the synonym table, settle the context default,
// and make the weight flag consistent with the extracted value.
func (e *Extractor) normalize(f *models.ExtractedFacts) {
	switch {
	case f.AgeDays != nil && f.AgeWeeks == nil:
		w := *f.AgeDays / 7
		if w >= minAgeWeeks && w <= maxAgeWeeks {
			f.AgeWeeks = &w
		}
	case f.AgeWeeks != nil && f.AgeDays == nil:
		d := *f.AgeWeeks * 7
		if d >= minAgeDays && d <= maxAgeDays {
			f.AgeDays = &d
		}
	}

	if f.Sex != "" {
		if canon, ok := e.lex.SexSynonyms[string(f.Sex)]; ok {
			f.Sex = canon
		}
	}

	if f.ContextType == "" {
		if len(f.Symptoms) > 0 {
			f.ContextType = models.ContextHealth
		} else {
			f.ContextType = models.ContextGeneral
		}
	}

	if f.WeightGrams != nil {
		f.WeightMentioned = true
	}
}

// titleCase capitalizes each whitespace-separated word of a matched breed
// span, collapsing internal whitespace ("ross  308" -> "Ross 308").
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

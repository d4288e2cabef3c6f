// ABOUTME: ExtractedFacts represents structured facts pulled from one user utterance
// ABOUTME: All fields are optional; absent means "unknown", never fabricated
package models

// Sex is the normalized sex of the flock mentioned in an utterance.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexMixed  Sex = "mixed"
)

// ContextType buckets an utterance into a single advisory topic.
type ContextType string

const (
	ContextPerformance ContextType = "performance"
	ContextHealth      ContextType = "health"
	ContextFeeding     ContextType = "feeding"
	ContextHousing     ContextType = "housing"
	ContextGeneral     ContextType = "general"
)

// ExtractedFacts is the structured output of the entity extractor for one
// utterance. It is created fresh per call and never mutated after return.
type ExtractedFacts struct {
	AgeDays           *int        `json:"age_days,omitempty"`
	AgeWeeks          *int        `json:"age_weeks,omitempty"`
	AgeStage          string      `json:"age_stage,omitempty"`
	BreedSpecific     string      `json:"breed_specific,omitempty"`
	BreedGeneric      string      `json:"breed_generic,omitempty"`
	Sex               Sex         `json:"sex,omitempty"`
	WeightMentioned   bool        `json:"weight_mentioned"`
	WeightGrams       *float64    `json:"weight_grams,omitempty"`
	WeightUnit        string      `json:"weight_unit,omitempty"`
	Symptoms          []string    `json:"symptoms"`
	ContextType       ContextType `json:"context_type,omitempty"`
	HousingConditions string      `json:"housing_conditions,omitempty"`
	FeedingContext    string      `json:"feeding_context,omitempty"`
}

// NewExtractedFacts returns an empty fact record with all fields at their
// "unknown" value. This is also the fail-open result of the extractor.
func NewExtractedFacts() *ExtractedFacts {
	return &ExtractedFacts{Symptoms: []string{}}
}

// HasAge reports whether any age information was found.
func (f *ExtractedFacts) HasAge() bool {
	return f.AgeDays != nil || f.AgeWeeks != nil || f.AgeStage != ""
}

// HasBreed reports whether any breed information was found.
func (f *ExtractedFacts) HasBreed() bool {
	return f.BreedSpecific != "" || f.BreedGeneric != ""
}

// FieldCount returns how many fact fields carry a value, used by the stats
// collector to summarize extraction yield without storing the utterance.
func (f *ExtractedFacts) FieldCount() int {
	n := 0
	if f.AgeDays != nil {
		n++
	}
	if f.AgeWeeks != nil {
		n++
	}
	if f.AgeStage != "" {
		n++
	}
	if f.BreedSpecific != "" {
		n++
	}
	if f.BreedGeneric != "" {
		n++
	}
	if f.Sex != "" {
		n++
	}
	if f.WeightMentioned {
		n++
	}
	if f.WeightGrams != nil {
		n++
	}
	if len(f.Symptoms) > 0 {
		n++
	}
	if f.ContextType != "" {
		n++
	}
	if f.HousingConditions != "" {
		n++
	}
	if f.FeedingContext != "" {
		n++
	}
	return n
}

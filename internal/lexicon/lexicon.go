// ABOUTME: Fixed domain tables for the poultry clarification pipeline
// ABOUTME: Alias tables, regex pattern sets, and keyword buckets built once at startup
package lexicon

import (
	"regexp"

	"github.com/avicola/clarify/internal/models"
)

// AliasEntry maps one lowercase alias to its canonical form. Entries are
// scanned in order, so multi-word forms come before compact ones.
type AliasEntry struct {
	Alias     string
	Canonical string
}

// WeightPattern extracts a numeric weight. Group 1 is the number, group 2
// (when present) the unit token. Factor converts the value to grams.
type WeightPattern struct {
	Re      *regexp.Regexp
	Factor  float64
	HasUnit bool
}

// SexGroup is one ordered group of word-boundary patterns for a sex value.
type SexGroup struct {
	Sex      models.Sex
	Patterns []*regexp.Regexp
}

// SymptomCategory groups symptom keywords under one clinical category.
type SymptomCategory struct {
	Name     string
	Keywords []string
}

// ContextBucket is one keyword bucket of the context-type classifier.
// Buckets are checked in slice order; the first match wins.
type ContextBucket struct {
	Type     models.ContextType
	Keywords []string
}

// Slot identifies one kind of missing fact a fallback question asks about.
type Slot string

const (
	SlotBreed    Slot = "breed"
	SlotAge      Slot = "age"
	SlotSymptoms Slot = "symptoms"
	SlotWeight   Slot = "weight"
	SlotHousing  Slot = "housing"
)

// FallbackCategory maps a keyword class of utterances to the ordered fact
// slots a deterministic fallback question set should cover first.
type FallbackCategory struct {
	Name     string
	Keywords []string
	Slots    []Slot
}

// Lexicon holds every fixed table the extractor and generator consume.
// Built once by New and shared by reference; never mutated afterwards.
type Lexicon struct {
	AgeDayPatterns  []*regexp.Regexp
	AgeWeekPatterns []*regexp.Regexp
	AgeStages       []AliasEntry // keyword -> canonical lifecycle stage

	BreedAliases   []AliasEntry
	NumberedBreeds []*regexp.Regexp
	GenericBreeds  []string

	SexGroups   []SexGroup
	SexSynonyms map[string]models.Sex

	WeightKeywords []string
	WeightPatterns []WeightPattern

	Symptoms []SymptomCategory

	ContextBuckets  []ContextBucket
	HousingKeywords []string
	FeedingKeywords []string

	SlotOrder          []Slot
	FallbackCategories []FallbackCategory
	Templates          *Templates
}

// New builds the full lexicon. Call once at startup and pass by reference.
func New() *Lexicon {
	return &Lexicon{
		AgeDayPatterns: compileAll(
			`(\d+)\s*jours?\b`,
			`(\d+)\s*days?\b`,
			`\bjour\s*(\d+)`,
			`\bday\s*(\d+)`,
			`\bj\s?(\d+)\b`,
			`\b(\d+)\s?j\b`,
		),
		AgeWeekPatterns: compileAll(
			`(\d+)\s*semaines?\b`,
			`(\d+)\s*weeks?\b`,
			`\bsemaine\s*(\d+)`,
			`\bweek\s*(\d+)`,
			`\bs\s?(\d+)\b`,
			`\b(\d+)\s?s\b`,
		),
		AgeStages: []AliasEntry{
			{"pré-démarrage", "pre-starter"},
			{"pre-starter", "pre-starter"},
			{"démarrage", "starter"},
			{"demarrage", "starter"},
			{"starter", "starter"},
			{"croissance", "grower"},
			{"grower", "grower"},
			{"finition", "finisher"},
			{"finisher", "finisher"},
			{"ponte", "laying"},
			{"laying", "laying"},
			{"pondeuse", "laying"},
			{"poussin", "chick"},
			{"chick", "chick"},
		},
		BreedAliases: []AliasEntry{
			{"ross 308", "Ross 308"},
			{"ross308", "Ross 308"},
			{"ross 708", "Ross 708"},
			{"ross708", "Ross 708"},
			{"cobb 500", "Cobb 500"},
			{"cobb500", "Cobb 500"},
			{"cobb 700", "Cobb 700"},
			{"cobb700", "Cobb 700"},
			{"hubbard", "Hubbard"},
			{"isa brown", "ISA Brown"},
			{"isabrown", "ISA Brown"},
			{"lohmann brown", "Lohmann Brown"},
			{"lohmann lsl", "Lohmann LSL"},
			{"hy-line brown", "Hy-Line Brown"},
			{"hyline brown", "Hy-Line Brown"},
			{"hy-line w36", "Hy-Line W-36"},
			{"novogen", "Novogen"},
			{"sasso", "Sasso"},
		},
		NumberedBreeds: compileAll(
			`ross\s*\d+`,
			`cobb\s*\d+`,
			`hy[-\s]*line\s*\w+`,
			`lohmann\s*\w+`,
		),
		GenericBreeds: []string{
			"poulet de chair", "broiler", "chair",
			"pondeuse", "layer", "poule pondeuse",
			"poulet", "poule", "chicken", "hen",
			"coq", "rooster", "dinde", "turkey",
			"canard", "duck", "pintade", "guinea fowl",
		},
		SexGroups: []SexGroup{
			{models.SexMale, compileAll(
				`\bm[âa]les?\b`, `\bcoqs?\b`, `\broosters?\b`, `\bcockerels?\b`, `\bmachos?\b`,
			)},
			{models.SexFemale, compileAll(
				`\bfemelles?\b`, `\bfemales?\b`, `\bpoulettes?\b`, `\bpullets?\b`, `\bhens?\b`, `\bhembras?\b`,
			)},
			{models.SexMixed, compileAll(
				`\bmixtes?\b`, `\bmixed\b`, `\bas[-\s]hatched\b`, `\bstraight[-\s]run\b`, `\bmixtos?\b`,
			)},
		},
		SexSynonyms: map[string]models.Sex{
			"male": models.SexMale, "mâle": models.SexMale, "coq": models.SexMale,
			"female": models.SexFemale, "femelle": models.SexFemale, "poulette": models.SexFemale,
			"mixed": models.SexMixed, "mixte": models.SexMixed,
		},
		WeightKeywords: []string{
			"poids", "pèse", "pèsent", "pesée", "peser",
			"weight", "weigh", "weighs",
			"kg", "kilo", "gramme", "gram",
		},
		WeightPatterns: []WeightPattern{
			{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(kg|kilos?|kilogrammes?|kilograms?)\b`), 1000, true},
			{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(lbs?|pounds?|livres?)\b`), 453.592, true},
			{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(grammes?|grams?|gr|g)\b`), 1, true},
			{regexp.MustCompile(`p[èe]sent?\s+(\d+(?:[.,]\d+)?)`), 1, false},
			{regexp.MustCompile(`weighs?\s+(\d+(?:[.,]\d+)?)`), 1, false},
		},
		Symptoms: []SymptomCategory{
			{"digestive", []string{
				"diarrhée", "diarrhea", "fientes liquides", "selles molles", "droppings",
			}},
			{"respiratory", []string{
				"toux", "cough", "éternuement", "sneezing", "râles",
				"respiration difficile", "gasping", "jetage",
			}},
			{"mortality", []string{
				"mortalité", "mortality", "morts", "meurent", "dying", "mort subite",
			}},
			{"behavior", []string{
				"léthargie", "lethargy", "apathie", "prostration", "abattu", "listless",
				"ne mangent pas", "not eating",
			}},
			{"growth", []string{
				"retard de croissance", "croissance lente", "stunted", "slow growth",
				"perte de poids", "weight loss", "hétérogénéité",
			}},
			{"appearance", []string{
				"plumes hérissées", "ruffled feathers", "boiterie", "lameness",
				"paralysie", "paralysis", "crête pâle", "pale comb",
			}},
		},
		ContextBuckets: []ContextBucket{
			{models.ContextPerformance, []string{
				"performance", "fcr", "indice de consommation", "gain de poids",
				"weight gain", "rendement", "conversion", "gmq",
			}},
			{models.ContextHealth, []string{
				"malade", "maladie", "sick", "disease", "symptôme", "symptom",
				"traitement", "treatment", "vaccin", "vaccine", "mortalité", "mortality",
			}},
			{models.ContextFeeding, []string{
				"aliment", "feed", "ration", "nourriture", "alimentation",
				"nutrition", "abreuvement", "eau de boisson",
			}},
			{models.ContextHousing, []string{
				"bâtiment", "poulailler", "house", "litière", "litter",
				"température", "temperature", "ventilation", "densité", "density",
			}},
		},
		HousingKeywords: []string{
			"litière", "litter", "ventilation", "température", "temperature",
			"chauffage", "heating", "densité", "density", "bâtiment", "poulailler",
			"cage", "plein air", "free-range", "sol",
		},
		FeedingKeywords: []string{
			"pré-démarrage", "pre-starter", "démarrage", "starter",
			"croissance", "grower", "finition", "finisher",
			"granulés", "pellets", "miettes", "crumble", "farine", "mash",
		},
		SlotOrder: []Slot{SlotBreed, SlotAge, SlotSymptoms, SlotWeight, SlotHousing},
		FallbackCategories: []FallbackCategory{
			{
				Name: "growth",
				Keywords: []string{
					"croissance", "growth", "poids", "weight", "gain",
					"grossissent", "grandir", "petits", "légers", "crecimiento", "peso",
				},
				Slots: []Slot{SlotBreed, SlotAge, SlotWeight},
			},
			{
				Name: "health",
				Keywords: []string{
					"malade", "maladie", "diarrhée", "mortalité", "morts", "meurent",
					"sick", "disease", "diarrhea", "mortality", "dying",
					"symptôme", "symptom", "enferm", "diarrea", "mortalidad",
				},
				Slots: []Slot{SlotBreed, SlotAge, SlotSymptoms},
			},
			{
				Name: "environment",
				Keywords: []string{
					"température", "temperature", "chaleur", "froid", "chaud",
					"ventilation", "litière", "litter", "heat", "cold",
					"humidité", "humidity", "temperatura", "calor",
				},
				Slots: []Slot{SlotAge, SlotHousing, SlotBreed},
			},
		},
		Templates: newTemplates(),
	}
}

func compileAll(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		res[i] = regexp.MustCompile(e)
	}
	return res
}

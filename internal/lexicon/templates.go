// ABOUTME: Per-language prompt and question templates for the generator
// ABOUTME: Covers fr/en/es with French as the default template set
package lexicon

import (
	"fmt"

	"github.com/avicola/clarify/internal/models"
)

// Templates holds every per-language text table the question generator
// needs: model prompts, free-text parsing hints, validation vocabulary,
// and the deterministic fallback question sets.
type Templates struct {
	prompts        map[string]string
	Interrogatives map[string][]string
	VaguePhrases   map[string][]string
	TechnicalTerms map[string][]string
	SlotQuestions  map[string]map[Slot]string
	Generic        map[string][]string
}

// Prompt renders the model instruction prompt for the given language,
// embedding the raw user text. Unknown languages use the default set.
func (t *Templates) Prompt(language, userText string) string {
	tmpl, ok := t.prompts[language]
	if !ok {
		tmpl = t.prompts[models.DefaultLanguage]
	}
	return fmt.Sprintf(tmpl, userText)
}

// ForLanguage returns the list stored under the language, falling back to
// the default language when the table has no entry.
func ForLanguage(table map[string][]string, language string) []string {
	if v, ok := table[language]; ok {
		return v
	}
	return table[models.DefaultLanguage]
}

// SlotQuestionsFor returns the slot template table for the language.
func (t *Templates) SlotQuestionsFor(language string) map[Slot]string {
	if v, ok := t.SlotQuestions[language]; ok {
		return v
	}
	return t.SlotQuestions[models.DefaultLanguage]
}

func newTemplates() *Templates {
	return &Templates{
		prompts: map[string]string{
			models.LangFrench: `Tu es un expert en production avicole qui aide un éleveur.

Question de l'éleveur : "%s"

Avant de répondre, tu dois clarifier la situation. Génère 2 à 4 questions
de clarification courtes et précises (race, âge, symptômes, conditions
d'élevage, alimentation) adaptées à cette question.

Réponds UNIQUEMENT avec un objet JSON de la forme :
{"questions": ["question 1", "question 2"]}`,
			models.LangEnglish: `You are a poultry production expert assisting a farmer.

Farmer's question: "%s"

Before answering, you need to clarify the situation. Generate 2 to 4 short,
specific clarification questions (breed, age, symptoms, housing conditions,
feeding) tailored to this question.

Reply ONLY with a JSON object of the form:
{"questions": ["question 1", "question 2"]}`,
			models.LangSpanish: `Eres un experto en producción avícola que ayuda a un criador.

Pregunta del criador: "%s"

Antes de responder, necesitas aclarar la situación. Genera de 2 a 4
preguntas de aclaración cortas y precisas (raza, edad, síntomas,
condiciones de alojamiento, alimentación) adaptadas a esta pregunta.

Responde SOLO con un objeto JSON de la forma:
{"questions": ["pregunta 1", "pregunta 2"]}`,
		},
		Interrogatives: map[string][]string{
			models.LangFrench:  {"quel", "quelle", "quels", "quelles", "combien", "comment", "pourquoi", "où", "quand", "est-ce"},
			models.LangEnglish: {"what", "which", "how", "why", "when", "where", "who", "do you", "are you", "have you"},
			models.LangSpanish: {"qué", "cuál", "cuáles", "cuánto", "cuántos", "cómo", "por qué", "dónde", "cuándo"},
		},
		VaguePhrases: map[string][]string{
			models.LangFrench:  {"par exemple", "généralement", "en général", "d'habitude", "habituellement", "etc"},
			models.LangEnglish: {"for example", "generally", "in general", "usually", "typically", "etc"},
			models.LangSpanish: {"por ejemplo", "generalmente", "en general", "normalmente", "usualmente", "etc"},
		},
		TechnicalTerms: map[string][]string{
			models.LangFrench: {
				"race", "souche", "ross", "cobb", "hubbard", "isa", "lohmann",
				"âge", "jours", "semaines", "poids", "gramme", "kg",
				"température", "ventilation", "litière", "densité",
				"symptôme", "diarrhée", "mortalité", "vaccin", "aliment", "ration",
			},
			models.LangEnglish: {
				"breed", "strain", "ross", "cobb", "hubbard", "isa", "lohmann",
				"age", "days", "weeks", "weight", "gram", "kg",
				"temperature", "ventilation", "litter", "density",
				"symptom", "diarrhea", "mortality", "vaccine", "feed", "ration",
			},
			models.LangSpanish: {
				"raza", "estirpe", "ross", "cobb", "hubbard", "isa", "lohmann",
				"edad", "días", "semanas", "peso", "gramo", "kg",
				"temperatura", "ventilación", "cama", "densidad",
				"síntoma", "diarrea", "mortalidad", "vacuna", "alimento", "ración",
			},
		},
		SlotQuestions: map[string]map[Slot]string{
			models.LangFrench: {
				SlotBreed:    "Quelle est la race ou souche de vos poulets (Ross 308, Cobb 500, etc.) ?",
				SlotAge:      "Quel est l'âge de vos poulets, en jours ou en semaines ?",
				SlotSymptoms: "Quels symptômes précis observez-vous sur vos poulets ?",
				SlotWeight:   "Quel est le poids moyen actuel de vos poulets ?",
				SlotHousing:  "Dans quelles conditions sont logés vos poulets (température, litière, densité) ?",
			},
			models.LangEnglish: {
				SlotBreed:    "What breed or strain are your chickens (Ross 308, Cobb 500, etc.)?",
				SlotAge:      "How old are your chickens, in days or weeks?",
				SlotSymptoms: "What exact symptoms are you observing in your chickens?",
				SlotWeight:   "What is the current average weight of your chickens?",
				SlotHousing:  "What are the housing conditions (temperature, litter, stocking density)?",
			},
			models.LangSpanish: {
				SlotBreed:    "¿Qué raza o estirpe son sus pollos (Ross 308, Cobb 500, etc.)?",
				SlotAge:      "¿Qué edad tienen sus pollos, en días o semanas?",
				SlotSymptoms: "¿Qué síntomas exactos observa en sus pollos?",
				SlotWeight:   "¿Cuál es el peso promedio actual de sus pollos?",
				SlotHousing:  "¿En qué condiciones están alojados sus pollos (temperatura, cama, densidad)?",
			},
		},
		Generic: map[string][]string{
			models.LangFrench: {
				"Pouvez-vous préciser l'âge et la race de vos poulets ?",
				"Depuis combien de temps observez-vous cette situation ?",
				"Combien de poulets sont concernés dans votre élevage ?",
				"Quel type d'aliment distribuez-vous actuellement ?",
			},
			models.LangEnglish: {
				"Can you specify the age and breed of your chickens?",
				"How long have you been observing this situation?",
				"How many chickens in your flock are affected?",
				"What type of feed are you currently giving?",
			},
			models.LangSpanish: {
				"¿Puede precisar la edad y la raza de sus pollos?",
				"¿Desde hace cuánto tiempo observa esta situación?",
				"¿Cuántos pollos de su lote están afectados?",
				"¿Qué tipo de alimento está dando actualmente?",
			},
		},
	}
}

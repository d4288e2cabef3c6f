// ABOUTME: GeneratedQuestions bundles clarification questions with their generation trace
// ABOUTME: The trace is a first-class output so callers can assert which path ran
package models

// Fallback reasons recorded in GenerationTrace.FallbackReason. Exception
// routes use ExceptionReason to carry the error description.
const (
	FallbackOpenAIUnavailable = "openai_unavailable"
	FallbackAPIKeyMissing     = "api_key_missing"
	FallbackValidationFailed  = "validation_failed"
	FallbackNoFinalQuestions  = "no_final_questions"
)

// ExceptionReason tags a fallback caused by an external-call failure with
// the error description, e.g. "exception:context deadline exceeded".
func ExceptionReason(err error) string {
	return "exception:" + err.Error()
}

// GenerationTrace records how a set of questions was produced. Callers and
// tests depend on it to assert which generation path was taken and why.
type GenerationTrace struct {
	ExternalCallAttempted bool    `json:"external_call_attempted"`
	ExternalCallSucceeded bool    `json:"external_call_succeeded"`
	ValidationPerformed   bool    `json:"validation_performed"`
	ValidationScore       float64 `json:"validation_score"`
	FallbackUsed          bool    `json:"fallback_used"`
	FallbackReason        string  `json:"fallback_reason,omitempty"`
	QuestionsGenerated    int     `json:"questions_generated"`
	QuestionsValidated    int     `json:"questions_validated"`
}

// GeneratedQuestions is the output of one Generate call: an ordered list of
// clarification questions (presentation order) plus the trace.
type GeneratedQuestions struct {
	Questions []string        `json:"questions"`
	Trace     GenerationTrace `json:"trace"`
}

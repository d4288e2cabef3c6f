// ABOUTME: Language normalization for the clarification pipeline
// ABOUTME: Maps arbitrary caller language tags onto the supported set (fr/en/es)
package models

import "strings"

// Supported languages. French is the default: the advisory deployment
// audience is francophone and all template tables are French-first.
const (
	LangFrench  = "fr"
	LangEnglish = "en"
	LangSpanish = "es"
)

// DefaultLanguage is used when the caller's language tag is unrecognized.
const DefaultLanguage = LangFrench

// NormalizeLanguage maps caller-supplied language tags ("fr", "fr-FR",
// "French", ...) to one of the supported languages, defaulting to French.
func NormalizeLanguage(lang string) string {
	tag := strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	switch tag {
	case "fr", "fra", "fre", "french", "français", "francais":
		return LangFrench
	case "en", "eng", "english", "anglais":
		return LangEnglish
	case "es", "spa", "spanish", "español", "espanol", "espagnol":
		return LangSpanish
	default:
		return DefaultLanguage
	}
}

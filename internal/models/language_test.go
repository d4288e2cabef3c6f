// ABOUTME: Tests for language tag normalization
// ABOUTME: Covers region tags, synonyms, and the French default
package models

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"fr", LangFrench},
		{"FR", LangFrench},
		{"fr-FR", LangFrench},
		{"fr_CA", LangFrench},
		{"French", LangFrench},
		{"français", LangFrench},
		{"en", LangEnglish},
		{"en-US", LangEnglish},
		{"English", LangEnglish},
		{"anglais", LangEnglish},
		{"es", LangSpanish},
		{"es_MX", LangSpanish},
		{"español", LangSpanish},
		{"  en  ", LangEnglish},
		{"", DefaultLanguage},
		{"de", DefaultLanguage},
		{"zz-ZZ", DefaultLanguage},
	}

	for _, tt := range tests {
		if got := NormalizeLanguage(tt.in); got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// ABOUTME: Stats collector persistence for generation traces and extraction yield
// ABOUTME: Implements recording and the SQL aggregation behind the stats summary
package sqlite

import (
	"database/sql"

	"github.com/avicola/clarify/internal/models"
	"github.com/google/uuid"
)

// StatsStore persists pipeline traces and answers aggregate queries. The
// core pipeline never touches it; surfaces record after each call.
type StatsStore struct {
	db *DB
}

// NewStatsStore creates a StatsStore over an open database.
func NewStatsStore(db *DB) *StatsStore {
	return &StatsStore{db: db}
}

// RecordGeneration saves one generation trace. The utterance itself is
// never stored; conversation content stays out of the collector.
func (s *StatsStore) RecordGeneration(language string, result *models.GeneratedQuestions) error {
	t := result.Trace
	_, err := s.db.Exec(`
		INSERT INTO generation_traces (
			id, language, question_count,
			external_call_attempted, external_call_succeeded,
			validation_performed, validation_score,
			fallback_used, fallback_reason,
			questions_generated, questions_validated
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, "trace_"+uuid.New().String(), language, len(result.Questions),
		t.ExternalCallAttempted, t.ExternalCallSucceeded,
		t.ValidationPerformed, t.ValidationScore,
		t.FallbackUsed, nullString(t.FallbackReason),
		t.QuestionsGenerated, t.QuestionsValidated)
	return err
}

// RecordExtraction saves the field yield of one extraction.
func (s *StatsStore) RecordExtraction(facts *models.ExtractedFacts) error {
	_, err := s.db.Exec(`
		INSERT INTO extraction_records (
			id, field_count, has_age, has_breed, symptom_count, context_type
		) VALUES (?, ?, ?, ?, ?, ?)
	`, "extract_"+uuid.New().String(), facts.FieldCount(),
		facts.HasAge(), facts.HasBreed(), len(facts.Symptoms),
		nullString(string(facts.ContextType)))
	return err
}

// Summary is the aggregate view of pipeline behavior.
type Summary struct {
	Generations         int64            `json:"generations"`
	FallbackRate        float64          `json:"fallback_rate"`
	MeanValidationScore float64          `json:"mean_validation_score"`
	FallbackReasons     map[string]int64 `json:"fallback_reasons"`
	Languages           map[string]int64 `json:"languages"`
	Extractions         int64            `json:"extractions"`
	MeanFieldCount      float64          `json:"mean_field_count"`
	ContextTypes        map[string]int64 `json:"context_types"`
}

// Summarize runs the aggregation queries and returns the summary.
func (s *StatsStore) Summarize() (*Summary, error) {
	sum := &Summary{
		FallbackReasons: make(map[string]int64),
		Languages:       make(map[string]int64),
		ContextTypes:    make(map[string]int64),
	}

	err := s.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(AVG(CASE WHEN fallback_used THEN 1.0 ELSE 0.0 END), 0),
		       COALESCE(AVG(CASE WHEN validation_performed THEN validation_score END), 0)
		FROM generation_traces
	`).Scan(&sum.Generations, &sum.FallbackRate, &sum.MeanValidationScore)
	if err != nil {
		return nil, err
	}

	if err := s.countInto(sum.FallbackReasons, `
		SELECT fallback_reason, COUNT(*)
		FROM generation_traces
		WHERE fallback_reason IS NOT NULL
		GROUP BY fallback_reason
	`); err != nil {
		return nil, err
	}

	if err := s.countInto(sum.Languages, `
		SELECT language, COUNT(*) FROM generation_traces GROUP BY language
	`); err != nil {
		return nil, err
	}

	err = s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(AVG(field_count), 0) FROM extraction_records
	`).Scan(&sum.Extractions, &sum.MeanFieldCount)
	if err != nil {
		return nil, err
	}

	if err := s.countInto(sum.ContextTypes, `
		SELECT context_type, COUNT(*)
		FROM extraction_records
		WHERE context_type IS NOT NULL
		GROUP BY context_type
	`); err != nil {
		return nil, err
	}

	return sum, nil
}

func (s *StatsStore) countInto(dest map[string]int64, query string) error {
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key string
		var n int64
		if err := rows.Scan(&key, &n); err != nil {
			return err
		}
		dest[key] = n
	}
	return rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

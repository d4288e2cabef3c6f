// ABOUTME: SQLite schema for the pipeline statistics collector
// ABOUTME: Generation traces and extraction summaries with their indexes
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- One row per Generate call: the trace, not the utterance
CREATE TABLE IF NOT EXISTS generation_traces (
    id TEXT PRIMARY KEY,
    language TEXT NOT NULL,
    question_count INTEGER NOT NULL,
    external_call_attempted INTEGER NOT NULL,
    external_call_succeeded INTEGER NOT NULL,
    validation_performed INTEGER NOT NULL,
    validation_score REAL NOT NULL,
    fallback_used INTEGER NOT NULL,
    fallback_reason TEXT,
    questions_generated INTEGER NOT NULL,
    questions_validated INTEGER NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- One row per Extract call: field yield only, no raw text
CREATE TABLE IF NOT EXISTS extraction_records (
    id TEXT PRIMARY KEY,
    field_count INTEGER NOT NULL,
    has_age INTEGER NOT NULL,
    has_breed INTEGER NOT NULL,
    symptom_count INTEGER NOT NULL,
    context_type TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_traces_fallback ON generation_traces(fallback_used);
CREATE INDEX IF NOT EXISTS idx_traces_reason ON generation_traces(fallback_reason);
CREATE INDEX IF NOT EXISTS idx_traces_language ON generation_traces(language);
CREATE INDEX IF NOT EXISTS idx_extractions_context ON extraction_records(context_type);
`

// ABOUTME: HTTP handlers exposing the extraction and clarification pipeline
// ABOUTME: Thin JSON adapters over Extract and Generate, stats recorded best-effort
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/avicola/clarify/internal/clarify"
	"github.com/avicola/clarify/internal/extract"
	"github.com/avicola/clarify/internal/models"
	"github.com/avicola/clarify/internal/storage/sqlite"
)

// Handler implements the API handlers
type Handler struct {
	extractor *extract.Extractor
	generator *clarify.Generator
	stats     *sqlite.StatsStore // optional, nil disables recording
	version   string
}

// NewHandler creates a Handler over the pipeline components. stats may be
// nil when trace recording is disabled.
func NewHandler(e *extract.Extractor, g *clarify.Generator, stats *sqlite.StatsStore, version string) *Handler {
	return &Handler{
		extractor: e,
		generator: g,
		stats:     stats,
		version:   version,
	}
}

// HealthResponse is the body of GET /api/v1/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ExtractRequest is the body of POST /api/v1/extract.
type ExtractRequest struct {
	Text string `json:"text"`
}

// ClarifyRequest is the body of POST /api/v1/clarify.
type ClarifyRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Health returns the health status
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Version: h.version})
}

// Extract handles POST /api/v1/extract
func (h *Handler) Extract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	facts := h.extractor.Extract(req.Text)
	h.recordExtraction(facts)
	writeJSON(w, http.StatusOK, facts)
}

// Clarify handles POST /api/v1/clarify
func (h *Handler) Clarify(w http.ResponseWriter, r *http.Request) {
	var req ClarifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	result := h.generator.Generate(r.Context(), req.Text, req.Language)
	h.recordGeneration(req.Language, result)
	writeJSON(w, http.StatusOK, result)
}

// Stats handles GET /api/v1/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if h.stats == nil {
		http.Error(w, "stats collection is disabled", http.StatusNotFound)
		return
	}
	summary, err := h.stats.Summarize()
	if err != nil {
		slog.Error("stats summary failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Recording failures never fail the request; the pipeline result has
// already been produced.
func (h *Handler) recordExtraction(facts *models.ExtractedFacts) {
	if h.stats == nil {
		return
	}
	if err := h.stats.RecordExtraction(facts); err != nil {
		slog.Warn("extraction record failed", "error", err)
	}
}

func (h *Handler) recordGeneration(language string, result *models.GeneratedQuestions) {
	if h.stats == nil {
		return
	}
	if err := h.stats.RecordGeneration(models.NormalizeLanguage(language), result); err != nil {
		slog.Warn("generation record failed", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encoding failed", "error", err)
	}
}

// ABOUTME: MCP tool handler implementations for the clarification pipeline
// ABOUTME: Thin adapters over Extract and Generate with best-effort stats recording
package mcp

import (
	"context"
	"encoding/json"
	"log"

	"github.com/avicola/clarify/internal/clarify"
	"github.com/avicola/clarify/internal/extract"
	"github.com/avicola/clarify/internal/models"
	"github.com/avicola/clarify/internal/storage/sqlite"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	extractor *extract.Extractor
	generator *clarify.Generator
	stats     *sqlite.StatsStore // optional
}

// ExtractFacts handles the extract_facts tool
func (h *Handlers) ExtractFacts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	facts := h.extractor.Extract(text)

	if h.stats != nil {
		if err := h.stats.RecordExtraction(facts); err != nil {
			log.Printf("Warning: extraction record failed: %v", err)
		}
	}

	responseJSON, err := json.Marshal(facts)
	if err != nil {
		return mcp.NewToolResultError("failed to encode facts"), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// GenerateQuestions handles the generate_questions tool
func (h *Handlers) GenerateQuestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}
	language := request.GetString("language", models.DefaultLanguage)

	result := h.generator.Generate(ctx, text, language)

	if h.stats != nil {
		if err := h.stats.RecordGeneration(models.NormalizeLanguage(language), result); err != nil {
			log.Printf("Warning: generation record failed: %v", err)
		}
	}

	responseJSON, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError("failed to encode questions"), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// GetStats handles the get_stats tool
func (h *Handlers) GetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.stats == nil {
		return mcp.NewToolResultError("stats collection is disabled"), nil
	}

	summary, err := h.stats.Summarize()
	if err != nil {
		return mcp.NewToolResultError("failed to summarize stats: " + err.Error()), nil
	}

	responseJSON, err := json.Marshal(summary)
	if err != nil {
		return mcp.NewToolResultError("failed to encode stats"), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

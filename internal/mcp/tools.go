// ABOUTME: MCP tool definitions and registration for the clarification pipeline
// ABOUTME: Exposes fact extraction, question generation, and stats to agent callers
package mcp

import (
	"github.com/avicola/clarify/internal/clarify"
	"github.com/avicola/clarify/internal/extract"
	"github.com/avicola/clarify/internal/storage/sqlite"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server. stats may be nil
// when trace recording is disabled.
func RegisterTools(server *mcpserver.MCPServer, extractor *extract.Extractor, generator *clarify.Generator, stats *sqlite.StatsStore) *Handlers {
	handlers := &Handlers{
		extractor: extractor,
		generator: generator,
		stats:     stats,
	}

	// 1. extract_facts - structured facts from one utterance
	server.AddTool(mcp.Tool{
		Name:        "extract_facts",
		Description: "Extract structured poultry facts (age, breed, sex, weight, symptoms, context) from a free-form user question.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Raw user question to extract facts from",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.ExtractFacts)

	// 2. generate_questions - clarification questions plus generation trace
	server.AddTool(mcp.Tool{
		Name:        "generate_questions",
		Description: "Generate up to 4 clarification questions for a user question, with a trace describing which generation path ran.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Raw user question to clarify",
				},
				"language": map[string]interface{}{
					"type":        "string",
					"description": "Question language (fr, en, es); defaults to fr",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.GenerateQuestions)

	// 3. get_stats - aggregate pipeline behavior
	server.AddTool(mcp.Tool{
		Name:        "get_stats",
		Description: "Get aggregate pipeline statistics: fallback rate, mean validation score, per-reason and per-language counts.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.GetStats)

	return handlers
}

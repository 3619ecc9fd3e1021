package server

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/content"
)

// GenerationHistoryOutput is the generation_history response.
type GenerationHistoryOutput struct {
	Records []content.GenerationRecord `json:"records"`
	Total   int                        `json:"total"`
}

func registerGenerationHistory(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generation_history",
		Description: "List past content generation runs for a user, newest first: video id, extracted topic, source path (transcript or metadata), and timestamp.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.GenerationHistoryInput) (*mcp.CallToolResult, *GenerationHistoryOutput, error) {
		if pipe.Store == nil {
			return nil, nil, errors.New("history store not configured")
		}

		records, err := pipe.Store.History(ctx, input.UserID, input.Limit)
		if err != nil {
			return nil, nil, err
		}
		return nil, &GenerationHistoryOutput{
			Records: records,
			Total:   len(records),
		}, nil
	})
}

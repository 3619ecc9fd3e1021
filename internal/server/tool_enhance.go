package server

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/content"
)

// ContentEnhanceOutput is the content_enhance response.
type ContentEnhanceOutput struct {
	Enhancement string `json:"enhancement"`
	Content     string `json:"content"`
}

var validEnhancements = map[string]bool{
	"shorter":    true,
	"more-viral": true,
	"simpler":    true,
	"add-emojis": true,
	"carousel":   true,
}

func registerContentEnhance(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "content_enhance",
		Description: "Rewrite a piece of generated content with one fixed transform: shorter (keep the first 60% of sentences), more-viral, simpler, add-emojis, or carousel (one numbered slide per sentence).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ContentEnhanceInput) (*mcp.CallToolResult, *ContentEnhanceOutput, error) {
		if input.Content == "" {
			return nil, nil, errors.New("content is required")
		}
		if !validEnhancements[input.Enhancement] {
			return nil, nil, errors.New("enhancement must be one of: shorter, more-viral, simpler, add-emojis, carousel")
		}

		engine.IncrEnhanceRequests()
		return nil, &ContentEnhanceOutput{
			Enhancement: input.Enhancement,
			Content:     content.Enhance(input.Content, input.Enhancement),
		}, nil
	})
}

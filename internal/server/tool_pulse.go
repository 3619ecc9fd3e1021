package server

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/content"
)

func registerTopicPulse(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "topic_pulse",
		Description: "Sample recent tweets about a topic to see what angle is currently landing before publishing generated posts. Returns tweet text, author, and engagement counts. Requires a configured Twitter client.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.TopicPulseInput) (*mcp.CallToolResult, *engine.TopicPulseOutput, error) {
		if input.Topic == "" {
			return nil, nil, errors.New("topic is required")
		}

		tweets, err := content.TopicPulse(ctx, input.Topic, input.Limit)
		if err != nil {
			return nil, nil, err
		}
		return nil, &engine.TopicPulseOutput{
			Topic:  input.Topic,
			Total:  len(tweets),
			Tweets: tweets,
		}, nil
	})
}

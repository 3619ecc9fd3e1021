package server

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/content"
	"github.com/anatolykoptev/go_repurpose/internal/toolutil"
)

// ViralHooksOutput is the viral_hooks response.
type ViralHooksOutput struct {
	Topic string              `json:"topic"`
	Hooks []content.ViralHook `json:"hooks"`
}

func registerViralHooks(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "viral_hooks",
		Description: "Generate 10 viral hooks for a topic, sorted by effectiveness. Pass a topic directly, or a YouTube URL/video id to extract the topic from the video first. Each hook carries a category (curiosity, controversy, value, story, urgency) and a 0-100 effectiveness score.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ViralHooksInput) (*mcp.CallToolResult, *ViralHooksOutput, error) {
		if input.Topic == "" && input.URL == "" && input.VideoID == "" {
			return nil, nil, errors.New("topic, url, or video_id is required")
		}

		videoID := ""
		if input.Topic == "" {
			id, err := resolveVideoID(input.URL, input.VideoID)
			if err != nil {
				return nil, nil, err
			}
			videoID = id
		}

		cacheKey := engine.CacheKey("viral_hooks", videoID, input.Topic)
		if out, ok := toolutil.CacheLoadJSON[*ViralHooksOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		hooks, topic, err := pipe.Hooks(ctx, videoID, input.Topic)
		if err != nil {
			return nil, nil, err
		}

		out := &ViralHooksOutput{Topic: topic, Hooks: hooks}
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

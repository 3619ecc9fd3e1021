package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/sources"
	"github.com/anatolykoptev/go_repurpose/internal/toolutil"
)

func registerVideoMetadata(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_metadata",
		Description: "Fetch title, description, and channel for a YouTube video. Tries the Data API (when a key is configured), the watch page, and oEmbed in turn. The sufficient flag says whether the metadata alone could drive content generation.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.VideoMetadataInput) (*mcp.CallToolResult, *engine.VideoMetadataOutput, error) {
		videoID, err := resolveVideoID(input.URL, input.VideoID)
		if err != nil {
			return nil, nil, err
		}

		cacheKey := engine.CacheKey("video_metadata", videoID)
		if out, ok := toolutil.CacheLoadJSON[*engine.VideoMetadataOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		md, err := pipe.Metadata(ctx, videoID)
		if err != nil {
			return nil, nil, err
		}

		out := &engine.VideoMetadataOutput{
			VideoID:     videoID,
			Title:       md.Title,
			Description: md.Description,
			Channel:     md.Channel,
			Sufficient:  sources.ValidateMetadata(md),
		}
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

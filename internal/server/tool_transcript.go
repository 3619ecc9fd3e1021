package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/toolutil"
)

func registerVideoTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_transcript",
		Description: "Fetch the cleaned transcript of a YouTube video. Tries the watch page, the transcript engagement panel, and the Innertube player API in turn. Caption artifacts like [Music] and stutter repeats are stripped.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.VideoTranscriptInput) (*mcp.CallToolResult, *engine.VideoTranscriptOutput, error) {
		videoID, err := resolveVideoID(input.URL, input.VideoID)
		if err != nil {
			return nil, nil, err
		}

		cacheKey := engine.CacheKey("video_transcript", videoID)
		if out, ok := toolutil.CacheLoadJSON[*engine.VideoTranscriptOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		transcript, err := pipe.Transcript(ctx, videoID)
		if err != nil {
			return nil, nil, err
		}

		out := &engine.VideoTranscriptOutput{
			VideoID:    videoID,
			Transcript: transcript,
			Chars:      len(transcript),
		}
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

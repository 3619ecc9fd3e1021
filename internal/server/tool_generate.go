package server

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/content"
	"github.com/anatolykoptev/go_repurpose/internal/toolutil"
)

// ContentGenerateOutput is the content_generate response: the full generated
// bundle plus optional hooks, filtered down to the requested platforms.
type ContentGenerateOutput struct {
	VideoID string                    `json:"video_id"`
	Content *content.GeneratedContent `json:"content"`
	Hooks   []content.ViralHook       `json:"hooks,omitempty"`
}

func registerContentGenerate(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "content_generate",
		Description: "Generate a full repurposing bundle from a YouTube video: summaries, blog article, Instagram/LinkedIn/Twitter posts, captions, takeaways, title and thumbnail ideas, plus optional short-video scripts, analytics, and viral hooks. Uses the transcript when available, otherwise the video metadata. Supports tone, persona, and output-language styling.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ContentGenerateInput) (*mcp.CallToolResult, *ContentGenerateOutput, error) {
		videoID, err := resolveVideoID(input.URL, input.VideoID)
		if err != nil {
			return nil, nil, err
		}

		opts := content.Options{
			Tone:             input.Tone,
			Persona:          input.Persona,
			Language:         input.Language,
			Platforms:        input.Platforms,
			IncludeShorts:    input.IncludeShorts,
			IncludeAnalytics: input.IncludeAnalytics,
			IncludeHooks:     input.IncludeHooks,
		}

		cacheKey := engine.CacheKey("content_generate", videoID,
			opts.Tone, opts.Persona, opts.Language,
			strings.Join(opts.Platforms, ","),
			boolKey(opts.IncludeShorts), boolKey(opts.IncludeAnalytics), boolKey(opts.IncludeHooks))
		if out, ok := toolutil.CacheLoadJSON[*ContentGenerateOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		gc, err := pipe.Generate(ctx, input.UserID, videoID, input.URL, opts)
		if err != nil {
			return nil, nil, err
		}

		// Platform filtering is a presentation concern: generation always
		// computes every platform, the response drops the unrequested ones.
		filterPlatforms(gc, opts.Platforms)

		out := &ContentGenerateOutput{
			VideoID: videoID,
			Content: gc,
		}
		if opts.IncludeHooks {
			out.Hooks = content.GenerateViralHooks(gc.Topic)
		}

		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

func boolKey(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// filterPlatforms clears platform sequences the caller did not ask for.
// An empty platform set means "all".
func filterPlatforms(gc *content.GeneratedContent, platforms []string) {
	if len(platforms) == 0 {
		return
	}
	want := make(map[string]bool, len(platforms))
	for _, p := range platforms {
		want[strings.ToLower(strings.TrimSpace(p))] = true
	}
	if !want["instagram"] {
		gc.Instagram = nil
	}
	if !want["linkedin"] {
		gc.LinkedIn = nil
	}
	if !want["twitter"] {
		gc.Twitter = nil
	}
}

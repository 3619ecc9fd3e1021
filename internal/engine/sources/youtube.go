package sources

// YouTube implementation is split across three files by responsibility:
//   youtube_innertube.go  — Innertube API types, constants, and low-level HTTP primitives
//   youtube_transcript.go — transcript resolution (page scrape, engagement panel,
//                           ANDROID player fallback) plus artifact cleaning
//   youtube_metadata.go   — title/description/channel resolution (Data API v3,
//                           watch-page scrape, oEmbed) and sufficiency validation

import (
	"context"
	"regexp"
	"time"

	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
)

// ytLimiter spaces out requests to YouTube endpoints across all resolver
// paths. Shared by transcript and metadata fetching.
var ytLimiter = rate.NewLimiter(rate.Every(300*time.Millisecond), 3)

// withFetchTimeout caps a resolver run with the configured fetch timeout.
// The deadline covers the whole fallback chain, not each HTTP call.
func withFetchTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if t := engine.Cfg.FetchTimeout; t > 0 {
		return context.WithTimeout(ctx, t)
	}
	return ctx, func() {}
}

var (
	watchURLPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/v/([a-zA-Z0-9_-]{11})`),
	}
	videoIDRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// ExtractVideoID pulls the 11-character video id out of a YouTube URL.
// Accepts watch, youtu.be, embed, and /v/ shapes, or a bare id.
func ExtractVideoID(rawURL string) (string, bool) {
	for _, re := range watchURLPatterns {
		if m := re.FindStringSubmatch(rawURL); len(m) == 2 {
			return m[1], true
		}
	}
	if IsVideoID(rawURL) {
		return rawURL, true
	}
	return "", false
}

// IsVideoID reports whether s already is a bare 11-character video id.
func IsVideoID(s string) bool {
	return videoIDRe.MatchString(s)
}

package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
)

const (
	ytDataAPIBase = "https://www.googleapis.com/youtube/v3"
	ytOEmbedURL   = "https://www.youtube.com/oembed"
)

// ErrMetadataUnavailable means every metadata source failed for the video.
// Wraps engine.ErrResolverFailure.
var ErrMetadataUnavailable = fmt.Errorf("%w: metadata unavailable", engine.ErrResolverFailure)

// VideoMetadata is the fallback material for content generation when no
// transcript exists.
type VideoMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Channel     string `json:"channel"`
}

// ValidateMetadata reports whether metadata carries enough text to generate
// from: title and description combined must reach Cfg.MetadataMinChars runes.
func ValidateMetadata(md *VideoMetadata) bool {
	if md == nil {
		return false
	}
	total := len([]rune(strings.TrimSpace(md.Title))) + len([]rune(strings.TrimSpace(md.Description)))
	return total >= engine.Cfg.MetadataMinChars
}

// cleanDescription converts description markup (scraped pages and some Data
// API fields carry HTML) to plain markdown-ish text.
func cleanDescription(desc string) string {
	if !strings.ContainsAny(desc, "<>") {
		return engine.CollapseWhitespace(desc)
	}
	md, err := htmltomarkdown.ConvertString(desc)
	if err != nil {
		return engine.CleanHTML(desc)
	}
	return engine.CollapseWhitespace(md)
}

// --- Data API v3 ---

type ytDataAPIResp struct {
	Items []struct {
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

func fetchMetadataDataAPI(ctx context.Context, videoID, apiKey string) (*VideoMetadata, error) {
	u := fmt.Sprintf("%s/videos?part=snippet&id=%s&key=%s", ytDataAPIBase, url.QueryEscape(videoID), url.QueryEscape(apiKey))
	if err := ytLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.UserAgentBot)
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("data api: %w", err)
	}
	defer resp.Body.Close()

	var apiResp ytDataAPIResp
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode data api: %w", err)
	}
	if len(apiResp.Items) == 0 {
		return nil, errors.New("data api: video not found")
	}
	sn := apiResp.Items[0].Snippet
	return &VideoMetadata{
		Title:       strings.TrimSpace(sn.Title),
		Description: cleanDescription(sn.Description),
		Channel:     strings.TrimSpace(sn.ChannelTitle),
	}, nil
}

// --- Watch page scrape ---

// metaContent finds <meta property|name=key content=...> in the parsed tree.
func metaContent(doc *html.Node, key string) string {
	var walk func(n *html.Node) string
	walk = func(n *html.Node) string {
		if n.Type == html.ElementNode && n.Data == "meta" {
			if getAttr(n, "property") == key || getAttr(n, "name") == key {
				return getAttr(n, "content")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if v := walk(c); v != "" {
				return v
			}
		}
		return ""
	}
	return walk(doc)
}

// getAttr returns the value of an attribute on a node, or "".
func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// parseWatchPageMetadata extracts og: tags and the player response from
// watch page HTML. The player response's shortDescription is the full
// description; og:description is truncated.
func parseWatchPageMetadata(body []byte) (*VideoMetadata, error) {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parse watch page: %w", err)
	}

	md := &VideoMetadata{
		Title:       strings.TrimSpace(metaContent(doc, "og:title")),
		Description: cleanDescription(metaContent(doc, "og:description")),
	}

	if idx := strings.Index(string(body), ytInitialPlayerResponseMarker); idx >= 0 {
		if jsonData := extractJSON(body[idx+len(ytInitialPlayerResponseMarker):]); jsonData != nil {
			var playerResp innertubePlayerResp
			if json.Unmarshal(jsonData, &playerResp) == nil && playerResp.VideoDetails != nil {
				vd := playerResp.VideoDetails
				if vd.Title != "" {
					md.Title = strings.TrimSpace(vd.Title)
				}
				if vd.ShortDescription != "" {
					md.Description = cleanDescription(vd.ShortDescription)
				}
				md.Channel = strings.TrimSpace(vd.Author)
			}
		}
	}

	if md.Title == "" {
		return nil, errors.New("watch page: no title found")
	}
	return md, nil
}

func fetchMetadataWatchPage(ctx context.Context, videoID string) (*VideoMetadata, error) {
	playerResp, body, err := fetchWatchPagePlayerResponse(ctx, videoID)
	if err != nil && body == nil {
		return nil, err
	}
	if playerResp != nil && playerResp.VideoDetails != nil && playerResp.VideoDetails.Title != "" {
		vd := playerResp.VideoDetails
		return &VideoMetadata{
			Title:       strings.TrimSpace(vd.Title),
			Description: cleanDescription(vd.ShortDescription),
			Channel:     strings.TrimSpace(vd.Author),
		}, nil
	}
	// Player response missing or malformed; fall back to og: tags.
	return parseWatchPageMetadata(body)
}

// --- oEmbed ---

type ytOEmbedResp struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

func fetchMetadataOEmbed(ctx context.Context, videoID string) (*VideoMetadata, error) {
	u := ytOEmbedURL + "?url=" + url.QueryEscape("https://www.youtube.com/watch?v="+videoID) + "&format=json"
	if err := ytLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.UserAgentBot)
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("oembed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, err
	}
	var oe ytOEmbedResp
	if err := json.Unmarshal(body, &oe); err != nil {
		return nil, fmt.Errorf("decode oembed: %w", err)
	}
	if oe.Title == "" {
		return nil, errors.New("oembed: empty title")
	}
	// oEmbed has no description field; sufficiency depends on the title alone.
	return &VideoMetadata{
		Title:   strings.TrimSpace(oe.Title),
		Channel: strings.TrimSpace(oe.AuthorName),
	}, nil
}

// FetchVideoMetadata resolves title/description/channel for a video, trying
// the Data API (when a key is configured), then the watch page, then oEmbed.
func FetchVideoMetadata(ctx context.Context, videoID string) (*VideoMetadata, error) {
	engine.IncrMetadataRequests()

	ctx, cancel := withFetchTimeout(ctx)
	defer cancel()

	var md *VideoMetadata
	var err error

	if key := engine.Cfg.YouTubeAPIKey; key != "" {
		md, err = fetchMetadataDataAPI(ctx, videoID, key)
		if err != nil {
			slog.Warn("youtube: data api failed, scraping watch page",
				slog.String("id", videoID), slog.Any("err", err))
		}
	}
	if md == nil {
		md, err = fetchMetadataWatchPage(ctx, videoID)
		if err != nil {
			slog.Warn("youtube: watch page scrape failed, trying oembed",
				slog.String("id", videoID), slog.Any("err", err))
			md, err = fetchMetadataOEmbed(ctx, videoID)
		}
	}
	if err != nil && md == nil {
		engine.IncrMetadataErrors()
		return nil, fmt.Errorf("%w: %w", ErrMetadataUnavailable, err)
	}

	slog.Info("youtube: metadata resolved",
		slog.String("id", videoID),
		slog.String("title", md.Title),
		slog.Int("desc_chars", len(md.Description)))
	return md, nil
}

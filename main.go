// go_repurpose — YouTube content repurposing MCP server.
//
// Resolves a video's transcript (or metadata as fallback), classifies it,
// and generates a deterministic repurposing bundle: summaries, a blog
// article, social posts, captions, takeaways, titles, thumbnails, short
// scripts, viral hooks, and illustrative analytics.
//
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	twitter "github.com/anatolykoptev/go-twitter"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/content"
	"github.com/anatolykoptev/go_repurpose/internal/server"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8894")
)

func main() {
	initEngine()

	slog.Info("starting go_repurpose",
		slog.String("port", mcpPort),
	)

	mcpSrv := mcp.NewServer(&mcp.Implementation{
		Name:    "go_repurpose",
		Version: version,
	}, nil)

	server.RegisterTools(mcpSrv, content.NewPipeline(openStore()))
	slog.Info("tools registered", slog.Int("count", 7))

	if err := mcpserver.Run(mcpSrv, mcpserver.Config{
		Name:         "go_repurpose",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		YouTubeAPIKey:        env.Str("YOUTUBE_API_KEY", ""),
		TranscriptLangs:      env.List("TRANSCRIPT_LANGS", "en"),
		MetadataMinChars:     env.Int("METADATA_MIN_CHARS", 50),
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 10*time.Second),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		HistoryDir:           env.Str("HISTORY_DIR", ""),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	// Twitter client (optional — guest mode if no accounts configured)
	accounts := twitter.ParseAccounts(env.Str("TWITTER_ACCOUNTS", ""))
	openCount := 2
	if len(accounts) > 0 {
		openCount = 0
	}
	tw, err := twitter.NewClient(twitter.ClientConfig{
		Accounts:         accounts,
		OpenAccountCount: openCount,
	})
	if err != nil {
		slog.Warn("twitter client init failed, topic_pulse disabled", slog.Any("error", err))
	} else {
		c.TwitterClient = tw
	}

	engine.Init(c)

	cacheTTL := env.Duration("CACHE_TTL", engine.CacheTTL)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}

// openStore picks the history backend: Postgres when DATABASE_URL is set,
// local SQLite otherwise. A nil store disables history but never blocks
// generation.
func openStore() content.Store {
	if url := engine.Cfg.DatabaseURL; url != "" {
		pg, err := content.ConnectPGStore(context.Background(), url)
		if err != nil {
			slog.Warn("postgres history init failed, falling back to sqlite", slog.Any("error", err))
		} else {
			slog.Info("generation history on postgres")
			return pg
		}
	}

	hs, err := content.OpenHistoryStore(engine.Cfg.HistoryDir)
	if err != nil {
		slog.Warn("sqlite history init failed, history disabled", slog.Any("error", err))
		return nil
	}
	slog.Info("generation history on sqlite")
	return hs
}

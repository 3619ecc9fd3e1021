package engine

import (
	"net/http"
	"time"

	twitter "github.com/anatolykoptev/go-twitter"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	YouTubeAPIKey        string   // Data API v3 key; empty = oEmbed + page scrape only
	TranscriptLangs      []string // preferred caption languages, in order
	MetadataMinChars     int      // title+description sufficiency floor
	FetchTimeout         time.Duration
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	DatabaseURL          string // postgres history store; empty = local sqlite
	HistoryDir           string // sqlite directory override; empty = $HOME/.go_repurpose
	HTTPClient           *http.Client
	TwitterClient        *twitter.Client // nil = topic_pulse disabled
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (content, sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.MetadataMinChars <= 0 {
		c.MetadataMinChars = 50
	}
	if len(c.TranscriptLangs) == 0 {
		c.TranscriptLangs = []string{"en"}
	}
	cfg = c
	Cfg = &cfg
}

package engine

// --- Tool input types (JSON requests) ---

type ContentGenerateInput struct {
	URL              string   `json:"url,omitempty" jsonschema:"YouTube video URL (watch, youtu.be, embed)"`
	VideoID          string   `json:"video_id,omitempty" jsonschema:"11-character video id; alternative to url"`
	Tone             string   `json:"tone,omitempty" jsonschema:"Tone: professional, casual, viral, educational, storytelling"`
	Persona          string   `json:"persona,omitempty" jsonschema:"Persona: founder, content-creator, marketer, teacher, influencer"`
	Language         string   `json:"language,omitempty" jsonschema:"Output language: english (default), hindi, hinglish, spanish"`
	Platforms        []string `json:"platforms,omitempty" jsonschema:"Platforms to include in the response: instagram, linkedin, twitter. Empty = all"`
	IncludeShorts    bool     `json:"include_shorts,omitempty" jsonschema:"Include short-video scripts"`
	IncludeAnalytics bool     `json:"include_analytics,omitempty" jsonschema:"Include estimated reach / posting-time analytics"`
	IncludeHooks     bool     `json:"include_hooks,omitempty" jsonschema:"Include viral hooks sorted by effectiveness"`
	UserID           string   `json:"user_id,omitempty" jsonschema:"Owner id for generation history"`
}

type ViralHooksInput struct {
	URL     string `json:"url,omitempty" jsonschema:"YouTube video URL; the topic is extracted from the video"`
	VideoID string `json:"video_id,omitempty" jsonschema:"11-character video id; alternative to url"`
	Topic   string `json:"topic,omitempty" jsonschema:"Explicit topic; skips video resolution"`
}

type ContentEnhanceInput struct {
	Content     string `json:"content" jsonschema:"Text to enhance"`
	Enhancement string `json:"enhancement" jsonschema:"One of: shorter, more-viral, simpler, add-emojis, carousel"`
}

type VideoTranscriptInput struct {
	URL     string `json:"url,omitempty" jsonschema:"YouTube video URL"`
	VideoID string `json:"video_id,omitempty" jsonschema:"11-character video id; alternative to url"`
}

type VideoMetadataInput struct {
	URL     string `json:"url,omitempty" jsonschema:"YouTube video URL"`
	VideoID string `json:"video_id,omitempty" jsonschema:"11-character video id; alternative to url"`
}

type TopicPulseInput struct {
	Topic string `json:"topic" jsonschema:"Topic to sample recent conversation for"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max tweets (default 20, cap 50)"`
}

type GenerationHistoryInput struct {
	UserID string `json:"user_id,omitempty" jsonschema:"Filter by owner id"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Max entries (default 20, cap 100)"`
}

// --- Tool output types (JSON responses) ---

type VideoTranscriptOutput struct {
	VideoID    string `json:"video_id"`
	Transcript string `json:"transcript"`
	Chars      int    `json:"chars"`
}

type VideoMetadataOutput struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Channel     string `json:"channel"`
	Sufficient  bool   `json:"sufficient"`
}

type PulseTweet struct {
	ID        string `json:"id"`
	AuthorID  string `json:"author_id"`
	Text      string `json:"text"`
	URL       string `json:"url"`
	Likes     int    `json:"likes"`
	Retweets  int    `json:"retweets"`
	CreatedAt string `json:"created_at"`
}

type TopicPulseOutput struct {
	Topic  string       `json:"topic"`
	Total  int          `json:"total"`
	Tweets []PulseTweet `json:"tweets"`
}

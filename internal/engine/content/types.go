// Package content implements the deterministic generation pipeline: resolve
// source text, classify it, extract a compact context record, fan out into
// template generators, apply style transforms, and score the result. Every
// function here is a pure transform; all I/O lives behind the resolver and
// store interfaces wired into Pipeline.
package content

import "time"

// ContentType is the coarse category a video's text falls into.
type ContentType string

const (
	TypeEntertainment ContentType = "entertainment"
	TypeEducation     ContentType = "education"
	TypeDiscussion    ContentType = "discussion"
	TypeBusiness      ContentType = "business"
	TypeUnknown       ContentType = "unknown"
)

// LanguageContext is the detected language mix of the source text.
type LanguageContext string

const (
	LangEnglish  LanguageContext = "english"
	LangHindi    LanguageContext = "hindi"
	LangHinglish LanguageContext = "hinglish"
	LangUnknown  LanguageContext = "unknown"
)

// SourceKind says which resolver produced the text driving a run.
type SourceKind string

const (
	SourceTranscript SourceKind = "transcript"
	SourceMetadata   SourceKind = "metadata"
)

// SourceInput is the resolved raw material for one generation run.
// Exactly one variant is populated: Transcript, or Title+Description(+Channel).
type SourceInput struct {
	Kind        SourceKind
	Transcript  string
	Title       string
	Description string
	Channel     string
}

// Text returns the combined text the classifier and extractor operate on.
func (s SourceInput) Text() string {
	if s.Kind == SourceTranscript {
		return s.Transcript
	}
	return s.Title + " " + s.Description
}

// VideoContext is the compact record every generator reads. Built once per
// run and never mutated afterwards.
type VideoContext struct {
	Topic       string
	MainIdea    string
	Audience    string
	ContentType ContentType
	Language    LanguageContext
	Source      SourceKind
	Content     string
}

// Options is the caller-supplied generation configuration, immutable per run.
type Options struct {
	Tone             string
	Persona          string
	Language         string
	Platforms        []string
	IncludeShorts    bool
	IncludeAnalytics bool
	IncludeHooks     bool
}

// ShortVideoScript is one generated short-form script.
type ShortVideoScript struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Duration     int      `json:"duration"`
	Hook         string   `json:"hook"`
	Script       string   `json:"script"`
	OnScreenText []string `json:"onScreenText"`
	Voiceover    string   `json:"voiceover"`
	CTA          string   `json:"cta"`
}

// HookCategory labels the psychological angle of a viral hook.
type HookCategory string

const (
	HookCuriosity   HookCategory = "curiosity"
	HookControversy HookCategory = "controversy"
	HookValue       HookCategory = "value"
	HookStory       HookCategory = "story"
	HookUrgency     HookCategory = "urgency"
)

// ViralHook is a short attention-grabbing line with a fixed effectiveness
// rating. Sets of hooks are always returned sorted by effectiveness
// descending.
type ViralHook struct {
	ID            string       `json:"id"`
	Hook          string       `json:"hook"`
	Category      HookCategory `json:"category"`
	Effectiveness int          `json:"effectiveness"`
}

// ReachEstimate is a per-platform estimated reach band.
type ReachEstimate struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Platform string `json:"platform"`
}

// PotentialScore pairs a 0-100 score with its bucketed label.
type PotentialScore struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

// SEOScore pairs a 0-100 score with its bucketed ranking label.
type SEOScore struct {
	Score   int    `json:"score"`
	Ranking string `json:"ranking"`
}

// PostingTimes lists suggested posting slots for one platform.
type PostingTimes struct {
	Platform string   `json:"platform"`
	Times    []string `json:"times"`
}

// ContentAnalytics is the illustrative audience-analytics block.
type ContentAnalytics struct {
	EstimatedReach      []ReachEstimate `json:"estimatedReach"`
	EngagementPotential PotentialScore  `json:"engagementPotential"`
	SEOPotential        SEOScore        `json:"seoPotential"`
	BestPostingTimes    []PostingTimes  `json:"bestPostingTimes"`
}

// ContentQualityScore is the illustrative quality block attached to a result.
type ContentQualityScore struct {
	SEOScore         int      `json:"seoScore"`
	ViralityScore    int      `json:"viralityScore"`
	ReadabilityLevel string   `json:"readabilityLevel"`
	Improvements     []string `json:"improvements"`
}

// GeneratedContent is the aggregate result of one pipeline run.
type GeneratedContent struct {
	Topic           string               `json:"topic"`
	Language        LanguageContext      `json:"languageContext"`
	ShortSummary    string               `json:"short_summary"`
	DetailedSummary string               `json:"detailed_summary"`
	Blog            string               `json:"blog"`
	Instagram       []string             `json:"instagram"`
	LinkedIn        []string             `json:"linkedin"`
	Twitter         []string             `json:"twitter"`
	Captions        []string             `json:"captions"`
	Takeaways       []string             `json:"takeaways"`
	Titles          []string             `json:"titles"`
	Thumbnails      []string             `json:"thumbnails"`
	Shorts          []ShortVideoScript   `json:"shorts,omitempty"`
	Analytics       *ContentAnalytics    `json:"analytics,omitempty"`
	QualityScore    *ContentQualityScore `json:"qualityScore,omitempty"`
}

// GenerationRecord is one persisted generation run.
type GenerationRecord struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	VideoID   string    `json:"video_id"`
	SourceURL string    `json:"source_url,omitempty"`
	Topic     string    `json:"topic"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

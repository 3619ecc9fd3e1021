package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/sources"
)

// TranscriptResolver fetches cleaned transcript text for a video id.
type TranscriptResolver func(ctx context.Context, videoID string) (string, error)

// MetadataResolver fetches title/description/channel for a video id.
type MetadataResolver func(ctx context.Context, videoID string) (*sources.VideoMetadata, error)

// Store persists finished generation runs. Persistence failures never fail
// the run itself.
type Store interface {
	SaveGeneration(ctx context.Context, userID, videoID, sourceURL string, gc *GeneratedContent, source SourceKind) error
	History(ctx context.Context, userID string, limit int) ([]GenerationRecord, error)
}

// Pipeline sequences resolution, classification, generation, styling, and
// scoring for one video. It holds no per-run state; a single Pipeline is
// safe for concurrent use.
type Pipeline struct {
	Transcript TranscriptResolver
	Metadata   MetadataResolver
	Store      Store
}

// NewPipeline builds a pipeline wired to the live YouTube resolvers.
func NewPipeline(store Store) *Pipeline {
	return &Pipeline{
		Transcript: sources.ResolveTranscript,
		Metadata:   sources.FetchVideoMetadata,
		Store:      store,
	}
}

// resolveSource tries the transcript first and falls back to validated
// metadata. When both paths come up empty the run fails with
// ErrInsufficientData.
func (p *Pipeline) resolveSource(ctx context.Context, videoID string) (SourceInput, error) {
	transcript, err := p.Transcript(ctx, videoID)
	if err == nil && transcript != "" {
		return SourceInput{Kind: SourceTranscript, Transcript: transcript}, nil
	}
	if err != nil {
		slog.Info("pipeline: transcript unavailable, falling back to metadata",
			slog.String("id", videoID), slog.Any("err", err))
	}

	md, mdErr := p.Metadata(ctx, videoID)
	if mdErr != nil {
		slog.Warn("pipeline: metadata resolver failed",
			slog.String("id", videoID), slog.Any("err", mdErr))
		return SourceInput{}, fmt.Errorf("%w: transcript and metadata both failed", engine.ErrInsufficientData)
	}
	if !sources.ValidateMetadata(md) {
		return SourceInput{}, fmt.Errorf("%w: metadata too thin for %q", engine.ErrInsufficientData, videoID)
	}
	return SourceInput{
		Kind:        SourceMetadata,
		Title:       md.Title,
		Description: md.Description,
		Channel:     md.Channel,
	}, nil
}

// classificationText is what the classifier sees: the transcript itself, or
// title+description+channel for the metadata path.
func classificationText(src SourceInput) string {
	if src.Kind == SourceTranscript {
		return src.Transcript
	}
	return src.Title + " " + src.Description + " " + src.Channel
}

// GenerateFromSource runs classification, context extraction, the generator
// bank, styling, and scoring over an already-resolved source. Deterministic:
// identical input and options always produce identical output.
func GenerateFromSource(src SourceInput, opts Options) *GeneratedContent {
	contentType := ClassifyContentType(classificationText(src))
	vc := BuildContext(src, contentType)

	gc := &GeneratedContent{
		Topic:           vc.Topic,
		Language:        vc.Language,
		ShortSummary:    Style(generateShortSummary(vc), opts),
		DetailedSummary: Style(generateDetailedSummary(vc), opts),
		Blog:            Style(generateBlogArticle(vc), opts),
		Instagram:       styleAll(generateInstagramPosts(vc), opts),
		LinkedIn:        styleAll(generateLinkedInPosts(vc), opts),
		Twitter:         styleAll(generateTwitterPosts(vc), opts),
		Captions:        styleAll(generateShortCaptions(vc), opts),
		Takeaways:       styleAll(generateKeyTakeaways(vc), opts),
		Titles:          styleAll(generateTitleIdeas(vc), opts),
		Thumbnails:      styleAll(generateThumbnailIdeas(vc), opts),
	}
	if opts.IncludeShorts {
		gc.Shorts = GenerateShortVideoScripts(vc)
	}
	if opts.IncludeAnalytics {
		gc.Analytics = ComputeAnalytics(vc)
	}
	gc.QualityScore = ComputeQualityScore(gc)
	return gc
}

// Generate runs the full pipeline for one video and persists the result.
func (p *Pipeline) Generate(ctx context.Context, userID, videoID, sourceURL string, opts Options) (*GeneratedContent, error) {
	engine.IncrGenerateRequests()

	var gc *GeneratedContent
	err := engine.TrackOperation(ctx, "generate", func(ctx context.Context) error {
		var err error
		gc, err = p.generate(ctx, userID, videoID, sourceURL, opts)
		return err
	})
	return gc, err
}

func (p *Pipeline) generate(ctx context.Context, userID, videoID, sourceURL string, opts Options) (*GeneratedContent, error) {
	src, err := p.resolveSource(ctx, videoID)
	if err != nil {
		engine.IncrGenerateErrors()
		return nil, err
	}

	gc := GenerateFromSource(src, opts)

	if p.Store != nil {
		if err := p.Store.SaveGeneration(ctx, userID, videoID, sourceURL, gc, src.Kind); err != nil {
			engine.IncrPersistErrors()
			slog.Warn("pipeline: persist failed",
				slog.String("id", videoID), slog.Any("err", err))
		}
	}
	return gc, nil
}

// Hooks resolves the video's topic and renders the viral hook catalogue.
// When topic is non-empty the resolvers are skipped entirely. Returns the
// hooks and the topic they were rendered for.
func (p *Pipeline) Hooks(ctx context.Context, videoID, topic string) ([]ViralHook, string, error) {
	engine.IncrHookRequests()
	if topic != "" {
		return GenerateViralHooks(topic), topic, nil
	}

	src, err := p.resolveSource(ctx, videoID)
	if err != nil {
		return nil, "", err
	}
	contentType := ClassifyContentType(classificationText(src))
	vc := BuildContext(src, contentType)
	return GenerateViralHooks(vc.Topic), vc.Topic, nil
}

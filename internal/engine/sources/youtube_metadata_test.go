package sources

import (
	"strings"
	"testing"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
)

func TestValidateMetadata(t *testing.T) {
	engine.Init(engine.Config{})

	longDesc := strings.Repeat("marketing strategy for creators ", 4)

	tests := []struct {
		name string
		md   *VideoMetadata
		want bool
	}{
		{"nil", nil, false},
		{"short title and description", &VideoMetadata{Title: "A", Description: "too short"}, false},
		{"long description alone", &VideoMetadata{Description: longDesc}, true},
		{"long title alone", &VideoMetadata{Title: strings.Repeat("t", 60)}, true},
		{"combined length reaches floor", &VideoMetadata{Title: strings.Repeat("t", 30), Description: strings.Repeat("d", 25)}, true},
		{"combined length just under", &VideoMetadata{Title: strings.Repeat("t", 30), Description: strings.Repeat("d", 19)}, false},
		{"sufficient", &VideoMetadata{Title: "A", Description: longDesc}, true},
		{"whitespace does not count", &VideoMetadata{Title: strings.Repeat(" ", 100), Description: strings.Repeat(" ", 100)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateMetadata(tt.md); got != tt.want {
				t.Errorf("ValidateMetadata = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "check out my course", "check out my course"},
		{"whitespace collapsed", "line one\n\nline   two", "line one line two"},
		{"html converted", "<p>hello <b>world</b></p>", "hello **world**"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanDescription(tt.in); got != tt.want {
				t.Errorf("cleanDescription(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseWatchPageMetadata(t *testing.T) {
	page := `<!DOCTYPE html><html><head>
	<meta property="og:title" content="How To Grow on YouTube">
	<meta property="og:description" content="Truncated og description...">
	</head><body><script>
	var ytInitialPlayerResponse = {"videoDetails":{"title":"How To Grow on YouTube","shortDescription":"The full description with every detail spelled out.","author":"Creator Lab"}};
	</script></body></html>`

	md, err := parseWatchPageMetadata([]byte(page))
	if err != nil {
		t.Fatalf("parseWatchPageMetadata: %v", err)
	}
	if md.Title != "How To Grow on YouTube" {
		t.Errorf("Title = %q", md.Title)
	}
	if md.Description != "The full description with every detail spelled out." {
		t.Errorf("Description = %q (want player response over og:description)", md.Description)
	}
	if md.Channel != "Creator Lab" {
		t.Errorf("Channel = %q", md.Channel)
	}
}

func TestParseWatchPageMetadataOGOnly(t *testing.T) {
	page := `<html><head>
	<meta property="og:title" content="Fallback Title">
	<meta property="og:description" content="og description text">
	</head></html>`

	md, err := parseWatchPageMetadata([]byte(page))
	if err != nil {
		t.Fatalf("parseWatchPageMetadata: %v", err)
	}
	if md.Title != "Fallback Title" || md.Description != "og description text" {
		t.Errorf("got %+v", md)
	}
}

func TestParseWatchPageMetadataNoTitle(t *testing.T) {
	if _, err := parseWatchPageMetadata([]byte("<html><head></head></html>")); err == nil {
		t.Error("want error when page has no title")
	}
}

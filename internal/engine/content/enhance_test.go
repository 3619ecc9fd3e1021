package content

import (
	"strings"
	"testing"
)

func TestEnhance(t *testing.T) {
	tests := []struct {
		name, enhancement, in, want string
	}{
		{"more viral", "more-viral", "this works", "🔥 MIND-BLOWING THIS WORKS 🔥 You won't believe this!"},
		{"simpler", "simpler", "utilize this, consequently win, furthermore repeat", "use this, so win, also repeat"},
		{"emojis", "add-emojis", "Done! Next.", "Done! ✨ Next. 🎯"},
		{"unknown is identity", "rewrite", "unchanged", "unchanged"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Enhance(tt.in, tt.enhancement); got != tt.want {
				t.Errorf("Enhance(%q) = %q, want %q", tt.enhancement, got, tt.want)
			}
		})
	}
}

func TestEnhanceShorter(t *testing.T) {
	in := "One sentence here. Two sentences here. Three sentences here. Four sentences here. Five sentences here."
	got := Enhance(in, "shorter")
	if !strings.HasSuffix(got, ".") {
		t.Errorf("missing trailing period: %q", got)
	}
	if strings.Contains(got, "Four") || strings.Contains(got, "Five") {
		t.Errorf("kept too many sentences: %q", got)
	}
	if !strings.Contains(got, "Three") {
		t.Errorf("dropped too many sentences: %q", got)
	}
}

func TestEnhanceCarousel(t *testing.T) {
	got := Enhance("First point. Second point.", "carousel")
	want := "Slide 1: First point\n\nSlide 2: Second point"
	if got != want {
		t.Errorf("carousel = %q, want %q", got, want)
	}
}

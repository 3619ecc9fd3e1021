package content

import (
	"strings"
	"testing"
)

func TestApplyTone(t *testing.T) {
	tests := []struct {
		name, tone, in, want string
	}{
		{"professional strips exclamations", "professional", "This is awesome guys!", "This is excellent professionals."},
		{"casual", "casual", "professional advice, therefore useful", "folks advice, so useful"},
		{"viral appends suffix", "viral", "Watch this", "Watch this This will blow your mind! 🔥"},
		{"educational", "educational", "a good and great idea", "a educational and highly informative idea"},
		{"storytelling wraps", "storytelling", "growth", "Let me tell you a story about growth"},
		{"unknown tone is identity", "sarcastic", "unchanged", "unchanged"},
		{"empty tone is identity", "", "unchanged", "unchanged"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyTone(tt.in, tt.tone); got != tt.want {
				t.Errorf("ApplyTone = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyPersona(t *testing.T) {
	tests := []struct {
		persona, wantPrefix string
	}{
		{"founder", "As someone who has built multiple businesses, let me share that "},
		{"content-creator", "After creating content for years, I've found that "},
		{"marketer", "From a marketing perspective, "},
		{"teacher", "Let me break this down for you: "},
		{"influencer", "OMG you guys, "},
	}
	for _, tt := range tests {
		t.Run(tt.persona, func(t *testing.T) {
			got := ApplyPersona("the rest", tt.persona)
			if got != tt.wantPrefix+"the rest" {
				t.Errorf("ApplyPersona = %q", got)
			}
		})
	}
	if got := ApplyPersona("unchanged", "astronaut"); got != "unchanged" {
		t.Errorf("unknown persona: %q", got)
	}
}

func TestApplyLanguage(t *testing.T) {
	in := "This video focuses on growth and continuous learning"

	if got := ApplyLanguage(in, "english"); got != in {
		t.Errorf("english must be identity, got %q", got)
	}

	hi := ApplyLanguage(in, "hindi")
	if !strings.Contains(hi, "यह वीडियो इस बारे में ध्यान देता है") || !strings.Contains(hi, "निरंतर सीखना") {
		t.Errorf("hindi = %q", hi)
	}

	hl := ApplyLanguage(in, "hinglish")
	if !strings.Contains(hl, "Is video mein focus hai") {
		t.Errorf("hinglish = %q", hl)
	}

	es := ApplyLanguage(in, "spanish")
	if !strings.Contains(es, "Este video se enfoca en") || !strings.Contains(es, "aprendizaje continuo") {
		t.Errorf("spanish = %q", es)
	}
}

func TestStyleOrderMatters(t *testing.T) {
	// The canonical order strips '!' before the viral persona path could see
	// it; swapping tone and persona yields a different string.
	in := "results matter!"
	opts := Options{Tone: "professional", Persona: "influencer"}

	canonical := Style(in, opts)
	swapped := ApplyTone(ApplyPersona(in, opts.Persona), opts.Tone)

	if canonical == swapped {
		t.Errorf("expected different output when persona runs before tone, both gave %q", canonical)
	}
	if canonical != "OMG you guys, results matter." {
		t.Errorf("canonical = %q", canonical)
	}
	// Swapped order also rewrites "guys" inside the persona prefix.
	if swapped != "OMG you professionals, results matter." {
		t.Errorf("swapped = %q", swapped)
	}
}

func TestStyleAllPreservesLength(t *testing.T) {
	items := []string{"one!", "two!", "three!"}
	out := styleAll(items, Options{Tone: "professional"})
	if len(out) != len(items) {
		t.Fatalf("len = %d", len(out))
	}
	for i, s := range out {
		if strings.Contains(s, "!") {
			t.Errorf("item %d kept '!': %q", i, s)
		}
	}
	if items[0] != "one!" {
		t.Error("styleAll mutated its input")
	}
}

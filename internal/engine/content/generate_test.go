package content

import (
	"reflect"
	"strings"
	"testing"
)

func testContext() VideoContext {
	return VideoContext{
		Topic:       "content marketing",
		MainIdea:    "Consistency beats intensity when growing an audience",
		Audience:    "Professionals and entrepreneurs seeking business insights",
		ContentType: TypeBusiness,
		Source:      SourceTranscript,
		Content:     "irrelevant for generators",
	}
}

func TestGeneratorItemCounts(t *testing.T) {
	vc := testContext()

	counts := []struct {
		name string
		got  int
		want int
	}{
		{"instagram", len(generateInstagramPosts(vc)), 3},
		{"linkedin", len(generateLinkedInPosts(vc)), 3},
		{"twitter", len(generateTwitterPosts(vc)), 3},
		{"captions", len(generateShortCaptions(vc)), 10},
		{"takeaways", len(generateKeyTakeaways(vc)), 12},
		{"titles", len(generateTitleIdeas(vc)), 10},
		{"thumbnails", len(generateThumbnailIdeas(vc)), 6},
		{"shorts", len(GenerateShortVideoScripts(vc)), 2},
		{"hooks", len(GenerateViralHooks(vc.Topic)), 10},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("%s: %d items, want %d", c.name, c.got, c.want)
		}
	}
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	opts := Options{Tone: "professional", Persona: "founder", Language: "hinglish", IncludeShorts: true, IncludeAnalytics: true}
	src := SourceInput{Kind: SourceTranscript, Transcript: "business strategy business strategy for startup founders explained in one longer sentence here"}

	first := GenerateFromSource(src, opts)
	second := GenerateFromSource(src, opts)

	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over identical input produced different output")
	}
}

func TestGenerateCarriesLanguageContext(t *testing.T) {
	hinglish := SourceInput{Kind: SourceTranscript, Transcript: "business strategy samjho bhai growing a startup company right now with patience and focus"}
	if gc := GenerateFromSource(hinglish, Options{}); gc.Language != LangHinglish {
		t.Errorf("Language = %q, want %q", gc.Language, LangHinglish)
	}

	english := SourceInput{Kind: SourceTranscript, Transcript: "how to grow a startup company from zero and find your first paying customers without funding"}
	if gc := GenerateFromSource(english, Options{}); gc.Language != LangEnglish {
		t.Errorf("Language = %q, want %q", gc.Language, LangEnglish)
	}
}

func TestBlogUsesCapitalizedTopic(t *testing.T) {
	vc := testContext()
	blog := generateBlogArticle(vc)
	if !strings.Contains(blog, "# The Ultimate Guide to Content marketing") {
		t.Errorf("blog heading missing capitalized topic:\n%s", blog[:80])
	}
	if !strings.Contains(blog, strings.ToLower(vc.Audience)) {
		t.Error("blog intro missing lower-cased audience")
	}
}

func TestShortSummaryMentionsAudience(t *testing.T) {
	vc := testContext()
	s := generateShortSummary(vc)
	if !strings.Contains(s, "content marketing") {
		t.Errorf("summary missing topic: %q", s)
	}
	if !strings.Contains(s, "professionals and entrepreneurs") {
		t.Errorf("summary missing audience phrase: %q", s)
	}
}

func TestHashtagsHaveNoSpaces(t *testing.T) {
	vc := testContext()
	for _, post := range generateInstagramPosts(vc) {
		for _, line := range strings.Split(post, "\n") {
			if strings.HasPrefix(line, "#") && strings.Contains(strings.Fields(line)[0], "content marketing") {
				t.Errorf("hashtag kept embedded space: %q", line)
			}
		}
	}
	if got := generateThumbnailIdeas(vc)[2]; got != "CONTENTMARKETING 101" {
		t.Errorf("thumbnail 101 = %q", got)
	}
}

func TestViralHooksSorted(t *testing.T) {
	hooks := GenerateViralHooks("cooking")
	for i := 1; i < len(hooks); i++ {
		if hooks[i].Effectiveness > hooks[i-1].Effectiveness {
			t.Fatalf("hooks not sorted descending at %d: %d > %d", i, hooks[i].Effectiveness, hooks[i-1].Effectiveness)
		}
	}
	if hooks[0].Effectiveness != 92 || hooks[0].Category != HookCuriosity {
		t.Errorf("top hook = %+v", hooks[0])
	}
	for _, h := range hooks {
		if !strings.Contains(h.Hook, "cooking") {
			t.Errorf("hook missing topic: %q", h.Hook)
		}
	}
}

func TestShortScriptsSubstituteTopic(t *testing.T) {
	scripts := GenerateShortVideoScripts(testContext())
	if scripts[0].Duration != 30 || scripts[1].Duration != 45 {
		t.Errorf("durations = %d, %d", scripts[0].Duration, scripts[1].Duration)
	}
	for _, s := range scripts {
		if !strings.Contains(s.CTA, "content marketing") {
			t.Errorf("cta missing topic: %q", s.CTA)
		}
		if len(s.OnScreenText) != 5 {
			t.Errorf("onScreenText: %d items, want 5", len(s.OnScreenText))
		}
	}
}

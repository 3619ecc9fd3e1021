package content

import (
	"sort"
	"strings"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
)

// transcriptStopWords are filler words excluded from topic extraction.
var transcriptStopWords = map[string]bool{
	"content": true, "video": true, "youtube": true, "channel": true,
	"watch": true, "like": true, "subscribe": true,
}

// metadataTopics maps a topic label to keywords that trigger it. Scanned in
// order; the first label with any keyword hit wins.
var metadataTopics = []struct {
	label    string
	keywords []string
}{
	{"digital marketing", []string{"marketing", "social media", "seo", "content marketing", "brand", "advertising"}},
	{"business strategy", []string{"business", "strategy", "entrepreneur", "startup", "growth", "revenue"}},
	{"technology", []string{"technology", "tech", "software", "ai", "automation", "digital"}},
	{"education", []string{"learn", "tutorial", "guide", "course", "education", "skill"}},
	{"entertainment", []string{"comedy", "entertainment", "fun", "humor", "show", "series"}},
	{"personal development", []string{"personal", "development", "self", "growth", "mindset", "success"}},
}

// canned per-type fallbacks used when the source text yields nothing usable.
var (
	mainIdeaFallbacks = map[ContentType]string{
		TypeEntertainment: "Creating engaging family entertainment that brings joy and laughter",
		TypeEducation:     "Providing valuable knowledge and practical learning experiences",
		TypeBusiness:      "Sharing business insights and strategies for professional growth",
		TypeDiscussion:    "Exploring important topics through meaningful conversations",
		TypeUnknown:       "Sharing valuable content and insights with audience",
	}
	audiencePhrases = map[ContentType]string{
		TypeEntertainment: "General audience looking for family-friendly entertainment",
		TypeEducation:     "Students and learners seeking knowledge and skills",
		TypeBusiness:      "Professionals and entrepreneurs seeking business insights",
		TypeDiscussion:    "Thoughtful individuals interested in meaningful conversations",
		TypeUnknown:       "General audience interested in valuable content",
	}
)

// topicFromTranscript returns the three most frequent words longer than four
// characters, excluding stop words, ranked by descending frequency with ties
// broken by first occurrence. Empty input falls back to "content creation".
func topicFromTranscript(transcript string) string {
	type wordCount struct {
		word  string
		count int
		first int
	}
	counts := make(map[string]*wordCount)
	var order []*wordCount

	for i, w := range strings.Fields(strings.ToLower(transcript)) {
		if len(w) <= 4 || transcriptStopWords[w] {
			continue
		}
		if wc, ok := counts[w]; ok {
			wc.count++
			continue
		}
		wc := &wordCount{word: w, count: 1, first: i}
		counts[w] = wc
		order = append(order, wc)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	top := make([]string, 0, 3)
	for _, wc := range order {
		top = append(top, wc.word)
		if len(top) == 3 {
			break
		}
	}
	if len(top) == 0 {
		return "content creation"
	}
	return strings.Join(top, " ")
}

// topicFromMetadata scans the topic table against lower-cased title plus
// description; falls back to the first three words of the title.
func topicFromMetadata(title, description string) string {
	combined := strings.ToLower(title + " " + description)
	for _, t := range metadataTopics {
		for _, kw := range t.keywords {
			if strings.Contains(combined, kw) {
				return t.label
			}
		}
	}
	words := strings.Fields(title)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}

// extractMainIdea takes the first period-delimited segment longer than 20
// characters, truncated to 150; otherwise a canned per-type phrase.
func extractMainIdea(text string, contentType ContentType) string {
	for _, seg := range strings.Split(text, ".") {
		trimmed := strings.TrimSpace(seg)
		if len(trimmed) > 20 {
			return engine.TruncateRunes(trimmed, 150, "")
		}
	}
	if idea, ok := mainIdeaFallbacks[contentType]; ok {
		return idea
	}
	return mainIdeaFallbacks[TypeUnknown]
}

func identifyAudience(contentType ContentType) string {
	if a, ok := audiencePhrases[contentType]; ok {
		return a
	}
	return audiencePhrases[TypeUnknown]
}

// BuildContext derives the compact record every generator reads. The source
// must carry non-empty text; the orchestrator guarantees that before calling.
func BuildContext(src SourceInput, contentType ContentType) VideoContext {
	text := src.Text()

	var topic string
	if src.Kind == SourceTranscript {
		topic = topicFromTranscript(src.Transcript)
	} else {
		topic = topicFromMetadata(src.Title, src.Description)
	}

	return VideoContext{
		Topic:       topic,
		MainIdea:    extractMainIdea(text, contentType),
		Audience:    identifyAudience(contentType),
		ContentType: contentType,
		Language:    DetectLanguageContext(text),
		Source:      src.Kind,
		Content:     text,
	}
}

package content

import (
	"regexp"
	"strings"
)

// Keyword tables for content-type classification. Matching is naive
// substring containment on the lower-cased text, so a keyword embedded
// inside a longer word still counts.
var (
	entertainmentKeywords = []string{
		"episode", "sitcom", "comedy", "show", "series", "drama",
		"taarak mehta", "tmkuc", "yeh rishta", "kapil sharma",
		"funny", "laugh", "humor", "entertainment", "character",
	}
	educationKeywords = []string{
		"tutorial", "how to", "guide", "learn", "course", "lesson",
		"educational", "training", "workshop", "step by step",
	}
	discussionKeywords = []string{
		"podcast", "interview", "discussion", "talk", "conversation",
		"debate", "panel", "q&a", "ask me anything",
	}
	businessKeywords = []string{
		"business", "startup", "marketing", "entrepreneur", "revenue",
		"profit", "company", "corporate", "sales", "strategy",
	}
)

// categoryOrder fixes the tie-break: when two categories share the highest
// positive keyword count, the one listed first wins.
var categoryOrder = []struct {
	name     ContentType
	keywords []string
}{
	{TypeEntertainment, entertainmentKeywords},
	{TypeEducation, educationKeywords},
	{TypeDiscussion, discussionKeywords},
	{TypeBusiness, businessKeywords},
}

func countKeywords(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

// ClassifyContentType picks the category with the most keyword hits in the
// text. Zero hits across all categories yields TypeUnknown.
func ClassifyContentType(text string) ContentType {
	clean := strings.ToLower(text)

	best := TypeUnknown
	bestScore := 0
	for _, cat := range categoryOrder {
		if score := countKeywords(clean, cat.keywords); score > bestScore {
			best = cat.name
			bestScore = score
		}
	}
	return best
}

// hindiIndicators are common Hindi words and Hindi-TV tokens counted as
// substrings for language detection.
var hindiIndicators = []string{
	"namaste", "ji", "bhai", "didi", "babuji", "aap", "hum", "tum",
	"mehta", "taarak", "daya", "jethalal", "chashmah", "gokuldham",
	"hai", "hain", "ki", "ko", "se", "mein", "par", "ke liye",
}

var lowercaseWordRe = regexp.MustCompile(`\b[a-z]+\b`)

// DetectLanguageContext classifies the language mix of the text:
// three or more Hindi indicators means hindi, one or two means hinglish,
// otherwise more than ten lowercase English words means english.
func DetectLanguageContext(text string) LanguageContext {
	clean := strings.ToLower(text)

	hindiScore := countKeywords(clean, hindiIndicators)
	if hindiScore >= 3 {
		return LangHindi
	}
	if hindiScore >= 1 {
		return LangHinglish
	}
	if len(lowercaseWordRe.FindAllString(clean, -1)) > 10 {
		return LangEnglish
	}
	return LangUnknown
}

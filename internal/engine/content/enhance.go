package content

import (
	"fmt"
	"strings"
)

// Enhance rewrites already-generated content with one of the fixed
// transforms. Unrecognized enhancement names return the input unchanged.
func Enhance(text, enhancement string) string {
	switch enhancement {
	case "shorter":
		return makeShorter(text)
	case "more-viral":
		return "🔥 MIND-BLOWING " + strings.ToUpper(text) + " 🔥 You won't believe this!"
	case "simpler":
		text = strings.ReplaceAll(text, "utilize", "use")
		text = strings.ReplaceAll(text, "consequently", "so")
		return strings.ReplaceAll(text, "furthermore", "also")
	case "add-emojis":
		text = strings.ReplaceAll(text, "!", "! ✨")
		return strings.ReplaceAll(text, ".", ". 🎯")
	case "carousel":
		return toCarousel(text)
	default:
		return text
	}
}

// makeShorter keeps the first 60% of sentences (rounded up).
func makeShorter(text string) string {
	sentences := nonEmptySentences(text)
	if len(sentences) == 0 {
		return text
	}
	keep := (len(sentences)*6 + 9) / 10
	return strings.Join(sentences[:keep], ". ") + "."
}

// toCarousel turns each sentence into a numbered slide.
func toCarousel(text string) string {
	sentences := nonEmptySentences(text)
	slides := make([]string, len(sentences))
	for i, s := range sentences {
		slides[i] = fmt.Sprintf("Slide %d: %s", i+1, strings.TrimSpace(s))
	}
	return strings.Join(slides, "\n\n")
}

func nonEmptySentences(text string) []string {
	var out []string
	for _, s := range strings.Split(text, ".") {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

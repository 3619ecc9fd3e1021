package content

import "strings"

// Style post-processing. Transforms are plain string substitutions applied
// in a fixed order: tone, then persona, then language. The order matters
// and is part of the output contract.

// ApplyTone applies superficial tone transforms. Unrecognized tones are a
// no-op.
func ApplyTone(text, tone string) string {
	switch tone {
	case "professional":
		text = strings.ReplaceAll(text, "!", ".")
		text = strings.ReplaceAll(text, "awesome", "excellent")
		return strings.ReplaceAll(text, "guys", "professionals")
	case "casual":
		text = strings.ReplaceAll(text, "professional", "folks")
		return strings.ReplaceAll(text, "therefore", "so")
	case "viral":
		return text + " This will blow your mind! 🔥"
	case "educational":
		text = strings.ReplaceAll(text, "good", "educational")
		return strings.ReplaceAll(text, "great", "highly informative")
	case "storytelling":
		return "Let me tell you a story about " + text
	default:
		return text
	}
}

// ApplyPersona prepends a fixed framing phrase. Unrecognized personas are a
// no-op.
func ApplyPersona(text, persona string) string {
	switch persona {
	case "founder":
		return "As someone who has built multiple businesses, let me share that " + text
	case "content-creator":
		return "After creating content for years, I've found that " + text
	case "marketer":
		return "From a marketing perspective, " + text
	case "teacher":
		return "Let me break this down for you: " + text
	case "influencer":
		return "OMG you guys, " + text
	default:
		return text
	}
}

// ApplyLanguage runs the text through the phrase table for the target
// language. These are literal substring substitutions, not translation;
// table order is significant and must not be changed.
func ApplyLanguage(text, language string) string {
	switch language {
	case "hindi":
		return substitutePhrases(text, hindiPhrases)
	case "hinglish":
		return substitutePhrases(text, hinglishPhrases)
	case "spanish":
		return substitutePhrases(text, spanishPhrases)
	default:
		return text
	}
}

type phrasePair struct {
	from, to string
}

func substitutePhrases(text string, table []phrasePair) string {
	for _, p := range table {
		text = strings.ReplaceAll(text, p.from, p.to)
	}
	return text
}

// Style applies tone, persona, and language in that order to one string.
func Style(text string, opts Options) string {
	text = ApplyTone(text, opts.Tone)
	text = ApplyPersona(text, opts.Persona)
	return ApplyLanguage(text, opts.Language)
}

// styleAll applies Style to every item of a sequence, returning a new slice.
func styleAll(items []string, opts Options) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = Style(item, opts)
	}
	return out
}

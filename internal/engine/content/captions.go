package content

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
)

// Caption, takeaway, title, and thumbnail generators. Item counts are fixed:
// 10 captions, 12 takeaways, 10 titles, 6 thumbnails.

func generateShortCaptions(vc VideoContext) []string {
	topicTitle := engine.Capitalize(vc.Topic)
	return []string{
		fmt.Sprintf("Mastering %s one step at a time", vc.Topic),
		fmt.Sprintf("%s excellence starts here", topicTitle),
		fmt.Sprintf("Transform your approach to %s", vc.Topic),
		fmt.Sprintf("The %s journey continues", vc.Topic),
		fmt.Sprintf("Building expertise in %s", vc.Topic),
		fmt.Sprintf("%s insights that matter", vc.Topic),
		fmt.Sprintf("Elevate your %s game", vc.Topic),
		fmt.Sprintf("The art of %s mastery", vc.Topic),
		fmt.Sprintf("%s success strategies revealed", vc.Topic),
		fmt.Sprintf("Your path to %s excellence", vc.Topic),
	}
}

func generateKeyTakeaways(vc VideoContext) []string {
	idea := strings.ToLower(vc.MainIdea)
	audience := strings.ToLower(vc.Audience)
	return []string{
		fmt.Sprintf("Understanding %s requires starting with solid fundamentals - don't skip the basics in your rush to advanced topics", vc.Topic),
		fmt.Sprintf("Consistent practice in %s yields better results than sporadic intensive sessions", vc.Topic),
		fmt.Sprintf("%s is the cornerstone of successful %s implementation", idea, vc.Topic),
		fmt.Sprintf("Measuring progress in %s helps identify what's working and what needs adjustment", vc.Topic),
		fmt.Sprintf("The %s benefits most from practical, actionable %s advice rather than theoretical concepts", audience, vc.Topic),
		fmt.Sprintf("Technology and tools can enhance %s effectiveness, but should support, not replace, fundamental understanding", vc.Topic),
		fmt.Sprintf("Community engagement and knowledge sharing accelerate %s mastery through diverse perspectives", vc.Topic),
		fmt.Sprintf("Adaptability in %s approaches is crucial as methods and best practices evolve over time", vc.Topic),
		fmt.Sprintf("Documenting your %s journey creates valuable insights for personal growth and helps others learn", vc.Topic),
		fmt.Sprintf("Balancing depth with breadth in %s knowledge creates well-rounded expertise", vc.Topic),
		fmt.Sprintf("Setting specific, measurable goals for %s progress provides clear direction and motivation", vc.Topic),
		fmt.Sprintf("The most successful %s practitioners combine theoretical knowledge with practical application", vc.Topic),
	}
}

func generateTitleIdeas(vc VideoContext) []string {
	topicTitle := engine.Capitalize(vc.Topic)
	return []string{
		fmt.Sprintf("The Complete Guide to %s", topicTitle),
		fmt.Sprintf("Master %s: From Beginner to Expert", vc.Topic),
		fmt.Sprintf("%s Strategies That Actually Work", topicTitle),
		fmt.Sprintf("The Ultimate %s Framework", topicTitle),
		fmt.Sprintf("%s: A Deep Dive into %s", engine.Capitalize(vc.MainIdea), vc.Topic),
		fmt.Sprintf("Advanced %s Techniques for %s", vc.Topic, engine.FirstWord(vc.Audience)),
		fmt.Sprintf("%s Excellence: Proven Methods and Results", topicTitle),
		fmt.Sprintf("The Science Behind Successful %s", vc.Topic),
		fmt.Sprintf("Practical %s Solutions for Real-World Challenges", vc.Topic),
		fmt.Sprintf("Elevate Your %s Game: Expert Insights and Strategies", vc.Topic),
	}
}

func generateThumbnailIdeas(vc VideoContext) []string {
	topicUpper := strings.ToUpper(vc.Topic)
	return []string{
		topicUpper + " MASTERY",
		strings.ToUpper(engine.FirstWord(vc.MainIdea)) + " SECRETS",
		strings.ToUpper(engine.HashtagToken(vc.Topic)) + " 101",
		"EXPERT " + topicUpper,
		topicUpper + " TRANSFORMATION",
		"ULTIMATE " + topicUpper + " GUIDE",
	}
}

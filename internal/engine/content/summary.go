package content

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
)

// Summary and blog generators. Each is a pure template over VideoContext;
// style transforms are applied afterwards by the orchestrator.

func generateShortSummary(vc VideoContext) string {
	return fmt.Sprintf(
		"This video focuses on %s, providing valuable insights for %s. The content delivers practical information in an accessible format.",
		vc.Topic, strings.ToLower(vc.Audience))
}

func generateDetailedSummary(vc VideoContext) string {
	return fmt.Sprintf(
		"This comprehensive video explores %s in detail, providing viewers with a thorough understanding of the subject matter. "+
			"The content begins by establishing the foundation, ensuring accessibility for new viewers. "+
			"As it progresses, it delves into advanced aspects while maintaining engagement through clear explanations. "+
			"The video concludes with actionable takeaways that viewers can implement immediately, making it both informative and practical.",
		vc.Topic)
}

func generateBlogArticle(vc VideoContext) string {
	topicTitle := engine.Capitalize(vc.Topic)
	return fmt.Sprintf(`# The Ultimate Guide to %s

## Introduction

In today's competitive landscape, mastering %s has become essential for %s. This comprehensive guide provides actionable strategies and insights that you can implement immediately.

## Key Strategies

### 1. Understanding the Fundamentals

Before diving into advanced techniques, it's crucial to master the basics. %s requires a solid foundation to build upon. Start by identifying core components and how they interact with each other.

### 2. Implementation Strategies

The real value comes from practical application. Begin with small, manageable projects and gradually increase complexity as you gain confidence. Remember that implementation is an iterative process of learning and refining.

### 3. Advanced Techniques

Once you've mastered the basics, explore advanced approaches that can elevate your results. This might include automation tools, collaboration strategies, or integration with complementary disciplines.

## Common Challenges and Solutions

Many practitioners face similar obstacles when working with %s. Information overload, lack of consistency, and difficulty measuring progress are common issues. The solution lies in being selective about information sources, creating sustainable routines, and establishing clear metrics for success.

## Conclusion

Mastering %s is a journey that requires dedication and continuous learning. By following the strategies outlined in this guide and staying committed to your growth, you'll achieve your goals and become proficient in this area.

The key is to start now, take consistent action, and remain open to adaptation. Your future self will thank you for the effort you invest today.`,
		topicTitle, vc.Topic, strings.ToLower(vc.Audience), vc.Topic, vc.Topic, vc.Topic)
}

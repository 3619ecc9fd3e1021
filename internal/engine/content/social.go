package content

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
)

// Social post generators. Each platform produces exactly three posts; tests
// assert the counts, so they are part of the contract.

func generateInstagramPosts(vc VideoContext) []string {
	tag := engine.HashtagToken(vc.Topic)
	idea := strings.ToLower(vc.MainIdea)
	return []string{
		fmt.Sprintf(`🎯 Just discovered something game-changing about %s!

This completely transformed how I approach %s.

The best part? It's actually simple once you understand the fundamentals!

Want the full breakdown? Check out my latest post! 👇

#%sTips #Growth #Success`, vc.Topic, idea, tag),

		fmt.Sprintf(`✨ %s mastery alert! 🚀

Been diving deep into %s and the results are incredible:

• Quality over quantity always wins
• Consistency beats intensity every time
• Small steps lead to massive changes

Who else is on this journey? Drop a comment! 👇

#%sJourney #Transformation`, engine.Capitalize(vc.Topic), idea, tag),

		fmt.Sprintf(`📚 %s knowledge bomb! 💣

This isn't theory - it's practical stuff you can use RIGHT NOW:

1. Start with solid fundamentals
2. Practice daily (15 minutes helps!)
3. Track your progress religiously
4. Stay curious and keep learning

The transformation happens when you commit to the process!

Ready to level up?

#%sMastery #DailyHabits`, vc.Topic, tag),
	}
}

func generateLinkedInPosts(vc VideoContext) []string {
	tag := engine.HashtagToken(vc.Topic)
	idea := strings.ToLower(vc.MainIdea)

	focus := "content creation and audience engagement"
	if vc.ContentType == TypeBusiness {
		focus = "business strategy and professional development"
	}

	return []string{
		fmt.Sprintf(`🎯 Strategic Insights on %s

After extensive research and practical application, I've identified the key principles that drive success in %s. The most significant finding? %s.

This approach has transformed how I think about %s. The results speak for themselves - improved efficiency, better outcomes, and sustainable growth.

Key takeaways for professionals:
• Focus on fundamentals before advanced techniques
• Measure what matters to track real progress
• Build systems that support consistent improvement
• Stay adaptable as the landscape evolves

What's your experience with %s? I'd love to hear your insights.

#%s #ProfessionalDevelopment #StrategicThinking`, engine.Capitalize(vc.Topic), vc.Topic, idea, focus, vc.Topic, tag),

		fmt.Sprintf(`📈 From Theory to Practice: Mastering %s

In today's competitive landscape, understanding %s isn't just an advantage - it's essential for %s.

I've spent considerable time analyzing what separates successful practitioners from those who struggle. The difference often comes down to a few critical factors:

1. **Strategic Approach**: Moving beyond random actions to intentional execution
2. **Measurement Systems**: Implementing metrics that actually matter
3. **Continuous Adaptation**: Staying current with evolving best practices
4. **Community Engagement**: Learning from peers and sharing knowledge

For those looking to elevate their %s capabilities, I recommend starting with a comprehensive assessment of your current approach.

#%sExcellence #BusinessGrowth #Innovation`, vc.Topic, vc.Topic, strings.ToLower(vc.Audience), vc.Topic, tag),

		fmt.Sprintf(`💡 Innovation in %s: What's Working Now

The landscape of %s is evolving rapidly, and staying ahead requires understanding both foundational principles and emerging trends.

Recent developments in %s have opened up new possibilities for %s. Organizations that embrace these changes are seeing significant improvements in efficiency and outcomes.

Key observations:
• Technology is enabling more sophisticated approaches
• Data-driven decision making is becoming standard
• Collaboration tools are enhancing knowledge sharing
• Continuous learning is no longer optional

The future of %s looks promising for those who invest in understanding these changes now.

#%sInnovation #FutureOfWork #DigitalTransformation`, vc.Topic, vc.Topic, idea, strings.ToLower(vc.Audience), vc.Topic, tag),
	}
}

func generateTwitterPosts(vc VideoContext) []string {
	tag := engine.HashtagToken(vc.Topic)
	idea := strings.ToLower(vc.MainIdea)
	return []string{
		fmt.Sprintf(`Just had a breakthrough with %s!

%s completely changed my perspective.

The implementation is simpler than you think - start with fundamentals and build from there.

#%s #Learning #Growth`, vc.Topic, idea, tag),

		fmt.Sprintf(`%s insight that actually works:

Focus on systems, not just goals.
Measure what matters.
Stay consistent.

The results will surprise you.

#%sTips #Productivity`, engine.Capitalize(vc.Topic), tag),

		fmt.Sprintf(`Deep dive into %s revealed something powerful:

Most people overcomplicate %s.

The truth? Simple actions, repeated consistently, create extraordinary results.

#%sMastery #SuccessHabits`, vc.Topic, idea, tag),
	}
}

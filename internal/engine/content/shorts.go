package content

import (
	"fmt"
	"strings"
)

// GenerateShortVideoScripts produces the two fixed short-form scripts.
func GenerateShortVideoScripts(vc VideoContext) []ShortVideoScript {
	idea := strings.ToLower(vc.MainIdea)
	return []ShortVideoScript{
		{
			ID:       "1",
			Title:    fmt.Sprintf("%s in 30 Seconds", vc.Topic),
			Duration: 30,
			Hook:     fmt.Sprintf("Stop scrolling! This %s trick will blow your mind", vc.Topic),
			Script: fmt.Sprintf(`Hey everyone! I'm about to show you something that completely changed how I think about %s.

First, let me tell you what most people get wrong...

They think %s is complicated, but it's actually simple when you know this one thing.

Here's the secret: [dramatic pause]

It all comes down to understanding the fundamentals and taking consistent action.

Want to learn more? Follow for part 2!`, vc.Topic, idea),
			OnScreenText: []string{
				"STOP SCROLLING!",
				fmt.Sprintf("%s TRICK", vc.Topic),
				"The Simple Secret",
				"Consistent Action = Results",
				"Follow for Part 2!",
			},
			Voiceover: fmt.Sprintf("Hey everyone! I'm about to show you something that completely changed how I think about %s. First, let me tell you what most people get wrong. They think %s is complicated, but it's actually simple when you know this one thing. Here's the secret: It all comes down to understanding the fundamentals and taking consistent action. Want to learn more? Follow for part 2!", vc.Topic, idea),
			CTA:       fmt.Sprintf("Follow for more %s tips!", vc.Topic),
		},
		{
			ID:       "2",
			Title:    fmt.Sprintf("%s Mistake to Avoid", vc.Topic),
			Duration: 45,
			Hook:     fmt.Sprintf("This %s mistake is costing you", vc.Topic),
			Script: fmt.Sprintf(`If you're making this %s mistake, you need to stop right now.

I see so many people doing this and it's literally holding them back.

The mistake? [lean in closer]

They focus on quantity over quality.

Instead, do this: Focus on one %s strategy and master it completely.

Your results will be 10x better.

Trust me on this one!`, vc.Topic, vc.Topic),
			OnScreenText: []string{
				"STOP DOING THIS!",
				"The Big Mistake",
				"Quantity vs Quality",
				"Focus on ONE Strategy",
				"10x Better Results!",
			},
			Voiceover: fmt.Sprintf("If you're making this %s mistake, you need to stop right now. I see so many people doing this and it's literally holding them back. The mistake? They focus on quantity over quality. Instead, do this: Focus on one %s strategy and master it completely. Your results will be 10x better. Trust me on this one!", vc.Topic, vc.Topic),
			CTA:       fmt.Sprintf("Save this %s tip!", vc.Topic),
		},
	}
}

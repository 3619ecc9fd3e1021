package content

import (
	"fmt"
	"sort"
)

// hookCatalogue is the fixed set of hook templates. Effectiveness values are
// hard-coded; the output is re-sorted by effectiveness descending each call.
var hookCatalogue = []struct {
	id            string
	template      string
	category      HookCategory
	effectiveness int
}{
	{"1", "I tried %s for 30 days and the results shocked everyone", HookCuriosity, 92},
	{"2", "This one %s trick changed everything I thought I knew", HookValue, 88},
	{"3", "Why nobody talks about this %s secret anymore", HookControversy, 85},
	{"4", "The %s method that works every single time", HookValue, 90},
	{"5", "I spent $5000 on %s courses so you don't have to", HookValue, 87},
	{"6", "This %s mistake costs beginners thousands", HookUrgency, 83},
	{"7", "The truth about %s that industry doesn't want you to know", HookControversy, 91},
	{"8", "How I mastered %s in half the time", HookStory, 86},
	{"9", "This %s strategy is so simple it feels illegal", HookCuriosity, 89},
	{"10", "The %s framework that guarantees results", HookValue, 84},
}

// GenerateViralHooks renders the hook catalogue for a topic, sorted by
// effectiveness descending. The sort is stable so equal scores keep
// catalogue order.
func GenerateViralHooks(topic string) []ViralHook {
	hooks := make([]ViralHook, len(hookCatalogue))
	for i, h := range hookCatalogue {
		hooks[i] = ViralHook{
			ID:            h.id,
			Hook:          fmt.Sprintf(h.template, topic),
			Category:      h.category,
			Effectiveness: h.effectiveness,
		}
	}
	sort.SliceStable(hooks, func(i, j int) bool {
		return hooks[i].Effectiveness > hooks[j].Effectiveness
	})
	return hooks
}

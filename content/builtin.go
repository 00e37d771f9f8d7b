package content

import "github.com/halcyard/calmdeck/card"

var defaultGradient = []string{"#667eea", "#764ba2"}

// builtinSpecs is the starter deck shipped with the app, used when no deck
// file is configured
var builtinSpecs = []struct {
	text, category               string
	gradient                     []string
	meaning, affirmation, action string
}{
	{
		text:        "I am enough, exactly as I am",
		category:    "self-worth",
		gradient:    []string{"#667eea", "#764ba2"},
		meaning:     "Your value does not depend on productivity or approval.",
		affirmation: "I release the need to prove myself today.",
		action:      "Name one thing you did well this week.",
	},
	{
		text:        "This moment is all I need to handle",
		category:    "calm",
		gradient:    []string{"#43cea2", "#185a9d"},
		meaning:     "Anxiety lives in imagined futures; peace lives here.",
		affirmation: "I return my attention to my breath.",
		action:      "Take three slow breaths before your next task.",
	},
	{
		text:        "Small steps still move me forward",
		category:    "growth",
		gradient:    []string{"#f093fb", "#f5576c"},
		meaning:     "Progress compounds even when each day feels minor.",
		action:      "Pick the smallest useful step and do only that.",
	},
	{
		text:     "I can begin again at any time",
		category: "renewal",
		gradient: []string{"#fa709a", "#fee140"},
		meaning:  "A bad morning does not have to become a bad day.",
	},
	{
		text:        "My rest is as productive as my work",
		category:    "balance",
		gradient:    []string{"#30cfd0", "#330867"},
		affirmation: "I give myself permission to stop.",
		action:      "Schedule ten unplanned minutes today.",
	},
	{
		text:     "I notice my thoughts without becoming them",
		category: "mindfulness",
		gradient: []string{"#a8edea", "#fed6e3"},
	},
}

// BuiltinDeck returns the embedded starter deck
func BuiltinDeck() *card.Deck {
	cards := make([]*card.Card, 0, len(builtinSpecs))
	for _, s := range builtinSpecs {
		front := card.Front{Text: s.text, Category: s.category, Gradient: s.gradient}

		var back *card.Back
		b := card.Back{Meaning: s.meaning, Affirmation: s.affirmation, Action: s.action}
		if !b.Empty() {
			back = &b
		}

		cards = append(cards, card.New(front, back))
	}
	return card.NewDeck(cards)
}

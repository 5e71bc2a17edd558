package snapshot

// Narrative lookup tables: auction item titles map to a one-word keyword and
// a conversation prompt used in the generated reports. Pure data, no scoring
// imports, so copy changes never touch the engine.

var keywordByTitle = map[string]string{
	"Adventure":  "explorer",
	"Stability":  "grounded",
	"Creativity": "maker",
	"Ambition":   "driven",
	"Family":     "warm",
	"Freedom":    "independent",
	"Knowledge":  "curious",
	"Humor":      "playful",
	"Health":     "balanced",
	"Romance":    "devoted",
}

var promptByTitle = map[string]string{
	"Adventure":  "Ask about the trip they would leave for tomorrow.",
	"Stability":  "Ask what home means to them.",
	"Creativity": "Ask what they last made with their hands.",
	"Ambition":   "Ask where they want to be in five years.",
	"Family":     "Ask about the person who shaped them most.",
	"Freedom":    "Ask what they would do with a free month.",
	"Knowledge":  "Ask what they are learning right now.",
	"Humor":      "Ask what last made them laugh out loud.",
	"Health":     "Ask about their favorite way to recharge.",
	"Romance":    "Ask about the best date they can imagine.",
}

const (
	defaultKeyword = "kindred"
	defaultPrompt  = "Ask why they fought for the same value you did."
)

// KeywordFor returns the keyword for an item title.
func KeywordFor(title string) string {
	if kw, ok := keywordByTitle[title]; ok {
		return kw
	}
	return defaultKeyword
}

// PromptFor returns the conversation prompt for an item title.
func PromptFor(title string) string {
	if p, ok := promptByTitle[title]; ok {
		return p
	}
	return defaultPrompt
}

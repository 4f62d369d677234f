package landingpage

import (
	"regexp"
	"slices"
	"sort"
	"strings"
)

// PowerWordCategory groups persuasive words by the emotion they trigger.
type PowerWordCategory string

const (
	PowerUrgency     PowerWordCategory = "urgency"
	PowerExclusivity PowerWordCategory = "exclusivity"
	PowerTrust       PowerWordCategory = "trust"
	PowerValue       PowerWordCategory = "value"
	PowerEmotion     PowerWordCategory = "emotion"
	PowerEase        PowerWordCategory = "ease"
)

var powerWords = map[PowerWordCategory][]string{
	PowerUrgency:     {"now", "today", "instantly", "hurry", "limited time", "last chance", "deadline", "before it's gone"},
	PowerExclusivity: {"exclusive", "members only", "invitation", "insider", "secret", "limited", "private"},
	PowerTrust:       {"guaranteed", "guarantee", "proven", "certified", "secure", "trusted", "money-back", "risk-free", "testimonial"},
	PowerValue:       {"free", "save", "bonus", "discount", "affordable", "value", "results"},
	PowerEmotion:     {"amazing", "love", "effortless", "remarkable", "stunning", "breakthrough", "transform"},
	PowerEase:        {"easy", "simple", "fast", "quick", "in minutes", "step-by-step", "no code"},
}

// PowerWordMatch is a power word found in a text.
type PowerWordMatch struct {
	Word     string            `json:"word"`
	Category PowerWordCategory `json:"category"`
}

type powerPattern struct {
	match PowerWordMatch
	re    *regexp.Regexp
}

var powerPatterns = compilePowerWords()

func compilePowerWords() []powerPattern {
	var out []powerPattern
	for _, cat := range PowerWordCategories() {
		for _, w := range powerWords[cat] {
			out = append(out, powerPattern{
				match: PowerWordMatch{Word: w, Category: cat},
				re:    regexp.MustCompile(`(?i)(^|[^\pL\pN])` + regexp.QuoteMeta(w) + `($|[^\pL\pN])`),
			})
		}
	}
	return out
}

// PowerWordCategories returns the categories in a stable order.
func PowerWordCategories() []PowerWordCategory {
	return []PowerWordCategory{PowerUrgency, PowerExclusivity, PowerTrust, PowerValue, PowerEmotion, PowerEase}
}

// PowerWords returns the words in one category.
func PowerWords(c PowerWordCategory) []string {
	words := slices.Clone(powerWords[c])
	if words == nil {
		return []string{}
	}
	return words
}

// PowerWordsIn finds whole-word or whole-phrase power words in text,
// ignoring case. Results are ordered by category, then word.
func PowerWordsIn(text string) []PowerWordMatch {
	out := []PowerWordMatch{}
	if strings.TrimSpace(text) == "" {
		return out
	}
	for _, p := range powerPatterns {
		if p.re.MatchString(text) {
			out = append(out, p.match)
		}
	}
	order := map[PowerWordCategory]int{}
	for i, c := range PowerWordCategories() {
		order[c] = i
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return order[out[i].Category] < order[out[j].Category]
		}
		return out[i].Word < out[j].Word
	})
	return out
}

func hasCategory(matches []PowerWordMatch, c PowerWordCategory) bool {
	for _, m := range matches {
		if m.Category == c {
			return true
		}
	}
	return false
}

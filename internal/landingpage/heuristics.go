// Package landingpage holds conversion heuristics for landing pages and the
// tools to apply them: headline analysis, power-word detection, contrast
// checks and an audit of a parsed HTML page.
package landingpage

import (
	"slices"
	"strings"
)

// Category is a LIFT model conversion factor.
type Category string

const (
	CategoryValueProposition Category = "value-proposition"
	CategoryRelevance        Category = "relevance"
	CategoryClarity          Category = "clarity"
	CategoryAnxiety          Category = "anxiety"
	CategoryDistraction      Category = "distraction"
	CategoryUrgency          Category = "urgency"
)

// Heuristic is one rule of thumb for a converting page.
type Heuristic struct {
	Slug        string   `json:"slug"`
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Fix         string   `json:"fix"`
}

const (
	heuristicClearHeadline = "clear-headline"
	heuristicSubheadline   = "benefit-subheadline"
	heuristicMetaDesc      = "meta-description"
	heuristicSingleH1      = "single-h1"
	heuristicReadableCopy  = "readable-copy"
	heuristicImageAlt      = "image-alt-text"
	heuristicVisibleCTA    = "visible-cta"
	heuristicTrustSignals  = "trust-signals"
	heuristicShortForms    = "short-forms"
	heuristicFocusedCTA    = "focused-cta"
	heuristicUrgencyCue    = "urgency-cue"
)

var heuristics = []Heuristic{
	{Slug: heuristicClearHeadline, Category: CategoryValueProposition, Name: "Clear headline",
		Description: "The main headline states what the visitor gets in six to twelve words.",
		Fix:         "Lead with the outcome the customer wants, not the product name."},
	{Slug: heuristicSubheadline, Category: CategoryValueProposition, Name: "Benefit subheadline",
		Description: "A subheadline explains how the product makes life better.",
		Fix:         "Add one sentence under the headline naming the main benefit."},
	{Slug: heuristicMetaDesc, Category: CategoryRelevance, Name: "Matching search snippet",
		Description: "The meta description sets expectations that the page then meets.",
		Fix:         "Write a 50 to 160 character description that echoes the headline."},
	{Slug: heuristicSingleH1, Category: CategoryClarity, Name: "One main message",
		Description: "Exactly one H1 tells the visitor what the page is about.",
		Fix:         "Keep a single H1 and demote the rest to H2."},
	{Slug: heuristicReadableCopy, Category: CategoryClarity, Name: "Readable copy",
		Description: "Body copy reads at or below a ninth-grade level.",
		Fix:         "Shorten sentences and swap long words for short ones."},
	{Slug: heuristicImageAlt, Category: CategoryClarity, Name: "Described images",
		Description: "Every image has alt text.",
		Fix:         "Describe each image in its alt attribute."},
	{Slug: heuristicVisibleCTA, Category: CategoryClarity, Name: "Visible call to action",
		Description: "The page offers at least one button or button-styled link.",
		Fix:         "Add a button above the fold with an action verb."},
	{Slug: heuristicTrustSignals, Category: CategoryAnxiety, Name: "Trust signals",
		Description: "Testimonials, guarantees or security badges reduce purchase anxiety.",
		Fix:         "Add a testimonial, a money-back guarantee or customer logos near the CTA."},
	{Slug: heuristicShortForms, Category: CategoryAnxiety, Name: "Short forms",
		Description: "Forms ask for five fields or fewer.",
		Fix:         "Remove every field you don't need right now."},
	{Slug: heuristicFocusedCTA, Category: CategoryDistraction, Name: "Focused calls to action",
		Description: "The page pushes three or fewer distinct actions.",
		Fix:         "Pick one primary action and remove competing buttons."},
	{Slug: heuristicUrgencyCue, Category: CategoryUrgency, Name: "Reason to act now",
		Description: "Copy gives a reason to act today, such as a deadline or limited offer.",
		Fix:         "Add an honest time or quantity limit, or a 'start today' benefit."},
}

// Heuristics returns every heuristic.
func Heuristics() []Heuristic {
	return slices.Clone(heuristics)
}

// HeuristicBySlug looks up a heuristic, ignoring case.
func HeuristicBySlug(slug string) (Heuristic, bool) {
	for _, h := range heuristics {
		if strings.EqualFold(h.Slug, strings.TrimSpace(slug)) {
			return h, true
		}
	}
	return Heuristic{}, false
}

// HeuristicsByCategory filters heuristics by LIFT factor.
func HeuristicsByCategory(c Category) []Heuristic {
	out := []Heuristic{}
	for _, h := range heuristics {
		if h.Category == c {
			out = append(out, h)
		}
	}
	return out
}

// GruntQuestion is one of the three questions a visitor must be able to
// answer within five seconds.
type GruntQuestion struct {
	Key      string `json:"key"`
	Question string `json:"question"`
	Hint     string `json:"hint"`
}

const (
	gruntOffer  = "offer"
	gruntBetter = "better"
	gruntBuy    = "buy"
)

var gruntTest = []GruntQuestion{
	{Key: gruntOffer, Question: "What do you offer?",
		Hint: "The headline names the product or outcome in plain words."},
	{Key: gruntBetter, Question: "How will it make my life better?",
		Hint: "A subheadline or description states the benefit."},
	{Key: gruntBuy, Question: "What do I need to do to buy it?",
		Hint: "An obvious call-to-action button is visible."},
}

// GruntTest returns the three grunt-test questions.
func GruntTest() []GruntQuestion {
	return slices.Clone(gruntTest)
}

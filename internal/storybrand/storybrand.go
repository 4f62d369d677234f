// Package storybrand encodes the StoryBrand SB7 framework: seven story
// elements that turn a business message into a story with the customer
// as the hero.
package storybrand

import (
	"slices"
	"strings"
)

// ElementKey identifies one of the seven story elements.
type ElementKey string

const (
	ElementCharacter    ElementKey = "character"
	ElementProblem      ElementKey = "problem"
	ElementGuide        ElementKey = "guide"
	ElementPlan         ElementKey = "plan"
	ElementCallToAction ElementKey = "call-to-action"
	ElementFailure      ElementKey = "failure"
	ElementSuccess      ElementKey = "success"
)

// Category groups elements by their role in the story.
type Category string

const (
	CategoryHero       Category = "hero"
	CategoryConflict   Category = "conflict"
	CategoryResolution Category = "resolution"
	CategoryStakes     Category = "stakes"
)

// Element is one part of the SB7 story.
type Element struct {
	Number      int        `json:"number"`
	Key         ElementKey `json:"key"`
	Name        string     `json:"name"`
	Category    Category   `json:"category"`
	Description string     `json:"description"`
	Questions   []string   `json:"questions"`
	Tips        []string   `json:"tips"`
}

// ProblemLevel is one of the three levels a hero's problem lives on.
type ProblemLevel struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

func (e Element) clone() Element {
	e.Questions = slices.Clone(e.Questions)
	e.Tips = slices.Clone(e.Tips)
	return e
}

var elements = []Element{
	{Number: 1, Key: ElementCharacter, Name: "A Character", Category: CategoryHero,
		Description: "The customer is the hero and wants something specific.",
		Questions: []string{
			"Who is your customer?",
			"What do they want that relates to your brand?",
			"How would you say that desire in a few words?",
		},
		Tips: []string{"Pick one desire and keep it simple.", "The hero is never your company."}},
	{Number: 2, Key: ElementProblem, Name: "Has a Problem", Category: CategoryConflict,
		Description: "A villain causes external, internal and philosophical problems for the hero.",
		Questions: []string{
			"What villain stands in the customer's way?",
			"What external problem does the villain cause?",
			"How does that problem make the customer feel?",
			"Why is it just plain wrong that they have to deal with it?",
		},
		Tips: []string{"Customers buy solutions to internal problems.", "Give the villain a face, even if it is a process."}},
	{Number: 3, Key: ElementGuide, Name: "And Meets a Guide", Category: CategoryResolution,
		Description: "The brand shows up as the guide with empathy and authority.",
		Questions: []string{
			"How do you express empathy for the customer's problem?",
			"What proves your authority: testimonials, numbers, awards, logos?",
		},
		Tips: []string{"Say 'we understand' before 'we are the best'.", "Authority is demonstrated, not claimed."}},
	{Number: 4, Key: ElementPlan, Name: "Who Gives Them a Plan", Category: CategoryResolution,
		Description: "A simple process plan or agreement plan removes confusion and fear.",
		Questions: []string{
			"What three steps does a customer take to do business with you?",
			"What agreements reduce their fear of buying?",
		},
		Tips: []string{"Three or four steps is plenty.", "Name the plan so it is memorable."}},
	{Number: 5, Key: ElementCallToAction, Name: "And Calls Them to Action", Category: CategoryResolution,
		Description: "Direct and transitional calls to action invite the hero to act.",
		Questions: []string{
			"What is your direct call to action?",
			"What transitional offer builds trust with customers not ready to buy?",
		},
		Tips: []string{"Put the direct call to action in the top right of the site.", "Repeat it often."}},
	{Number: 6, Key: ElementFailure, Name: "That Helps Them Avoid Failure", Category: CategoryStakes,
		Description: "Show what is at stake if the hero does not act.",
		Questions: []string{
			"What negative consequences will customers avoid by using your product?",
			"What does it cost them to do nothing?",
		},
		Tips: []string{"A pinch of salt: a little fear goes a long way."}},
	{Number: 7, Key: ElementSuccess, Name: "And Ends in a Success", Category: CategoryStakes,
		Description: "Paint the picture of the hero's life after the problem is solved.",
		Questions: []string{
			"What does life look like after the customer uses your product?",
			"What status, completeness or transformation do they gain?",
		},
		Tips: []string{"Be specific and visual.", "Show the before and after."}},
}

var problemLevels = []ProblemLevel{
	{Key: "external", Name: "External",
		Description: "The tangible, physical problem the hero must solve.",
		Example:     "My lawn is full of weeds."},
	{Key: "internal", Name: "Internal",
		Description: "How the external problem makes the hero feel.",
		Example:     "I'm embarrassed when the neighbors look at my yard."},
	{Key: "philosophical", Name: "Philosophical",
		Description: "Why it is wrong that the hero has to suffer this problem at all.",
		Example:     "Having a nice yard shouldn't take every weekend."},
}

// Elements returns the seven elements in story order.
func Elements() []Element {
	out := make([]Element, len(elements))
	for i, e := range elements {
		out[i] = e.clone()
	}
	return out
}

// ElementByKey looks up an element by key, ignoring case.
func ElementByKey(key string) (Element, bool) {
	for _, e := range elements {
		if strings.EqualFold(string(e.Key), strings.TrimSpace(key)) {
			return e.clone(), true
		}
	}
	return Element{}, false
}

// ElementsByCategory filters elements by story role.
func ElementsByCategory(c Category) []Element {
	out := []Element{}
	for _, e := range elements {
		if e.Category == c {
			out = append(out, e.clone())
		}
	}
	return out
}

// ProblemLevels returns the external, internal and philosophical levels.
func ProblemLevels() []ProblemLevel {
	return slices.Clone(problemLevels)
}

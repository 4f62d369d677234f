package storybrand

import (
	"fmt"
	"strings"
)

// WizardField is one prompt in the interactive brand-script form.
type WizardField struct {
	Key         string     `json:"key"`
	Element     ElementKey `json:"element"`
	Title       string     `json:"title"`
	Placeholder string     `json:"placeholder"`
	// List fields take one item per line.
	List bool `json:"list"`
}

var wizardFields = []WizardField{
	{Key: "character", Element: ElementCharacter, Title: "What does your customer want?", Placeholder: "Busy parents want healthy dinners"},
	{Key: "problem.villain", Element: ElementProblem, Title: "Who or what is the villain?", Placeholder: "Takeout menus full of junk"},
	{Key: "problem.external", Element: ElementProblem, Title: "External problem", Placeholder: "No time to plan meals"},
	{Key: "problem.internal", Element: ElementProblem, Title: "Internal problem", Placeholder: "Feeling guilty about what the kids eat"},
	{Key: "problem.philosophical", Element: ElementProblem, Title: "Philosophical problem", Placeholder: "Eating well shouldn't be this hard"},
	{Key: "guide.empathy", Element: ElementGuide, Title: "Empathy statement", Placeholder: "We know weeknights are chaos"},
	{Key: "guide.authority", Element: ElementGuide, Title: "Authority", Placeholder: "20,000 families fed every week"},
	{Key: "plan", Element: ElementPlan, Title: "Plan steps (one per line)", Placeholder: "Pick recipes\nGet the box\nCook in 20 minutes", List: true},
	{Key: "cta.direct", Element: ElementCallToAction, Title: "Direct call to action", Placeholder: "Start your first box"},
	{Key: "cta.transitional", Element: ElementCallToAction, Title: "Transitional call to action", Placeholder: "Download 10 free recipes"},
	{Key: "failure", Element: ElementFailure, Title: "What failure do they avoid? (one per line)", Placeholder: "Another frozen pizza night", List: true},
	{Key: "success", Element: ElementSuccess, Title: "What does success look like? (one per line)", Placeholder: "Family dinners everyone enjoys", List: true},
}

// WizardFields returns the form prompts in story order.
func WizardFields() []WizardField {
	out := make([]WizardField, len(wizardFields))
	copy(out, wizardFields)
	return out
}

// Set assigns a wizard answer by field key. List fields split value on
// newlines and drop blank lines.
func (b *BrandScript) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "character":
		b.Character = value
	case "problem.villain":
		b.Problem.Villain = value
	case "problem.external":
		b.Problem.External = value
	case "problem.internal":
		b.Problem.Internal = value
	case "problem.philosophical":
		b.Problem.Philosophical = value
	case "guide.empathy":
		b.Guide.Empathy = value
	case "guide.authority":
		b.Guide.Authority = value
	case "plan":
		b.Plan = lines(value)
	case "cta.direct":
		b.CallToAction.Direct = value
	case "cta.transitional":
		b.CallToAction.Transitional = value
	case "failure":
		b.Failure = lines(value)
	case "success":
		b.Success = lines(value)
	default:
		return fmt.Errorf("unknown brand script field %q", key)
	}
	return nil
}

func lines(s string) []string {
	out := []string{}
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

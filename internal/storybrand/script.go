package storybrand

import (
	"fmt"
	"strings"
)

// Problem holds the villain and the three problem levels.
type Problem struct {
	Villain       string `json:"villain"`
	External      string `json:"external"`
	Internal      string `json:"internal"`
	Philosophical string `json:"philosophical"`
}

// Guide is how the brand positions itself.
type Guide struct {
	Empathy   string `json:"empathy"`
	Authority string `json:"authority"`
}

// CallToAction pairs the buying action with a lower-commitment offer.
type CallToAction struct {
	Direct       string `json:"direct"`
	Transitional string `json:"transitional"`
}

// BrandScript is a filled-in SB7 story.
type BrandScript struct {
	Character    string       `json:"character"`
	Problem      Problem      `json:"problem"`
	Guide        Guide        `json:"guide"`
	Plan         []string     `json:"plan"`
	CallToAction CallToAction `json:"call_to_action"`
	Failure      []string     `json:"failure"`
	Success      []string     `json:"success"`
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func anyFilled(items []string) bool {
	for _, s := range items {
		if !blank(s) {
			return true
		}
	}
	return false
}

// Filled reports whether the element for key has content.
func (b BrandScript) Filled(key ElementKey) bool {
	switch key {
	case ElementCharacter:
		return !blank(b.Character)
	case ElementProblem:
		return !blank(b.Problem.External) || !blank(b.Problem.Internal) || !blank(b.Problem.Philosophical)
	case ElementGuide:
		return !blank(b.Guide.Empathy) || !blank(b.Guide.Authority)
	case ElementPlan:
		return anyFilled(b.Plan)
	case ElementCallToAction:
		return !blank(b.CallToAction.Direct)
	case ElementFailure:
		return anyFilled(b.Failure)
	case ElementSuccess:
		return anyFilled(b.Success)
	default:
		return false
	}
}

// Missing lists the elements still empty, in story order.
func (b BrandScript) Missing() []ElementKey {
	out := []ElementKey{}
	for _, e := range elements {
		if !b.Filled(e.Key) {
			out = append(out, e.Key)
		}
	}
	return out
}

// Completeness is the filled fraction of the seven elements, 0 to 1.
func (b BrandScript) Completeness() float64 {
	return float64(len(elements)-len(b.Missing())) / float64(len(elements))
}

// FormatOneLiner joins the problem, solution and result into a StoryBrand
// one-liner. Blank parts are skipped.
func FormatOneLiner(problem, solution, result string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{problem, solution, result} {
		p = strings.TrimSpace(p)
		p = strings.TrimRight(p, ".")
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ". ") + "."
}

// Markdown renders the script as a markdown document.
func (b BrandScript) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# BrandScript\n\n")
	fmt.Fprintf(&sb, "## 1. Character\n\n%s\n\n", orDash(b.Character))
	sb.WriteString("## 2. Problem\n\n")
	fmt.Fprintf(&sb, "- **Villain:** %s\n- **External:** %s\n- **Internal:** %s\n- **Philosophical:** %s\n\n",
		orDash(b.Problem.Villain), orDash(b.Problem.External), orDash(b.Problem.Internal), orDash(b.Problem.Philosophical))
	sb.WriteString("## 3. Guide\n\n")
	fmt.Fprintf(&sb, "- **Empathy:** %s\n- **Authority:** %s\n\n", orDash(b.Guide.Empathy), orDash(b.Guide.Authority))
	sb.WriteString("## 4. Plan\n\n")
	writeNumbered(&sb, b.Plan)
	sb.WriteString("## 5. Call to action\n\n")
	fmt.Fprintf(&sb, "- **Direct:** %s\n- **Transitional:** %s\n\n", orDash(b.CallToAction.Direct), orDash(b.CallToAction.Transitional))
	sb.WriteString("## 6. Failure\n\n")
	writeBullets(&sb, b.Failure)
	sb.WriteString("## 7. Success\n\n")
	writeBullets(&sb, b.Success)
	return sb.String()
}

func orDash(s string) string {
	if blank(s) {
		return "-"
	}
	return s
}

func writeNumbered(sb *strings.Builder, items []string) {
	if len(items) == 0 {
		sb.WriteString("-\n\n")
		return
	}
	for i, s := range items {
		fmt.Fprintf(sb, "%d. %s\n", i+1, s)
	}
	sb.WriteString("\n")
}

func writeBullets(sb *strings.Builder, items []string) {
	if len(items) == 0 {
		sb.WriteString("-\n\n")
		return
	}
	for _, s := range items {
		fmt.Fprintf(sb, "- %s\n", s)
	}
	sb.WriteString("\n")
}

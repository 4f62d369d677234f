package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/storybrand"
)

// FormatElements renders the seven SB7 elements as a table.
func FormatElements(elements []storybrand.Element) string {
	rows := make([][]string, len(elements))
	for i, e := range elements {
		rows[i] = []string{strconv.Itoa(e.Number), string(e.Key), e.Name, string(e.Category)}
	}
	return RenderTable([]string{"#", "KEY", "ELEMENT", "CATEGORY"}, rows)
}

// FormatElement renders one element with its questions and tips.
func FormatElement(e storybrand.Element, levels []storybrand.ProblemLevel) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%d. %s", e.Number, e.Name)))
	b.WriteString("\n")
	b.WriteString(e.Description + "\n\n")
	if len(e.Questions) > 0 {
		b.WriteString(Bold("Ask yourself") + "\n")
		b.WriteString(Bullets(e.Questions))
	}
	if len(e.Tips) > 0 {
		b.WriteString(Bold("Tips") + "\n")
		b.WriteString(Bullets(e.Tips))
	}
	if e.Key == storybrand.ElementProblem && len(levels) > 0 {
		b.WriteString(Bold("Problem levels") + "\n")
		for _, l := range levels {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render(l.Name+":"), l.Description))
			b.WriteString(fmt.Sprintf("    %s\n", Dim("e.g. "+l.Example)))
		}
	}
	return b.String()
}

// FormatScriptStatus renders the completeness of a brand script.
func FormatScriptStatus(s storybrand.BrandScript) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Complete:"), RenderProgress(s.Completeness(), 14)))
	if missing := s.Missing(); len(missing) > 0 {
		keys := make([]string, len(missing))
		for i, k := range missing {
			keys[i] = string(k)
		}
		b.WriteString(Dim("Missing: "+strings.Join(keys, ", ")) + "\n")
	}
	return b.String()
}

// FormatOneLiner renders a one-liner with its parts.
func FormatOneLiner(o storybrand.OneLiner) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(o.String()) + "\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", StyleRed.Render("Problem: "), o.Problem))
	b.WriteString(fmt.Sprintf("  %s %s\n", StyleBlue.Render("Solution:"), o.Solution))
	b.WriteString(fmt.Sprintf("  %s %s\n", StyleGreen.Render("Result:  "), o.Result))
	return b.String()
}

// FormatWireframe renders website sections in page order.
func FormatWireframe(w *storybrand.Wireframe) string {
	var b strings.Builder
	for i, s := range w.Sections {
		b.WriteString(StyleHeader.Render(fmt.Sprintf("%d. %s", i+1, s.Name)) + "\n")
		b.WriteString(fmt.Sprintf("  %s\n", Bold(s.Headline)))
		if s.Content != "" {
			b.WriteString(fmt.Sprintf("  %s\n", s.Content))
		}
		if s.CTA != "" {
			b.WriteString(fmt.Sprintf("  %s\n", StylePurple.Render("[ "+s.CTA+" ]")))
		}
		b.WriteString("\n")
	}
	return b.String()
}

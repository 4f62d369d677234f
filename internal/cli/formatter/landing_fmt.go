package formatter

import (
	"fmt"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/landingpage"
)

// FormatAudit renders a landing page audit report.
func FormatAudit(r landingpage.AuditReport) string {
	var b strings.Builder
	if r.URL != "" {
		b.WriteString(Dim(r.URL) + "\n")
	}
	b.WriteString(fmt.Sprintf("%s %s  %s\n\n", Bold("Score:"),
		ScoreStyle(r.Score).Render(fmt.Sprintf("%d/100", r.Score)),
		Dim(fmt.Sprintf("reading grade %d", r.ReadingLevel))))

	b.WriteString(Header("Grunt test"))
	b.WriteString("\n")
	for _, g := range r.Grunt {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", PassFail(g.Passed), g.Question, Dim(g.Detail)))
	}
	b.WriteString("\n")

	b.WriteString(Header("Heuristics"))
	b.WriteString("\n")
	for _, f := range r.Findings {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", PassFail(f.Passed), f.Name, Dim(f.Detail)))
		if !f.Passed && f.Fix != "" {
			b.WriteString(fmt.Sprintf("      %s %s\n", StyleYellow.Render("fix:"), f.Fix))
		}
	}
	return b.String()
}

// FormatHeadline renders a headline analysis.
func FormatHeadline(a landingpage.HeadlineAnalysis) string {
	var b strings.Builder
	b.WriteString(Bold(a.Text) + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Score:"), ScoreStyle(a.Score).Render(fmt.Sprintf("%d/100", a.Score))))
	b.WriteString(Dim(fmt.Sprintf("%d words, %d characters, grade %d", a.Words, a.Characters, a.ReadingLevel)) + "\n")
	b.WriteString(fmt.Sprintf("  %s number   %s speaks to you\n", PassFail(a.HasNumber), PassFail(a.AddressesYou)))
	if len(a.PowerWords) > 0 {
		words := make([]string, len(a.PowerWords))
		for i, m := range a.PowerWords {
			words[i] = fmt.Sprintf("%s (%s)", m.Word, m.Category)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Bold("Power words:"), StylePurple.Render(strings.Join(words, ", "))))
	}
	if len(a.Suggestions) > 0 {
		b.WriteString(Bold("Suggestions") + "\n")
		b.WriteString(Bullets(a.Suggestions))
	}
	return b.String()
}

// FormatPowerWordCatalog renders every power word by category.
func FormatPowerWordCatalog() string {
	var b strings.Builder
	for _, c := range landingpage.PowerWordCategories() {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleHeader.Render(string(c)+":"), strings.Join(landingpage.PowerWords(c), ", ")))
	}
	return b.String()
}

// FormatPowerWordMatches renders the power words found in a text.
func FormatPowerWordMatches(matches []landingpage.PowerWordMatch) string {
	if len(matches) == 0 {
		return Dim("No power words found.") + "\n"
	}
	rows := make([][]string, len(matches))
	for i, m := range matches {
		rows[i] = []string{m.Word, string(m.Category)}
	}
	return RenderTable([]string{"WORD", "CATEGORY"}, rows)
}

// FormatPricing renders pricing heuristics.
func FormatPricing(hs []landingpage.PricingHeuristic) string {
	var b strings.Builder
	for _, h := range hs {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleHeader.Render(h.Name), Dim("("+h.Slug+")")))
		b.WriteString(fmt.Sprintf("  %s\n", h.Description))
		b.WriteString(fmt.Sprintf("  %s\n\n", Dim("e.g. "+h.Example)))
	}
	return b.String()
}

// FormatHeadlineSet renders generated headlines with their scores.
func FormatHeadlineSet(s *landingpage.HeadlineSet) string {
	rows := make([][]string, len(s.Headlines))
	for i, h := range s.Headlines {
		rows[i] = []string{fmt.Sprint(h.Analysis.Score), h.Text, Dim(h.Angle)}
	}
	return RenderTable([]string{"SCORE", "HEADLINE", "ANGLE"}, rows)
}

// FormatCritique renders a generated audit review.
func FormatCritique(c *landingpage.Critique) string {
	var b strings.Builder
	b.WriteString(c.Summary + "\n\n")
	for _, f := range c.Fixes {
		b.WriteString(fmt.Sprintf("%s %s %s\n", StyleYellow.Render("["+f.Priority+"]"), Bold(f.Problem), Dim("("+f.Heuristic+")")))
		b.WriteString(fmt.Sprintf("  %s\n", f.Suggestion))
	}
	return RenderBox("Critique", b.String())
}

// FormatExperiments renders proposed experiments by ICE.
func FormatExperiments(p *landingpage.ExperimentPlan) string {
	rows := make([][]string, len(p.Experiments))
	for i, e := range p.Experiments {
		rows[i] = []string{Number(e.ICE), e.Name, Dim(e.Hypothesis)}
	}
	return RenderTable([]string{"ICE", "EXPERIMENT", "HYPOTHESIS"}, rows)
}

package formatter

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/startupschool"
)

// FormatLectures renders lectures as a table.
func FormatLectures(lectures []startupschool.Lecture) string {
	if len(lectures) == 0 {
		return Dim("No lectures match.") + "\n"
	}
	rows := make([][]string, len(lectures))
	for i, l := range lectures {
		rows[i] = []string{l.ID, l.Title, l.Speaker, strconv.Itoa(l.Phase)}
	}
	return RenderTable([]string{"ID", "TITLE", "SPEAKER", "PHASE"}, rows)
}

// LectureMarkdown renders a lecture as markdown.
func LectureMarkdown(l startupschool.Lecture) string {
	return fmt.Sprintf("# %s\n\n*%s* · %s · phase %d\n\n%s\n", l.Title, l.Speaker, l.Category, l.Phase, l.Summary)
}

// FormatConcepts renders concepts as a table.
func FormatConcepts(concepts []startupschool.Concept) string {
	if len(concepts) == 0 {
		return Dim("No concepts match.") + "\n"
	}
	rows := make([][]string, len(concepts))
	for i, c := range concepts {
		rows[i] = []string{c.Slug, c.Name, string(c.Category)}
	}
	return RenderTable([]string{"SLUG", "CONCEPT", "CATEGORY"}, rows)
}

// ConceptMarkdown renders a concept and its related lectures as markdown.
func ConceptMarkdown(c startupschool.Concept) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n", c.Name, c.Definition)
	if len(c.Lectures) > 0 {
		b.WriteString("\n## Related lectures\n\n")
		for _, id := range c.Lectures {
			if l, ok := startupschool.LectureByID(id); ok {
				fmt.Fprintf(&b, "- %s (%s)\n", l.Title, l.Speaker)
			}
		}
	}
	return b.String()
}

// FormatPhase renders a phase with its milestones and lectures.
func FormatPhase(p startupschool.Phase, lectures []startupschool.Lecture) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Phase %d: %s", p.Number, p.Name)))
	b.WriteString("\n")
	b.WriteString(p.Description + "\n\n")
	b.WriteString(Bold("Milestones") + "\n")
	b.WriteString(Bullets(p.Milestones))
	b.WriteString("\n")
	b.WriteString(FormatLectures(lectures))
	return b.String()
}

// RunwayReport is the cash outlook the runway command prints.
type RunwayReport struct {
	Months     float64                   `json:"-"`
	Projection *startupschool.Projection `json:"projection,omitempty"`
}

// MarshalJSON writes an infinite runway as null with "infinite" set.
func (r RunwayReport) MarshalJSON() ([]byte, error) {
	out := struct {
		Months     *float64                  `json:"runway_months"`
		Infinite   bool                      `json:"infinite,omitempty"`
		Projection *startupschool.Projection `json:"projection,omitempty"`
	}{Projection: r.Projection}
	if math.IsInf(r.Months, 1) {
		out.Infinite = true
	} else {
		m := r.Months
		out.Months = &m
	}
	return json.Marshal(out)
}

// FormatRunway renders months of runway and, when projected, whether the
// company is default alive.
func FormatRunway(r RunwayReport) string {
	var b strings.Builder
	months := Number(r.Months)
	style := StyleGreen
	if !math.IsInf(r.Months, 1) && r.Months < 12 {
		style = StyleYellow
	}
	if !math.IsInf(r.Months, 1) && r.Months < 6 {
		style = StyleRed
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Runway:"), style.Render(months+" months")))
	if p := r.Projection; p != nil {
		if p.Alive {
			b.WriteString(StyleGreen.Render("Default alive") + Dim(fmt.Sprintf(": profitable in month %d", p.MonthsToProfit)) + "\n")
		} else {
			detail := "cash runs out before profitability"
			if p.MonthsOfCash >= 0 {
				detail = fmt.Sprintf("cash runs out in month %d", p.MonthsOfCash)
			}
			b.WriteString(StyleRed.Render("Default dead") + Dim(": "+detail) + "\n")
		}
	}
	return b.String()
}

// FormatExplanation renders a generated concept explainer.
func FormatExplanation(e *startupschool.Explanation) string {
	var b strings.Builder
	b.WriteString(e.Answer + "\n")
	if len(e.Examples) > 0 {
		b.WriteString("\n" + Bold("Examples") + "\n")
		b.WriteString(Bullets(e.Examples))
	}
	if len(e.Lectures) > 0 {
		b.WriteString("\n" + Bold("Watch") + "\n")
		for _, l := range e.Lectures {
			b.WriteString(fmt.Sprintf("  - %s %s\n", l.Title, Dim("("+l.ID+")")))
		}
	}
	return b.String()
}

// FormatRecommendations renders recommended lectures with reasons.
func FormatRecommendations(recs []startupschool.Recommendation) string {
	if len(recs) == 0 {
		return Dim("No lectures to recommend.") + "\n"
	}
	var b strings.Builder
	for i, r := range recs {
		b.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, Bold(r.Lecture.Title), Dim("("+r.Lecture.Speaker+")")))
		b.WriteString(fmt.Sprintf("   %s\n", r.Reason))
	}
	return b.String()
}

// FormatAdvice renders an office hours session.
func FormatAdvice(a *startupschool.Advice) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", Bold("Diagnosis:"), a.Diagnosis))
	b.WriteString(Bold("Advice") + "\n")
	b.WriteString(Bullets(a.Advice))
	b.WriteString(fmt.Sprintf("\n%s %s\n\n", Bold("Watch this metric:"), StyleGreen.Render(a.PrimaryMetric)))
	b.WriteString(Bold("This week") + "\n")
	b.WriteString(Bullets(a.NextSteps))
	return RenderBox("Office hours", b.String())
}

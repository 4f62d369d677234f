package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/sprint"
)

// FormatDays renders the sprint week as a table.
func FormatDays(days []sprint.Day) string {
	rows := make([][]string, len(days))
	for i, d := range days {
		rows[i] = []string{strconv.Itoa(d.Number), d.Name, d.Theme, strconv.Itoa(sprint.TotalMinutes(d))}
	}
	return RenderTable([]string{"#", "DAY", "THEME", "MINUTES"}, rows)
}

// FormatDay renders one day's agenda.
func FormatDay(d sprint.Day) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s: %s", d.Name, d.Theme)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s\n\n", d.Goal))
	for _, a := range d.Activities {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", StyleBlue.Render(fmt.Sprintf("%3dm", a.Minutes)), Bold(a.Name), Dim("("+string(a.Lead)+")")))
		b.WriteString(fmt.Sprintf("       %s\n", Dim(a.Description)))
	}
	if len(d.Deliverables) > 0 {
		b.WriteString("\n")
		b.WriteString(Bold("Deliverables") + "\n")
		b.WriteString(Bullets(d.Deliverables))
	}
	return b.String()
}

// FormatRoles renders the sprint team roles.
func FormatRoles(roles []sprint.RoleInfo) string {
	var b strings.Builder
	for _, r := range roles {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleHeader.Render(r.Title), Dim("("+string(r.Role)+")")))
		b.WriteString(fmt.Sprintf("  %s\n", r.Description))
		b.WriteString(Bullets(r.Responsibilities))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatInterviewActs renders the five-act interview outline.
func FormatInterviewActs(acts []sprint.InterviewAct) string {
	rows := make([][]string, len(acts))
	for i, a := range acts {
		rows[i] = []string{strconv.Itoa(a.Number), a.Name, strconv.Itoa(a.Minutes), a.Purpose}
	}
	return RenderTable([]string{"ACT", "NAME", "MIN", "PURPOSE"}, rows)
}

// FormatSprintQuestions renders a generated long-term goal and questions.
func FormatSprintQuestions(q *sprint.SprintQuestions) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", Bold("Long-term goal:"), q.LongTermGoal))
	b.WriteString(Header("Sprint questions"))
	b.WriteString("\n")
	for i, s := range q.Questions {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, s))
	}
	return b.String()
}

// FormatHowMightWe renders generated notes grouped by theme.
func FormatHowMightWe(n *sprint.HowMightWeNotes) string {
	var b strings.Builder
	theme := ""
	for _, note := range n.Notes {
		if note.Theme != theme {
			if theme != "" {
				b.WriteString("\n")
			}
			theme = note.Theme
			b.WriteString(StyleHeader.Render(theme) + "\n")
		}
		b.WriteString(fmt.Sprintf("  - %s\n", note.Note))
	}
	return b.String()
}

// FormatInterviewScript renders a tailored interview script.
func FormatInterviewScript(s *sprint.InterviewScript) string {
	var b strings.Builder
	for _, act := range s.Acts {
		b.WriteString(StyleHeader.Render(fmt.Sprintf("Act %d: %s", act.Act, act.Name)) + "\n")
		b.WriteString(Bullets(act.Questions))
		b.WriteString("\n")
	}
	return b.String()
}

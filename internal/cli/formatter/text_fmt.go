package formatter

import (
	"fmt"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/landingpage"
)

// Readability is the text-metrics summary of a passage.
type Readability struct {
	Words       int     `json:"words"`
	Sentences   int     `json:"sentences"`
	Grade       int     `json:"grade"`
	ReadingEase float64 `json:"reading_ease"`
}

// FormatReadability renders grade level and reading ease.
func FormatReadability(r Readability) string {
	var b strings.Builder
	grade := StyleGreen
	if r.Grade > 8 {
		grade = StyleYellow
	}
	if r.Grade > 12 {
		grade = StyleRed
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Grade level: "), grade.Render(fmt.Sprint(r.Grade))))
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Reading ease:"), Number(r.ReadingEase)))
	b.WriteString(Dim(fmt.Sprintf("%d words, %d sentences", r.Words, r.Sentences)) + "\n")
	return b.String()
}

// FormatContrast renders a WCAG contrast check.
func FormatContrast(c landingpage.ContrastCheck) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s on %s\n", Bold("Colors:"), c.Foreground, c.Background))
	b.WriteString(fmt.Sprintf("%s %.2f:1\n", Bold("Ratio: "), c.Ratio))
	b.WriteString(fmt.Sprintf("  normal text  %s\n", LevelStyle(c.Normal).Render(string(c.Normal))))
	b.WriteString(fmt.Sprintf("  large text   %s\n", LevelStyle(c.Large).Render(string(c.Large))))
	return b.String()
}

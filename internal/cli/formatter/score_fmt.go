package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/scoring"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/stats"
)

// FormatScore renders a single prioritization score.
func FormatScore(method scoring.Method, score float64) string {
	label := strings.ToUpper(string(method)) + " score"
	return fmt.Sprintf("%s: %s\n", Bold(label), StyleGreen.Render(Number(score)))
}

// FormatRanked renders ranked ideas as a table.
func FormatRanked(method scoring.Method, ranked []scoring.Ranked) string {
	if len(ranked) == 0 {
		return Dim("No ideas to rank.") + "\n"
	}
	rows := make([][]string, len(ranked))
	for i, r := range ranked {
		rows[i] = []string{strconv.Itoa(r.Rank), r.Idea.Name, Number(r.Score)}
	}
	return RenderTable([]string{"#", "IDEA", strings.ToUpper(string(method))}, rows)
}

// FormatSampleSize renders the visitors needed per variant, plus the total
// across all arms when there is more than one.
func FormatSampleSize(perVariant, variants int) string {
	if perVariant == 0 {
		return StyleYellow.Render("No finite sample size for these inputs.") + "\n"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Per variant:"), strconv.Itoa(perVariant)))
	if variants > 1 {
		b.WriteString(fmt.Sprintf("%s %s\n", Bold("Total:      "), strconv.Itoa(perVariant*variants)))
	}
	return b.String()
}

// FormatSignificance renders a z-test result next to the observed uplift.
func FormatSignificance(r stats.Result, uplift float64) string {
	var b strings.Builder
	verdict := StyleYellow.Render("not significant")
	if r.IsSignificant {
		verdict = StyleGreen.Render("significant")
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Result: "), verdict))
	b.WriteString(fmt.Sprintf("%s %s%%\n", Bold("Uplift: "), Number(uplift)))
	b.WriteString(fmt.Sprintf("%s %.3f\n", Bold("z-score:"), r.ZScore))
	b.WriteString(fmt.Sprintf("%s %.4f\n", Bold("p-value:"), r.PValue))
	return b.String()
}

// FormatUplift renders a relative change.
func FormatUplift(uplift float64) string {
	style := StyleGreen
	if uplift < 0 {
		style = StyleRed
	}
	return fmt.Sprintf("%s %s\n", Bold("Uplift:"), style.Render(Number(uplift)+"%"))
}

// FormatDuration renders how long a test has to run.
func FormatDuration(days int) string {
	if days == 0 {
		return StyleYellow.Render("Cannot estimate a duration for these inputs.") + "\n"
	}
	weeks := ""
	if days >= 7 {
		weeks = Dim(fmt.Sprintf(" (about %.1f weeks)", float64(days)/7))
	}
	return fmt.Sprintf("%s %d days%s\n", Bold("Duration:"), days, weeks)
}

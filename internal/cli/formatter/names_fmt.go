package formatter

import (
	"fmt"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/naming"
)

// FormatNameScores renders scored names as a table.
func FormatNameScores(scores []naming.NameScore) string {
	if len(scores) == 0 {
		return Dim("No names.") + "\n"
	}
	rows := make([][]string, len(scores))
	for i, s := range scores {
		rows[i] = []string{
			s.Name,
			ScoreStyle(s.Score).Render(fmt.Sprint(s.Score)),
			fmt.Sprint(s.Length),
			fmt.Sprint(s.Syllables),
			Percent(s.Pronounceability),
		}
	}
	return RenderTable([]string{"NAME", "SCORE", "LEN", "SYLL", "SAY"}, rows)
}

// FormatNameSet renders generated names with style and rationale.
func FormatNameSet(s *naming.NameSet) string {
	var b strings.Builder
	for _, n := range s.Names {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			ScoreStyle(n.Score.Score).Render(fmt.Sprintf("%3d", n.Score.Score)),
			Bold(n.Name), Dim("["+n.Style+"]")))
		b.WriteString(fmt.Sprintf("    %s\n", n.Rationale))
	}
	return b.String()
}

// FormatDomains renders domain candidates for a name.
func FormatDomains(name string, domains []string) string {
	if len(domains) == 0 {
		return Dim("No domain candidates for "+name+".") + "\n"
	}
	return fmt.Sprintf("%s\n%s", Bold(name), Bullets(domains))
}

package landingpage

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/textmetrics"
)

// HeadlineAnalysis scores a headline against copywriting rules of thumb.
type HeadlineAnalysis struct {
	Text         string           `json:"text"`
	Words        int              `json:"words"`
	Characters   int              `json:"characters"`
	PowerWords   []PowerWordMatch `json:"power_words"`
	ReadingLevel int              `json:"reading_level"`
	HasNumber    bool             `json:"has_number"`
	AddressesYou bool             `json:"addresses_you"`
	Score        int              `json:"score"`
	Suggestions  []string         `json:"suggestions"`
}

// AnalyzeHeadline scores text from 0 to 100. A six to twelve word headline
// that is easy to read, uses a power word or two, and speaks to "you" scores
// highest.
func AnalyzeHeadline(text string) HeadlineAnalysis {
	text = strings.TrimSpace(text)
	a := HeadlineAnalysis{
		Text:        text,
		PowerWords:  []PowerWordMatch{},
		Suggestions: []string{},
	}
	if text == "" {
		a.Suggestions = append(a.Suggestions, "Write a headline that states what the visitor gets.")
		return a
	}

	a.Words = textmetrics.CountWords(text)
	a.Characters = utf8.RuneCountInString(text)
	a.PowerWords = PowerWordsIn(text)
	a.ReadingLevel = textmetrics.EstimateReadingLevel(text)
	a.HasNumber = strings.IndexFunc(text, unicode.IsDigit) >= 0
	a.AddressesYou = containsWord(text, "you") || containsWord(text, "your")

	score := 40
	switch {
	case a.Words >= 6 && a.Words <= 12:
		score += 20
	case a.Words >= 3 && a.Words <= 16:
		score += 10
		if a.Words < 6 {
			a.Suggestions = append(a.Suggestions, "Add detail: six to twelve words usually convert best.")
		} else {
			a.Suggestions = append(a.Suggestions, "Trim it: six to twelve words usually convert best.")
		}
	default:
		a.Suggestions = append(a.Suggestions, "Aim for six to twelve words.")
	}

	switch n := len(a.PowerWords); {
	case n == 0:
		a.Suggestions = append(a.Suggestions, "Use a power word such as \"free\", \"proven\" or \"easy\".")
	case n <= 2:
		score += 10 * n
	default:
		score += 10
		a.Suggestions = append(a.Suggestions, "Too many power words read as hype; keep one or two.")
	}

	switch {
	case a.ReadingLevel <= 8:
		score += 10
	case a.ReadingLevel > 12:
		score -= 10
		a.Suggestions = append(a.Suggestions, "Simplify: shorter words lower the reading level.")
	}

	if a.HasNumber {
		score += 10
	} else {
		a.Suggestions = append(a.Suggestions, "Specific numbers make claims believable.")
	}

	if a.AddressesYou {
		score += 10
	} else {
		a.Suggestions = append(a.Suggestions, "Speak to the reader with \"you\" or \"your\".")
	}

	a.Score = min(100, max(0, score))
	return a
}

func containsWord(text, word string) bool {
	for _, f := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	}) {
		if f == word {
			return true
		}
	}
	return false
}

// ContrastCheck grades a foreground and background color pair.
type ContrastCheck struct {
	Foreground string            `json:"foreground"`
	Background string            `json:"background"`
	Ratio      float64           `json:"ratio"`
	Normal     textmetrics.Level `json:"normal_text"`
	Large      textmetrics.Level `json:"large_text"`
	PassesAA   bool              `json:"passes_aa"`
}

// CheckContrast computes the WCAG contrast of fg on bg.
func CheckContrast(fg, bg string) (ContrastCheck, error) {
	ratio, err := textmetrics.ContrastRatio(fg, bg)
	if err != nil {
		return ContrastCheck{}, err
	}
	normal := textmetrics.WCAGLevel(ratio, false)
	return ContrastCheck{
		Foreground: fg,
		Background: bg,
		Ratio:      ratio,
		Normal:     normal,
		Large:      textmetrics.WCAGLevel(ratio, true),
		PassesAA:   normal == textmetrics.LevelAA || normal == textmetrics.LevelAAA,
	}, nil
}

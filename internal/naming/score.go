package naming

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/textmetrics"
)

// NameScore rates how usable a name is as a brand.
type NameScore struct {
	Name string `json:"name"`
	// Length counts letters only.
	Length    int `json:"length"`
	Syllables int `json:"syllables"`
	// Pronounceability runs from 0 (unsayable) to 1.
	Pronounceability float64 `json:"pronounceability"`
	Score            int     `json:"score"`
}

// ScoreName rates name from 0 to 100. Four to eight letters, one to three
// syllables and no long consonant clusters score best; digits and
// punctuation cost points. A blank name scores 0.
func ScoreName(name string) NameScore {
	name = strings.TrimSpace(name)
	ns := NameScore{Name: name}
	letters := lowerLetters(name)
	if letters == "" {
		return ns
	}

	ns.Length = len(letters)
	for _, w := range strings.Fields(name) {
		ns.Syllables += textmetrics.CountSyllables(w)
	}
	ns.Pronounceability = pronounceability(letters)

	score := 100.0
	score -= lengthPenalty(ns.Length)
	score -= syllablePenalty(ns.Syllables)
	score -= (1 - ns.Pronounceability) * 40
	score -= math.Min(30, 10*float64(symbols(name)))
	ns.Score = int(math.Round(math.Max(0, math.Min(100, score))))
	return ns
}

// RankNames scores names and orders them best first, ties by name. Blank
// names and case-insensitive duplicates are dropped.
func RankNames(names []string) []NameScore {
	out := []NameScore{}
	seen := map[string]bool{}
	for _, n := range names {
		key := strings.ToLower(strings.TrimSpace(n))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ScoreName(n))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

func lengthPenalty(n int) float64 {
	switch {
	case n <= 2:
		return 30
	case n == 3:
		return 10
	case n <= 8:
		return 0
	case n <= 10:
		return 10
	case n <= 12:
		return 20
	default:
		return 35
	}
}

func syllablePenalty(n int) float64 {
	switch {
	case n == 0:
		return 30
	case n <= 3:
		return 0
	case n == 4:
		return 10
	default:
		return 20
	}
}

// pronounceability falls with the longest consonant run in w and halves
// when fewer than a fifth of the letters are vowels.
func pronounceability(w string) float64 {
	vowels, run, longest := 0, 0, 0
	for i := range len(w) {
		if isVowel(w, i) {
			vowels++
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	if vowels == 0 {
		return 0
	}

	var p float64
	switch {
	case longest <= 3:
		p = 1
	case longest == 4:
		p = 0.6
	case longest == 5:
		p = 0.3
	}
	if float64(vowels)/float64(len(w)) < 0.2 {
		p /= 2
	}
	return p
}

func symbols(name string) int {
	n := 0
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

package textmetrics

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

var (
	nonLetter      = regexp.MustCompile(`[^a-z]`)
	silentEnding   = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	leadingY       = regexp.MustCompile(`^y`)
	vowelGroup     = regexp.MustCompile(`[aeiouy]{1,2}`)
	sentenceBreaks = regexp.MustCompile(`[.!?]+`)
)

// CountSyllables estimates the syllables in word by counting vowel groups
// after dropping silent endings. Words of three letters or fewer count as
// one; a word with no letters counts as zero.
func CountSyllables(word string) int {
	w := nonLetter.ReplaceAllString(strings.ToLower(word), "")
	if w == "" {
		return 0
	}
	if len(w) <= 3 {
		return 1
	}
	w = silentEnding.ReplaceAllString(w, "")
	w = leadingY.ReplaceAllString(w, "")
	if n := len(vowelGroup.FindAllString(w, -1)); n > 0 {
		return n
	}
	return 1
}

// CountWords counts whitespace-separated words that contain a letter or digit.
func CountWords(text string) int {
	return len(words(text))
}

// CountSentences counts non-empty segments between '.', '!' and '?'. Text
// without a terminator is one sentence.
func CountSentences(text string) int {
	n := 0
	for _, seg := range sentenceBreaks.Split(text, -1) {
		if len(words(seg)) > 0 {
			n++
		}
	}
	return n
}

// EstimateReadingLevel returns the Flesch-Kincaid grade of text, rounded.
// Blank text is grade 0; any other text is at least grade 1, including
// text made only of punctuation or symbols.
func EstimateReadingLevel(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	w, s, syl := counts(text)
	if w == 0 {
		return 1
	}
	grade := 0.39*(float64(w)/float64(s)) + 11.8*(float64(syl)/float64(w)) - 15.59
	return max(1, int(math.Round(grade)))
}

// FleschReadingEase returns the Flesch reading-ease score of text. Higher is
// easier; 60 to 70 reads as plain English. Blank text scores 0.
func FleschReadingEase(text string) float64 {
	w, s, syl := counts(text)
	if w == 0 {
		return 0
	}
	return 206.835 - 1.015*(float64(w)/float64(s)) - 84.6*(float64(syl)/float64(w))
}

func counts(text string) (w, s, syl int) {
	ws := words(text)
	if len(ws) == 0 {
		return 0, 0, 0
	}
	for _, word := range ws {
		syl += CountSyllables(word)
	}
	return len(ws), max(1, CountSentences(text)), syl
}

func words(text string) []string {
	fields := strings.Fields(text)
	out := fields[:0]
	for _, f := range fields {
		if strings.IndexFunc(f, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) >= 0 {
			out = append(out, f)
		}
	}
	return out
}

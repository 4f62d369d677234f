package naming

import "strings"

// Combine joins every root with every affix, root-major and in input order.
// An affix ending in "-" is a prefix, one starting with "-" a suffix, and a
// bare affix is appended as a suffix. A trailing "e" is dropped before a
// vowel and a letter doubled across the join is written once. The result is
// capitalized and free of case-insensitive duplicates.
func Combine(roots, affixes []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, r := range roots {
		root := lowerLetters(r)
		if root == "" {
			continue
		}
		for _, a := range affixes {
			body := lowerLetters(a)
			if body == "" {
				continue
			}
			word := join(root, body)
			if strings.HasSuffix(strings.TrimSpace(a), "-") {
				word = join(body, root)
			}
			if seen[word] {
				continue
			}
			seen[word] = true
			out = append(out, capitalize(word))
		}
	}
	return out
}

// Portmanteau blends a and b. When the end of a overlaps the start of b by
// two or more letters they are merged on the overlap ("spin" and "inside"
// give "Spinside"); otherwise the opening of a is joined to b from its
// first vowel ("breakfast" and "lunch" give "Brunch").
func Portmanteau(a, b string) string {
	a, b = lowerLetters(a), lowerLetters(b)
	switch {
	case a == "":
		return capitalize(b)
	case b == "":
		return capitalize(a)
	}
	for k := min(len(a), len(b)); k >= 2; k-- {
		if strings.HasSuffix(a, b[:k]) {
			return capitalize(a + b[k:])
		}
	}
	v := firstVowel(b, 0)
	if v == -1 {
		return capitalize(a + b)
	}
	return capitalize(opening(a) + b[v:])
}

// opening is the consonant onset of w, or for a word that starts with a
// vowel, everything before its second vowel group.
func opening(w string) string {
	if !isVowel(w, 0) {
		if v := firstVowel(w, 0); v != -1 {
			return w[:v]
		}
		return w
	}
	i := 0
	for i < len(w) && isVowel(w, i) {
		i++
	}
	if v := firstVowel(w, i); v != -1 {
		return w[:v]
	}
	return w
}

func join(left, right string) string {
	if strings.HasSuffix(left, "e") && isVowel(right, 0) {
		left = left[:len(left)-1]
	}
	if left != "" && left[len(left)-1] == right[0] {
		right = right[1:]
	}
	return left + right
}

func firstVowel(w string, from int) int {
	for i := from; i < len(w); i++ {
		if isVowel(w, i) {
			return i
		}
	}
	return -1
}

// isVowel reports whether w[i] is a vowel; y counts except as the first letter.
func isVowel(w string, i int) bool {
	switch w[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	case 'y':
		return i > 0
	}
	return false
}

func lowerLetters(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func capitalize(w string) string {
	if w == "" {
		return ""
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

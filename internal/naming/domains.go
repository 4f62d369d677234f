package naming

import "strings"

// DefaultTLDs are tried when DomainCandidates is given none.
var DefaultTLDs = []string{".com", ".io", ".co", ".ai", ".app"}

// DomainCandidates lists domains to check for name: the bare name on every
// TLD, then "get" and "try" variants on the first TLD. The name keeps only
// lowercase letters and digits; TLDs may be given with or without the dot.
func DomainCandidates(name string, tlds []string) []string {
	out := []string{}
	slug := domainSlug(name)
	if slug == "" {
		return out
	}
	if len(tlds) == 0 {
		tlds = DefaultTLDs
	}

	var clean []string
	seen := map[string]bool{}
	for _, t := range tlds {
		t = strings.ToLower(strings.TrimSpace(t))
		t = "." + strings.TrimPrefix(t, ".")
		if t == "." || seen[t] {
			continue
		}
		seen[t] = true
		clean = append(clean, t)
	}
	if len(clean) == 0 {
		return out
	}

	for _, t := range clean {
		out = append(out, slug+t)
	}
	return append(out, "get"+slug+clean[0], "try"+slug+clean[0])
}

func domainSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

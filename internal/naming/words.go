// Package naming holds word lists and heuristics for coming up with
// startup names, plus a generator that asks a language model for more.
package naming

import (
	"slices"
	"sort"
	"strings"
)

// Style is a family of startup names.
type Style struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

func (s Style) clone() Style {
	s.Examples = slices.Clone(s.Examples)
	return s
}

var styles = []Style{
	{Slug: "descriptive", Name: "Descriptive",
		Description: "Says plainly what the company does.",
		Examples:    []string{"General Motors", "Booking.com", "Salesforce"}},
	{Slug: "invented", Name: "Invented",
		Description: "A new word with no prior meaning, easy to own and trademark.",
		Examples:    []string{"Kodak", "Xerox", "Hulu"}},
	{Slug: "compound", Name: "Compound",
		Description: "Two real words joined into one.",
		Examples:    []string{"Facebook", "Snapchat", "Dropbox"}},
	{Slug: "metaphor", Name: "Metaphor",
		Description: "A real word borrowed for what it evokes.",
		Examples:    []string{"Amazon", "Apple", "Slack"}},
	{Slug: "misspelled", Name: "Misspelled",
		Description: "A familiar word spelled differently so the domain is free.",
		Examples:    []string{"Flickr", "Lyft", "Tumblr"}},
	{Slug: "portmanteau", Name: "Portmanteau",
		Description: "Parts of two words blended so they overlap.",
		Examples:    []string{"Pinterest", "Instagram", "Groupon"}},
	{Slug: "acronym", Name: "Acronym",
		Description: "Initials of a longer name.",
		Examples:    []string{"IBM", "AWS", "HBO"}},
	{Slug: "foreign", Name: "Foreign word",
		Description: "A word taken from another language.",
		Examples:    []string{"Volvo", "Hyundai", "Audi"}},
}

// Styles returns the eight naming styles.
func Styles() []Style {
	out := make([]Style, len(styles))
	for i, s := range styles {
		out[i] = s.clone()
	}
	return out
}

// StyleBySlug looks up a naming style, ignoring case.
func StyleBySlug(slug string) (Style, bool) {
	for _, s := range styles {
		if strings.EqualFold(s.Slug, strings.TrimSpace(slug)) {
			return s.clone(), true
		}
	}
	return Style{}, false
}

// Affixes are written with a hyphen on the side that joins a root, so
// "get-" is a prefix and "-ify" a suffix.
var (
	prefixes = []string{"get-", "try-", "go-", "my-", "re-", "un-", "hey-", "use-", "join-", "meet-"}
	suffixes = []string{"-ly", "-ify", "-io", "-hub", "-lab", "-able", "-ster", "-ful", "-base", "-kit", "-wise", "-sy"}
)

// Prefixes returns the common startup-name prefixes.
func Prefixes() []string { return slices.Clone(prefixes) }

// Suffixes returns the common startup-name suffixes.
func Suffixes() []string { return slices.Clone(suffixes) }

var industryRoots = map[string][]string{
	"ai":          {"mind", "neural", "cogn", "sense", "logic", "brain", "deep", "signal"},
	"climate":     {"terra", "verde", "carbon", "solar", "gaia", "leaf", "tide", "sol"},
	"ecommerce":   {"cart", "shop", "store", "market", "bazaar", "parcel", "deal", "trade"},
	"education":   {"learn", "mentor", "scholar", "tutor", "quest", "lumen", "skill", "sage"},
	"fintech":     {"pay", "coin", "ledger", "vault", "mint", "fund", "cash", "capital"},
	"food":        {"fork", "plate", "harvest", "pantry", "spice", "crumb", "feast", "basil"},
	"health":      {"vita", "care", "pulse", "well", "med", "heal", "thrive", "cura"},
	"saas":        {"stack", "cloud", "flow", "sync", "desk", "ops", "grid", "pilot"},
	"security":    {"shield", "guard", "lock", "sentry", "fort", "aegis", "cipher", "key"},
	"travel":      {"roam", "trek", "voya", "nomad", "compass", "atlas", "wander", "jet"},
	"real-estate": {"nest", "haven", "dwell", "abode", "key", "brick", "hearth", "plot"},
}

// Industries returns the industries that have root words, sorted.
func Industries() []string {
	out := make([]string, 0, len(industryRoots))
	for k := range industryRoots {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// RootsFor returns the root words for industry, ignoring case.
func RootsFor(industry string) ([]string, bool) {
	roots, ok := industryRoots[strings.ToLower(strings.TrimSpace(industry))]
	if !ok {
		return nil, false
	}
	return slices.Clone(roots), true
}

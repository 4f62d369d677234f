package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyles(t *testing.T) {
	all := Styles()
	require.Len(t, all, 8)

	s, ok := StyleBySlug(" Portmanteau ")
	require.True(t, ok)
	assert.Equal(t, "portmanteau", s.Slug)
	assert.Contains(t, s.Examples, "Pinterest")

	_, ok = StyleBySlug("rhyming")
	assert.False(t, ok)

	all[0].Examples[0] = "mutated"
	assert.NotEqual(t, "mutated", Styles()[0].Examples[0])
}

func TestRootsFor(t *testing.T) {
	roots, ok := RootsFor("FinTech")
	require.True(t, ok)
	assert.Contains(t, roots, "ledger")

	roots[0] = "mutated"
	again, _ := RootsFor("fintech")
	assert.NotEqual(t, "mutated", again[0])

	_, ok = RootsFor("underwater basket weaving")
	assert.False(t, ok)
}

func TestIndustries_Sorted(t *testing.T) {
	got := Industries()
	assert.Len(t, got, 11)
	assert.IsIncreasing(t, got)
	for _, industry := range got {
		_, ok := RootsFor(industry)
		assert.True(t, ok, industry)
	}
}

func TestAffixes(t *testing.T) {
	for _, p := range Prefixes() {
		assert.Regexp(t, `^[a-z]+-$`, p)
	}
	for _, s := range Suffixes() {
		assert.Regexp(t, `^-[a-z]+$`, s)
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name    string
		roots   []string
		affixes []string
		want    []string
	}{
		{
			name:    "prefixes and suffixes",
			roots:   []string{"pay", "mint"},
			affixes: []string{"get-", "-ly", "-ify"},
			want:    []string{"Getpay", "Payly", "Payify", "Getmint", "Mintly", "Mintify"},
		},
		{
			name:    "silent e dropped before vowel",
			roots:   []string{"care"},
			affixes: []string{"-able"},
			want:    []string{"Carable"},
		},
		{
			name:    "doubled letter written once",
			roots:   []string{"well"},
			affixes: []string{"-ly"},
			want:    []string{"Welly"},
		},
		{
			name:    "duplicates and blanks dropped",
			roots:   []string{"Pay", "pay", " "},
			affixes: []string{"-ly", "ly", "-"},
			want:    []string{"Payly"},
		},
		{
			name:    "no roots",
			roots:   nil,
			affixes: []string{"-ly"},
			want:    []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Combine(tt.roots, tt.affixes))
		})
	}
}

func TestCombine_Deterministic(t *testing.T) {
	roots, _ := RootsFor("saas")
	first := Combine(roots, Suffixes())
	for trial := 0; trial < 5; trial++ {
		assert.Equal(t, first, Combine(roots, Suffixes()), "trial %d", trial)
	}
}

func TestPortmanteau(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"breakfast", "lunch", "Brunch"},
		{"smoke", "fog", "Smog"},
		{"motor", "hotel", "Motel"},
		{"spin", "inside", "Spinside"},
		{"", "Lunch", "Lunch"},
		{"brr", "hmm", "Brrhmm"},
	}
	for _, tt := range tests {
		t.Run(tt.a+"+"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Portmanteau(tt.a, tt.b))
		})
	}
}

func TestScoreName(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		syllables int
	}{
		{"Stripe", 100, 1},
		{"Go2Market", 90, 3},
		{"Xkcdqz", 60, 1},
		{"Strengths", 56, 1},
		{"Supercalifragilistic", 45, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreName(tt.name)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.syllables, got.Syllables)
		})
	}
}

func TestScoreName_Blank(t *testing.T) {
	got := ScoreName("  ")
	assert.Equal(t, NameScore{}, got)
}

func TestScoreName_Bounds(t *testing.T) {
	for _, name := range []string{"A", "Q-9-9-9", "Mmmmmmmmmmmmmmmmmm", "Aeiou", "x.y.z.com"} {
		got := ScoreName(name)
		assert.GreaterOrEqual(t, got.Score, 0, name)
		assert.LessOrEqual(t, got.Score, 100, name)
		assert.GreaterOrEqual(t, got.Pronounceability, 0.0, name)
		assert.LessOrEqual(t, got.Pronounceability, 1.0, name)
	}
}

func TestRankNames(t *testing.T) {
	got := RankNames([]string{"Xkcdqz", "Stripe", "stripe", " ", "Go2Market"})

	require.Len(t, got, 3)
	assert.Equal(t, "Stripe", got[0].Name)
	assert.Equal(t, "Go2Market", got[1].Name)
	assert.Equal(t, "Xkcdqz", got[2].Name)
}

func TestRankNames_TiesByName(t *testing.T) {
	got := RankNames([]string{"Zeta", "Beta"})

	require.Len(t, got, 2)
	assert.Equal(t, got[0].Score, got[1].Score)
	assert.Equal(t, "Beta", got[0].Name)
}

func TestDomainCandidates(t *testing.T) {
	assert.Equal(t, []string{
		"paynudge.com", "paynudge.io", "paynudge.co", "paynudge.ai", "paynudge.app",
		"getpaynudge.com", "trypaynudge.com",
	}, DomainCandidates("Pay Nudge!", nil))

	assert.Equal(t, []string{"acme.io", "acme.dev", "getacme.io", "tryacme.io"},
		DomainCandidates("Acme", []string{"io", ".IO", " dev "}))
}

func TestDomainCandidates_Empty(t *testing.T) {
	assert.Equal(t, []string{}, DomainCandidates("!!!", nil))
	assert.Equal(t, []string{}, DomainCandidates("Acme", []string{"", "."}))
}

package scoring

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	for _, in := range []string{"ice", "ICE", " Rice ", "pie"} {
		_, err := ParseMethod(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseMethod("moscow")
	assert.Error(t, err)
}

func TestIdea_Score(t *testing.T) {
	idea := Idea{Name: "a", Reach: 1000, Impact: 2, Confidence: 0.8, Ease: 9, Effort: 4, Potential: 7, Importance: 8}
	assert.InDelta(t, 14.4, idea.Score(MethodICE), 1e-9)
	assert.Equal(t, 400.0, idea.Score(MethodRICE))
	assert.InDelta(t, 8.0, idea.Score(MethodPIE), 1e-9)
	assert.True(t, math.IsNaN(idea.Score(Method("kano"))))
}

func TestRank_OrdersByScoreThenName(t *testing.T) {
	ideas := []Idea{
		{Name: "referral program", Impact: 5, Confidence: 5, Ease: 5},
		{Name: "annual plan", Impact: 8, Confidence: 7, Ease: 9},
		{Name: "blog", Impact: 5, Confidence: 5, Ease: 5},
	}

	ranked := Rank(ideas, MethodICE)

	require.Len(t, ranked, 3)
	assert.Equal(t, "annual plan", ranked[0].Idea.Name)
	assert.Equal(t, 504.0, ranked[0].Score)
	assert.Equal(t, "blog", ranked[1].Idea.Name)
	assert.Equal(t, "referral program", ranked[2].Idea.Name)
	for i, r := range ranked {
		assert.Equal(t, i+1, r.Rank)
	}
}

func TestRank_InfiniteFirstNaNLast(t *testing.T) {
	ideas := []Idea{
		{Name: "normal", Reach: 100, Impact: 1, Confidence: 1, Effort: 2},
		{Name: "nothing", Effort: 0},
		{Name: "free win", Reach: 100, Impact: 1, Confidence: 1, Effort: 0},
	}

	ranked := Rank(ideas, MethodRICE)

	assert.Equal(t, "free win", ranked[0].Idea.Name)
	assert.Equal(t, "normal", ranked[1].Idea.Name)
	assert.Equal(t, "nothing", ranked[2].Idea.Name)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil, MethodICE))
}

// TestRank_Property_InputUntouched checks that ranking never reorders or
// edits the caller's slice and always yields a descending score sequence.
func TestRank_Property_InputUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(12)
		ideas := make([]Idea, n)
		for i := range ideas {
			ideas[i] = Idea{
				Name:       fmt.Sprintf("idea-%02d", rng.Intn(20)),
				Impact:     float64(rng.Intn(10) + 1),
				Confidence: float64(rng.Intn(10) + 1),
				Ease:       float64(rng.Intn(10) + 1),
			}
		}
		before := slices.Clone(ideas)

		ranked := Rank(ideas, MethodICE)

		assert.Empty(t, cmp.Diff(before, ideas), "trial %d: input mutated", trial)
		assert.Len(t, ranked, n)
		for i := 1; i < len(ranked); i++ {
			assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score, "trial %d", trial)
		}
	}
}

package scoring

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestICE_Example(t *testing.T) {
	assert.Equal(t, 504.0, ICE(8, 7, 9))
}

func TestRICE_Example(t *testing.T) {
	assert.Equal(t, 400.0, RICE(1000, 2, 0.8, 4))
}

func TestPIE_Example(t *testing.T) {
	assert.InDelta(t, 7.0, PIE(7, 8, 6), 1e-9)
}

func TestRICE_ZeroEffortIsInfinite(t *testing.T) {
	assert.True(t, math.IsInf(RICE(100, 1, 0.5, 0), 1))
	assert.True(t, math.IsNaN(RICE(0, 1, 0.5, 0)))
}

func TestICE_NoBoundsChecks(t *testing.T) {
	tests := []struct {
		name    string
		i, c, e float64
		want    float64
	}{
		{"zero impact", 0, 9, 9, 0},
		{"negative", -2, 3, 4, -24},
		{"fractional", 0.5, 0.5, 4, 1},
		{"above ten", 20, 10, 10, 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ICE(tt.i, tt.c, tt.e))
		})
	}
}

// TestICE_Property_Product checks ice equals the product and vanishes with
// zero impact for random non-negative inputs.
func TestICE_Property_Product(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 500; trial++ {
		i, c, e := rng.Float64()*10, rng.Float64()*10, rng.Float64()*10
		assert.Equal(t, i*c*e, ICE(i, c, e), "trial %d", trial)
		assert.Zero(t, ICE(0, c, e), "trial %d", trial)
	}
}

func TestRICE_Property_ZeroEffort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 500; trial++ {
		reach := rng.Float64()*10000 + 1
		impact := rng.Float64()*3 + 0.25
		confidence := rng.Float64() + 0.01
		assert.True(t, math.IsInf(RICE(reach, impact, confidence, 0), 1), "trial %d", trial)
	}
}

func TestPIE_Property_BetweenMinAndMax(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 500; trial++ {
		a := rng.Float64()*20 - 10
		b := rng.Float64()*20 - 10
		c := rng.Float64()*20 - 10
		got := PIE(a, b, c)
		lo := math.Min(a, math.Min(b, c))
		hi := math.Max(a, math.Max(b, c))
		assert.GreaterOrEqual(t, got, lo-1e-12, "trial %d", trial)
		assert.LessOrEqual(t, got, hi+1e-12, "trial %d", trial)
	}
}

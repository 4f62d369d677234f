package stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredSampleSize_KnownValue(t *testing.T) {
	// 10% baseline, 20% relative lift, 80% power, 95% significance.
	n := RequiredSampleSize(0.10, 0.20, 0.8, 0.95)
	assert.InDelta(t, 3841, n, 1)
}

func TestRequiredSampleSize_Defaults(t *testing.T) {
	assert.Equal(t,
		RequiredSampleSize(0.05, 0.1, 0.8, 0.95),
		RequiredSampleSize(0.05, 0.1, 0, 0))
}

func TestRequiredSampleSize_Degenerate(t *testing.T) {
	tests := []struct {
		name                  string
		baseline, mde, pw, sg float64
	}{
		{"zero baseline", 0, 0.1, 0.8, 0.95},
		{"full baseline", 1, 0.1, 0.8, 0.95},
		{"zero effect", 0.1, 0, 0.8, 0.95},
		{"negative effect", 0.1, -0.2, 0.8, 0.95},
		{"lift past certainty", 0.6, 1, 0.8, 0.95},
		{"power of one", 0.1, 0.1, 1, 0.95},
		{"significance of one", 0.1, 0.1, 0.8, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, RequiredSampleSize(tt.baseline, tt.mde, tt.pw, tt.sg))
		})
	}
}

// TestRequiredSampleSize_Property_Monotone checks that a larger detectable
// effect never needs more visitors, and that more power or significance
// never needs fewer.
func TestRequiredSampleSize_Property_Monotone(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 300; trial++ {
		baseline := 0.01 + rng.Float64()*0.4
		mde := 0.02 + rng.Float64()*0.5
		bigger := mde + rng.Float64()*0.3

		small := RequiredSampleSize(baseline, mde, 0.8, 0.95)
		large := RequiredSampleSize(baseline, bigger, 0.8, 0.95)
		assert.GreaterOrEqual(t, small, large, "trial %d: mde %.3f vs %.3f", trial, mde, bigger)

		assert.GreaterOrEqual(t, RequiredSampleSize(baseline, mde, 0.9, 0.95), small, "trial %d power", trial)
		assert.GreaterOrEqual(t, RequiredSampleSize(baseline, mde, 0.8, 0.99), small, "trial %d significance", trial)
	}
}

func TestRequiredSampleSize_TinyEffectSaturates(t *testing.T) {
	prev := math.MaxInt
	for _, mde := range []float64{1e-12, 1e-10, 1e-9, 1e-6, 1e-3} {
		n := RequiredSampleSize(0.1, mde, 0, 0)
		assert.Positive(t, n, "mde %g", mde)
		assert.LessOrEqual(t, n, prev, "mde %g", mde)
		prev = n
	}
	assert.Equal(t, math.MaxInt, RequiredSampleSize(0.1, 1e-10, 0, 0))
}

func TestSignificance_ClearWinner(t *testing.T) {
	r := Significance(0.10, 5000, 0.13, 5000)
	assert.Greater(t, r.ZScore, 0.0)
	assert.Less(t, r.PValue, 0.05)
	assert.True(t, r.IsSignificant)
}

func TestSignificance_IdenticalRates(t *testing.T) {
	r := Significance(0.10, 1000, 0.10, 1000)
	assert.Zero(t, r.ZScore)
	assert.InDelta(t, 1.0, r.PValue, 1e-12)
	assert.False(t, r.IsSignificant)
}

func TestSignificance_NoSpread(t *testing.T) {
	for _, r := range []Result{
		Significance(0, 100, 0, 100),
		Significance(1, 100, 1, 100),
		Significance(0.1, 0, 0.2, 100),
	} {
		assert.Equal(t, Result{PValue: 1}, r)
	}
}

func TestSignificanceAt_StricterConfidence(t *testing.T) {
	// z near 2.02: significant at 95%, not at 99%.
	loose := SignificanceAt(0.10, 2000, 0.12, 2000, 0.95)
	strict := SignificanceAt(0.10, 2000, 0.12, 2000, 0.99)
	assert.True(t, loose.IsSignificant)
	assert.False(t, strict.IsSignificant)
	assert.Equal(t, loose.PValue, strict.PValue)
}

// TestSignificance_Property_Symmetric swaps control and treatment.
func TestSignificance_Property_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 500; trial++ {
		p1, n1 := rng.Float64(), float64(rng.Intn(10000)+1)
		p2, n2 := rng.Float64(), float64(rng.Intn(10000)+1)

		a := Significance(p1, n1, p2, n2)
		b := Significance(p2, n2, p1, n1)

		assert.Equal(t, a.PValue, b.PValue, "trial %d", trial)
		assert.Equal(t, a.IsSignificant, b.IsSignificant, "trial %d", trial)
		assert.Equal(t, a.ZScore, -b.ZScore, "trial %d", trial)
	}
}

func TestUplift(t *testing.T) {
	assert.InDelta(t, 20.0, Uplift(0.10, 0.12), 1e-9)
	assert.InDelta(t, -50.0, Uplift(0.2, 0.1), 1e-9)
	assert.Zero(t, Uplift(0.3, 0.3))
}

func TestUplift_ZeroBaseline(t *testing.T) {
	assert.True(t, math.IsInf(Uplift(0, 0.1), 1))
	assert.True(t, math.IsInf(Uplift(0, -0.1), -1))
	assert.True(t, math.IsNaN(Uplift(0, 0)))
}

func TestUplift_NegativeBaseline(t *testing.T) {
	// (−1 − (−2)) / −2 · 100
	assert.InDelta(t, -50.0, Uplift(-2, -1), 1e-9)
}

func TestEstimateDuration(t *testing.T) {
	assert.Equal(t, 8, EstimateDuration(3841, 2, 1000))
	assert.Equal(t, 1, EstimateDuration(10, 2, 1000))
	assert.Zero(t, EstimateDuration(3841, 2, 0))
	assert.Zero(t, EstimateDuration(0, 2, 100))
}

func TestConfidenceInterval(t *testing.T) {
	lo, hi := ConfidenceInterval(0.5, 100, 0.95)
	assert.InDelta(t, 0.402, lo, 0.001)
	assert.InDelta(t, 0.598, hi, 0.001)

	lo, hi = ConfidenceInterval(0.01, 10, 0.95)
	assert.Zero(t, lo)
	assert.Greater(t, hi, 0.01)

	lo, hi = ConfidenceInterval(0.3, 0, 0.95)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}

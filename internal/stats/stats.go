// Package stats holds the A/B testing arithmetic: sample sizes, two-proportion
// z-tests and uplift. Rates are fractions in [0, 1], not percentages.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	DefaultPower        = 0.8
	DefaultSignificance = 0.95
)

// RequiredSampleSize returns the visitors needed per variant to detect a
// relative lift of minimumDetectableEffect over baselineRate with a
// two-sided two-proportion test. Non-positive power or significance fall
// back to 0.8 and 0.95. Inputs that admit no finite answer return 0. An
// effect too small to detect within the int range saturates at math.MaxInt.
func RequiredSampleSize(baselineRate, minimumDetectableEffect, power, significance float64) int {
	if power <= 0 {
		power = DefaultPower
	}
	if significance <= 0 {
		significance = DefaultSignificance
	}
	if power >= 1 || significance >= 1 {
		return 0
	}

	p1 := baselineRate
	p2 := p1 * (1 + minimumDetectableEffect)
	if p1 <= 0 || p1 >= 1 || minimumDetectableEffect <= 0 || p2 >= 1 {
		return 0
	}

	alpha := 1 - significance
	zAlpha := distuv.UnitNormal.Quantile(1 - alpha/2)
	zBeta := distuv.UnitNormal.Quantile(power)

	pBar := (p1 + p2) / 2
	a := zAlpha * math.Sqrt(2*pBar*(1-pBar))
	b := zBeta * math.Sqrt(p1*(1-p1)+p2*(1-p2))
	d := p2 - p1

	n := math.Ceil((a + b) * (a + b) / (d * d))
	if math.IsNaN(n) || n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// Result is the outcome of a two-proportion z-test.
type Result struct {
	ZScore        float64 `json:"zScore"`
	PValue        float64 `json:"pValue"`
	IsSignificant bool    `json:"isSignificant"`
}

// Significance runs a pooled two-proportion z-test at 95% confidence.
// ZScore is positive when the treatment converts better.
func Significance(controlRate, controlSize, treatmentRate, treatmentSize float64) Result {
	return SignificanceAt(controlRate, controlSize, treatmentRate, treatmentSize, DefaultSignificance)
}

// SignificanceAt is Significance at the given confidence level. A
// confidence outside (0, 1) means 0.95. Groups with no spread, or empty
// groups, report z 0 and p 1.
func SignificanceAt(controlRate, controlSize, treatmentRate, treatmentSize, confidence float64) Result {
	if confidence <= 0 || confidence >= 1 {
		confidence = DefaultSignificance
	}
	none := Result{PValue: 1}
	if controlSize <= 0 || treatmentSize <= 0 {
		return none
	}

	pooled := (controlRate*controlSize + treatmentRate*treatmentSize) / (controlSize + treatmentSize)
	se := math.Sqrt(pooled * (1 - pooled) * (1/controlSize + 1/treatmentSize))
	if se == 0 || math.IsNaN(se) {
		return none
	}

	z := (treatmentRate - controlRate) / se
	p := 2 * (1 - distuv.UnitNormal.CDF(math.Abs(z)))
	return Result{
		ZScore:        z,
		PValue:        p,
		IsSignificant: p < 1-confidence,
	}
}

// Uplift returns the percentage change from baseline to treatment. A zero
// baseline has no defined uplift; the IEEE quotient (±Inf, or NaN when
// treatment is also zero) is returned as is.
func Uplift(baseline, treatment float64) float64 {
	return ((treatment - baseline) / baseline) * 100
}

// EstimateDuration returns the whole days needed to reach samplePerVariant
// in each of variants arms given dailyVisitors across the test.
func EstimateDuration(samplePerVariant, variants int, dailyVisitors float64) int {
	if samplePerVariant <= 0 || variants <= 0 || dailyVisitors <= 0 {
		return 0
	}
	return int(math.Ceil(float64(samplePerVariant*variants) / dailyVisitors))
}

// ConfidenceInterval returns the Wald interval for an observed rate over n
// trials, clamped to [0, 1].
func ConfidenceInterval(rate, n, confidence float64) (lo, hi float64) {
	if n <= 0 {
		return 0, 1
	}
	if confidence <= 0 || confidence >= 1 {
		confidence = DefaultSignificance
	}
	z := distuv.UnitNormal.Quantile(1 - (1-confidence)/2)
	margin := z * math.Sqrt(rate*(1-rate)/n)
	return math.Max(0, rate-margin), math.Min(1, rate+margin)
}

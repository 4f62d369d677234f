package scoring

// ICE multiplies impact, confidence and ease. Inputs are not bounded.
func ICE(impact, confidence, ease float64) float64 {
	return impact * confidence * ease
}

// RICE returns (reach * impact * confidence) / effort. A zero effort yields
// +Inf for a positive numerator and NaN for a zero one; callers rely on that.
func RICE(reach, impact, confidence, effort float64) float64 {
	return (reach * impact * confidence) / effort
}

// PIE is the mean of potential, importance and ease.
func PIE(potential, importance, ease float64) float64 {
	return (potential + importance + ease) / 3
}

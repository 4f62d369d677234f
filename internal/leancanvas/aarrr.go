package leancanvas

import (
	"slices"
	"strings"
)

// Stage is one step of Dave McClure's AARRR funnel.
type Stage struct {
	Order       int      `json:"order"`
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Question    string   `json:"question"`
	Metrics     []string `json:"metrics"`
	Description string   `json:"description"`
}

var stages = []Stage{
	{Order: 1, Key: "acquisition", Name: "Acquisition",
		Question:    "How do users find you?",
		Description: "Visitors arrive from a channel.",
		Metrics:     []string{"Visitors", "Cost per acquisition", "Traffic by channel"}},
	{Order: 2, Key: "activation", Name: "Activation",
		Question:    "Do users have a great first experience?",
		Description: "Visitors sign up and reach the first moment of value.",
		Metrics:     []string{"Sign-ups", "Onboarding completion", "Time to first value"}},
	{Order: 3, Key: "retention", Name: "Retention",
		Question:    "Do users come back?",
		Description: "Activated users return and keep using the product.",
		Metrics:     []string{"Weekly active users", "Churn rate", "Cohort retention"}},
	{Order: 4, Key: "revenue", Name: "Revenue",
		Question:    "How do you make money?",
		Description: "Users pay.",
		Metrics:     []string{"Conversion to paid", "Average revenue per user", "Lifetime value"}},
	{Order: 5, Key: "referral", Name: "Referral",
		Question:    "Do users tell others?",
		Description: "Happy users bring in new ones.",
		Metrics:     []string{"Viral coefficient", "Referral invites sent", "Net promoter score"}},
}

// Stages returns the five funnel stages in order.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	for i, s := range stages {
		s.Metrics = slices.Clone(s.Metrics)
		out[i] = s
	}
	return out
}

// StageByKey looks up a funnel stage, ignoring case.
func StageByKey(key string) (Stage, bool) {
	for _, s := range stages {
		if strings.EqualFold(s.Key, strings.TrimSpace(key)) {
			s.Metrics = slices.Clone(s.Metrics)
			return s, true
		}
	}
	return Stage{}, false
}

// FunnelConversion returns the step-to-step conversion rates of counts,
// one fewer than len(counts). A step after a zero count converts at 0.
func FunnelConversion(counts []int) []float64 {
	if len(counts) < 2 {
		return []float64{}
	}
	out := make([]float64, len(counts)-1)
	for i := 1; i < len(counts); i++ {
		if counts[i-1] == 0 {
			continue
		}
		out[i-1] = float64(counts[i]) / float64(counts[i-1])
	}
	return out
}

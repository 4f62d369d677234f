package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Method selects the formula used to score an Idea.
type Method string

const (
	MethodICE  Method = "ice"
	MethodRICE Method = "rice"
	MethodPIE  Method = "pie"
)

// Methods returns every supported method.
func Methods() []Method {
	return []Method{MethodICE, MethodRICE, MethodPIE}
}

// ParseMethod accepts a method name in any case.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MethodICE, MethodRICE, MethodPIE:
		return m, nil
	}
	return "", fmt.Errorf("unknown scoring method %q (want ice, rice or pie)", s)
}

// Idea carries the inputs of every scoring method. Fields a method does not
// use are ignored.
type Idea struct {
	Name       string  `json:"name" yaml:"name"`
	Reach      float64 `json:"reach,omitempty" yaml:"reach,omitempty"`
	Impact     float64 `json:"impact,omitempty" yaml:"impact,omitempty"`
	Confidence float64 `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	Ease       float64 `json:"ease,omitempty" yaml:"ease,omitempty"`
	Effort     float64 `json:"effort,omitempty" yaml:"effort,omitempty"`
	Potential  float64 `json:"potential,omitempty" yaml:"potential,omitempty"`
	Importance float64 `json:"importance,omitempty" yaml:"importance,omitempty"`
}

// Score evaluates the idea with method. Unknown methods score NaN.
func (i Idea) Score(method Method) float64 {
	switch method {
	case MethodICE:
		return ICE(i.Impact, i.Confidence, i.Ease)
	case MethodRICE:
		return RICE(i.Reach, i.Impact, i.Confidence, i.Effort)
	case MethodPIE:
		return PIE(i.Potential, i.Importance, i.Ease)
	default:
		return math.NaN()
	}
}

// Ranked is an Idea with its score and 1-based position.
type Ranked struct {
	Idea  Idea    `json:"idea"`
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}

// Rank scores ideas with method and orders them:
// 1. Score: higher first (+Inf first, NaN last)
// 2. Name: lexical ascending
// The input slice is left untouched.
func Rank(ideas []Idea, method Method) []Ranked {
	ranked := make([]Ranked, len(ideas))
	for i, idea := range ideas {
		ranked[i] = Ranked{Idea: idea, Score: idea.Score(method)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		nanA, nanB := math.IsNaN(a.Score), math.IsNaN(b.Score)
		if nanA != nanB {
			return nanB
		}
		if !nanA && a.Score != b.Score {
			return a.Score > b.Score
		}

		return a.Idea.Name < b.Idea.Name
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

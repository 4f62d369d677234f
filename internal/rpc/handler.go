package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/leancanvas"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/naming"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/scoring"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/sprint"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/startupschool"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/stats"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/storybrand"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/textmetrics"
	"github.com/sourcegraph/jsonrpc2"
)

type method func(ctx context.Context, params json.RawMessage) (any, error)

var methods = map[string]method{
	"score.ice":          scoreICE,
	"score.rice":         scoreRICE,
	"score.pie":          scorePIE,
	"score.rank":         scoreRank,
	"stats.sampleSize":   statsSampleSize,
	"stats.significance": statsSignificance,
	"stats.uplift":       statsUplift,
	"text.readingLevel":  textReadingLevel,
	"text.contrast":      textContrast,
	"sprint.day":         sprintDay,
	"storybrand.element": storybrandElement,
	"canvas.block":       canvasBlock,
	"school.lecture":     schoolLecture,
	"school.concept":     schoolConcept,
	"naming.score":       namingScore,
}

// Methods lists the served method names, sorted.
func Methods() []string {
	out := make([]string, 0, len(methods))
	for name := range methods {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// NewHandler returns the handler behind Serve. Unknown methods get
// MethodNotFound; bad params get InvalidParams; lookups that match nothing
// answer null.
func NewHandler() jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, _ *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		m, ok := methods[req.Method]
		if !ok {
			return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "method not found: " + req.Method}
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return m(ctx, params)
	})
}

func invalidParams(format string, args ...any) *jsonrpc2.Error {
	return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: fmt.Sprintf(format, args...)}
}

func decode(params json.RawMessage, v any) error {
	if len(params) == 0 {
		return invalidParams("missing params")
	}
	if err := json.Unmarshal(params, v); err != nil {
		return invalidParams("decoding params: %v", err)
	}
	return nil
}

// Number carries a float that JSON cannot represent. Infinities encode as
// a null value with Infinite set, and Negative set for -Inf; NaN encodes as
// a null value alone.
type Number struct {
	Value    *float64 `json:"score"`
	Infinite bool     `json:"infinite,omitempty"`
	Negative bool     `json:"negative,omitempty"`
}

// NewNumber wraps a score for encoding.
func NewNumber(v float64) Number {
	switch {
	case math.IsInf(v, 1):
		return Number{Infinite: true}
	case math.IsInf(v, -1):
		return Number{Infinite: true, Negative: true}
	case math.IsNaN(v):
		return Number{}
	default:
		return Number{Value: &v}
	}
}

func scoreICE(_ context.Context, params json.RawMessage) (any, error) {
	var p struct {
		Impact     float64 `json:"impact"`
		Confidence float64 `json:"confidence"`
		Ease       float64 `json:"ease"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return NewNumber(scoring.ICE(p.Impact, p.Confidence, p.Ease)), nil
}

func scoreRICE(_ context.Context, params json.RawMessage) (any, error) {
	var p struct {
		Reach      float64 `json:"reach"`
		Impact     float64 `json:"impact"`
		Confidence float64 `json:"confidence"`
		Effort     float64 `json:"effort"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return NewNumber(scoring.RICE(p.Reach, p.Impact, p.Confidence, p.Effort)), nil
}

func scorePIE(_ context.Context, params json.RawMessage) (any, error) {
	var p struct {
		Potential  float64 `json:"potential"`
		Importance float64 `json:"importance"`
		Ease       float64 `json:"ease"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return NewNumber(scoring.PIE(p.Potential, p.Importance, p.Ease)), nil
}

type rankedIdea struct {
	Name string `json:"name"`
	Rank int    `json:"rank"`
	Number
}

func scoreRank(_ context.Context, params json.RawMessage) (any, error) {
	var p struct {
		Method string         `json:"method"`
		Ideas  []scoring.Idea `json:"ideas"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	m, err := scoring.ParseMethod(p.Method)
	if err != nil {
		return nil, invalidParams("%v", err)
	}
	out := []rankedIdea{}
	for _, r := range scoring.Rank(p.Ideas, m) {
		out = append(out, rankedIdea{Name: r.Idea.Name, Rank: r.Rank, Number: NewNumber(r.Score)})
	}
	return out, nil
}

func statsSampleSize(_ context.Context, params json.RawMessage) (any, error) {
	var p struct {
		BaselineRate float64 `json:"baseline_rate"`
		MDE          float64 `json:"mde"`
		Power        float64 `json:"power"`
		Significance float64 `json:"significance"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	n := stats.RequiredSampleSize(p.BaselineRate, p.MDE, p.Power, p.Significance)
	return map[string]int{"sample_size": n}, nil
}

func statsSignificance(_ context.Context, params json.RawMessage) (any, error) {
	var p struct {
		ControlRate   float64 `json:"control_rate"`
		ControlSize   float64 `json:"control_size"`
		TreatmentRate float64 `json:"treatment_rate"`
		TreatmentSize float64 `json:"treatment_size"`
		Confidence    float64 `json:"confidence"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if p.Confidence <= 0 {
		p.Confidence = stats.DefaultSignificance
	}
	return stats.SignificanceAt(p.ControlRate, p.ControlSize, p.TreatmentRate, p.TreatmentSize, p.Confidence), nil
}

func statsUplift(_ context.Context, params json.RawMessage) (any, error) {
	var p struct {
		Baseline  float64 `json:"baseline"`
		Treatment float64 `json:"treatment"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return NewNumber(stats.Uplift(p.Baseline, p.Treatment)), nil
}

func textReadingLevel(_ context.Context, params json.RawMessage) (any, error) {
	var p struct {
		Text string `json:"text"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return map[string]any{
		"grade":        textmetrics.EstimateReadingLevel(p.Text),
		"reading_ease": textmetrics.FleschReadingEase(p.Text),
		"words":        textmetrics.CountWords(p.Text),
		"sentences":    textmetrics.CountSentences(p.Text),
	}, nil
}

func textContrast(_ context.Context, params json.RawMessage) (any, error) {
	var p struct {
		Foreground string `json:"foreground"`
		Background string `json:"background"`
		LargeText  bool   `json:"large_text"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	ratio, err := textmetrics.ContrastRatio(p.Foreground, p.Background)
	if errors.Is(err, textmetrics.ErrInvalidColor) {
		return nil, invalidParams("%v", err)
	}
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"ratio": ratio,
		"level": textmetrics.WCAGLevel(ratio, p.LargeText),
	}, nil
}

func sprintDay(_ context.Context, params json.RawMessage) (any, error) {
	var p struct {
		Number int    `json:"number"`
		Name   string `json:"name"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	d, ok := sprint.DayByNumber(p.Number)
	if !ok && p.Name != "" {
		d, ok = sprint.DayByName(p.Name)
	}
	if !ok {
		return nil, nil
	}
	return d, nil
}

func storybrandElement(_ context.Context, params json.RawMessage) (any, error) {
	var p struct {
		Key string `json:"key"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if e, ok := storybrand.ElementByKey(p.Key); ok {
		return e, nil
	}
	return nil, nil
}

func canvasBlock(_ context.Context, params json.RawMessage) (any, error) {
	var p struct {
		Key string `json:"key"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if b, ok := leancanvas.BlockByKey(p.Key); ok {
		return b, nil
	}
	return nil, nil
}

func schoolLecture(_ context.Context, params json.RawMessage) (any, error) {
	var p struct {
		ID string `json:"id"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if l, ok := startupschool.LectureByID(p.ID); ok {
		return l, nil
	}
	return nil, nil
}

func schoolConcept(_ context.Context, params json.RawMessage) (any, error) {
	var p struct {
		Slug string `json:"slug"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if c, ok := startupschool.ConceptBySlug(p.Slug); ok {
		return c, nil
	}
	return nil, nil
}

func namingScore(_ context.Context, params json.RawMessage) (any, error) {
	var p struct {
		Name string `json:"name"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return naming.ScoreName(p.Name), nil
}

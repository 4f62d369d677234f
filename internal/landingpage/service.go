package landingpage

import (
	"context"
	"fmt"
	"sort"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/llm"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/scoring"
)

// Product is what the landing page sells.
type Product struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Audience    string `json:"audience,omitempty"`
	Benefit     string `json:"benefit,omitempty"`
}

// HeadlineIdea is a generated headline with its analysis.
type HeadlineIdea struct {
	Text     string           `json:"text"`
	Angle    string           `json:"angle"`
	Analysis HeadlineAnalysis `json:"analysis"`
}

// HeadlineSet holds generated headlines, best scoring first.
type HeadlineSet struct {
	Headlines []HeadlineIdea `json:"headlines"`
}

// Fix is one recommended change from a critique.
type Fix struct {
	Heuristic  string `json:"heuristic"`
	Problem    string `json:"problem"`
	Suggestion string `json:"suggestion"`
	Priority   string `json:"priority"`
}

// Critique is a model-written review of an audit.
type Critique struct {
	Summary string `json:"summary"`
	Fixes   []Fix  `json:"fixes"`
}

// Experiment is a proposed A/B test with ICE inputs.
type Experiment struct {
	Name       string  `json:"name"`
	Hypothesis string  `json:"hypothesis"`
	Impact     float64 `json:"impact"`
	Confidence float64 `json:"confidence"`
	Ease       float64 `json:"ease"`
	ICE        float64 `json:"ice"`
}

// ExperimentPlan holds experiments ordered by ICE score.
type ExperimentPlan struct {
	Experiments []Experiment `json:"experiments"`
}

// Ideas converts the plan to scoring ideas for re-ranking.
func (p ExperimentPlan) Ideas() []scoring.Idea {
	out := make([]scoring.Idea, len(p.Experiments))
	for i, e := range p.Experiments {
		out[i] = scoring.Idea{Name: e.Name, Impact: e.Impact, Confidence: e.Confidence, Ease: e.Ease}
	}
	return out
}

// Service generates landing page copy and reviews with a language model.
type Service interface {
	// Headlines drafts headlines and scores each with AnalyzeHeadline.
	Headlines(ctx context.Context, p Product) (*HeadlineSet, error)

	// Critique turns an audit into prioritized fixes.
	Critique(ctx context.Context, report AuditReport) (*Critique, error)

	// Experiments proposes A/B tests ranked by ICE.
	Experiments(ctx context.Context, p Product) (*ExperimentPlan, error)
}

type critiqueInput struct {
	Score      int
	Failed     []Finding
	Heuristics []Heuristic
}

type service struct {
	headlines   llm.Completer[Product, HeadlineSet]
	critique    llm.Completer[critiqueInput, Critique]
	experiments llm.Completer[Product, ExperimentPlan]
}

// NewService creates a Service backed by client.
func NewService(client llm.Client) Service {
	return &service{
		headlines: llm.MustFunction[Product, HeadlineSet](client, llm.FunctionSpec{
			Name:   "landing_headlines",
			Task:   llm.TaskLandingPage,
			System: copywriterSystemPrompt,
			Prompt: headlinesPrompt,
			Schema: headlinesSchema,
		}, nil),
		critique: llm.MustFunction[critiqueInput, Critique](client, llm.FunctionSpec{
			Name:   "landing_critique",
			Task:   llm.TaskLandingPage,
			System: copywriterSystemPrompt,
			Prompt: critiquePrompt,
			Schema: critiqueSchema,
		}, validateCritique),
		experiments: llm.MustFunction[Product, ExperimentPlan](client, llm.FunctionSpec{
			Name:   "landing_experiments",
			Task:   llm.TaskLandingPage,
			System: copywriterSystemPrompt,
			Prompt: experimentsPrompt,
			Schema: experimentsSchema,
		}, nil),
	}
}

func (s *service) Headlines(ctx context.Context, p Product) (*HeadlineSet, error) {
	out, err := s.headlines.Complete(ctx, p)
	if err != nil {
		return nil, err
	}
	for i := range out.Headlines {
		out.Headlines[i].Analysis = AnalyzeHeadline(out.Headlines[i].Text)
	}
	sort.SliceStable(out.Headlines, func(i, j int) bool {
		return out.Headlines[i].Analysis.Score > out.Headlines[j].Analysis.Score
	})
	return &out, nil
}

func (s *service) Critique(ctx context.Context, report AuditReport) (*Critique, error) {
	out, err := s.critique.Complete(ctx, critiqueInput{
		Score:      report.Score,
		Failed:     report.Failed(),
		Heuristics: Heuristics(),
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Experiments(ctx context.Context, p Product) (*ExperimentPlan, error) {
	out, err := s.experiments.Complete(ctx, p)
	if err != nil {
		return nil, err
	}

	for i := range out.Experiments {
		e := &out.Experiments[i]
		e.ICE = scoring.ICE(e.Impact, e.Confidence, e.Ease)
	}
	sort.SliceStable(out.Experiments, func(i, j int) bool {
		a, b := out.Experiments[i], out.Experiments[j]
		if a.ICE != b.ICE {
			return a.ICE > b.ICE
		}
		return a.Name < b.Name
	})
	return &out, nil
}

func validateCritique(c Critique) error {
	for _, f := range c.Fixes {
		if _, ok := HeuristicBySlug(f.Heuristic); !ok {
			return fmt.Errorf("unknown heuristic %q", f.Heuristic)
		}
	}
	return nil
}

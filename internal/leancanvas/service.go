package leancanvas

import (
	"context"
	"fmt"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/llm"
)

// Idea is a startup idea to put on a canvas.
type Idea struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Customer    string `json:"customer,omitempty"`
}

// PivotRequest asks for pivot options given a current canvas.
type PivotRequest struct {
	Canvas    Canvas `json:"canvas"`
	Learnings string `json:"learnings,omitempty"`
}

// PivotOption is one suggested pivot.
type PivotOption struct {
	Type       string `json:"type"`
	Rationale  string `json:"rationale"`
	Experiment string `json:"experiment"`
}

// PivotOptions holds the suggested pivots.
type PivotOptions struct {
	Options []PivotOption `json:"options"`
}

// Assumption is a belief the business depends on.
type Assumption struct {
	Block      BlockKey `json:"block"`
	Assumption string   `json:"assumption"`
	Risk       string   `json:"risk"`
	Test       string   `json:"test"`
}

// Assumptions holds the riskiest assumptions, riskiest first.
type Assumptions struct {
	Assumptions []Assumption `json:"assumptions"`
}

// Service generates Lean Canvas material with a language model.
type Service interface {
	Canvas(ctx context.Context, idea Idea) (*Canvas, error)
	// Pivots suggests pivots drawn from the known pivot types.
	Pivots(ctx context.Context, req PivotRequest) (*PivotOptions, error)
	RiskiestAssumptions(ctx context.Context, c Canvas) (*Assumptions, error)
}

type pivotInput struct {
	PivotRequest
	Types []PivotType `json:"-"`
}

type assumptionsInput struct {
	Canvas
	Blocks []Block `json:"-"`
}

type service struct {
	canvas      llm.Completer[Idea, Canvas]
	pivots      llm.Completer[pivotInput, PivotOptions]
	assumptions llm.Completer[assumptionsInput, Assumptions]
}

// NewService creates a Service backed by client.
func NewService(client llm.Client) Service {
	return &service{
		canvas: llm.MustFunction[Idea, Canvas](client, llm.FunctionSpec{
			Name:   "leancanvas_canvas",
			Task:   llm.TaskLeanCanvas,
			System: advisorSystemPrompt,
			Prompt: canvasPrompt,
			Schema: canvasSchema,
		}, nil),
		pivots: llm.MustFunction[pivotInput, PivotOptions](client, llm.FunctionSpec{
			Name:    "leancanvas_pivots",
			Task:    llm.TaskLeanCanvas,
			System:  advisorSystemPrompt,
			Prompt:  pivotPrompt,
			Schema:  pivotSchema,
			Context: true,
		}, validatePivots),
		assumptions: llm.MustFunction[assumptionsInput, Assumptions](client, llm.FunctionSpec{
			Name:    "leancanvas_riskiest_assumptions",
			Task:    llm.TaskLeanCanvas,
			System:  advisorSystemPrompt,
			Prompt:  assumptionsPrompt,
			Schema:  assumptionsSchema,
			Context: true,
		}, validateAssumptions),
	}
}

func (s *service) Canvas(ctx context.Context, idea Idea) (*Canvas, error) {
	out, err := s.canvas.Complete(ctx, idea)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Pivots(ctx context.Context, req PivotRequest) (*PivotOptions, error) {
	out, err := s.pivots.Complete(ctx, pivotInput{PivotRequest: req, Types: Pivots()})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) RiskiestAssumptions(ctx context.Context, c Canvas) (*Assumptions, error) {
	out, err := s.assumptions.Complete(ctx, assumptionsInput{Canvas: c, Blocks: Blocks()})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func validatePivots(p PivotOptions) error {
	for _, o := range p.Options {
		if _, ok := PivotBySlug(o.Type); !ok {
			return fmt.Errorf("unknown pivot type %q", o.Type)
		}
	}
	return nil
}

func validateAssumptions(a Assumptions) error {
	for _, as := range a.Assumptions {
		if _, ok := BlockByKey(string(as.Block)); !ok {
			return fmt.Errorf("unknown canvas block %q", as.Block)
		}
	}
	return nil
}

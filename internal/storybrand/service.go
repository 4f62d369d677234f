package storybrand

import (
	"context"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/llm"
)

// Business describes the company whose message is being clarified.
type Business struct {
	Name           string `json:"name"`
	Product        string `json:"product"`
	Customer       string `json:"customer"`
	Problem        string `json:"problem,omitempty"`
	Differentiator string `json:"differentiator,omitempty"`
}

// OneLiner is the three-part StoryBrand one-liner.
type OneLiner struct {
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
	Result   string `json:"result"`
}

// String joins the parts with FormatOneLiner.
func (o OneLiner) String() string {
	return FormatOneLiner(o.Problem, o.Solution, o.Result)
}

// Section is one block of a website wireframe.
type Section struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Content  string `json:"content"`
	CTA      string `json:"cta,omitempty"`
}

// Wireframe is a StoryBrand website outline.
type Wireframe struct {
	Sections []Section `json:"sections"`
}

// Service generates StoryBrand material with a language model.
type Service interface {
	BrandScript(ctx context.Context, b Business) (*BrandScript, error)
	OneLiner(ctx context.Context, b Business) (*OneLiner, error)
	Wireframe(ctx context.Context, script BrandScript) (*Wireframe, error)
}

type service struct {
	script    llm.Completer[Business, BrandScript]
	oneLiner  llm.Completer[Business, OneLiner]
	wireframe llm.Completer[BrandScript, Wireframe]
}

// NewService creates a Service backed by client.
func NewService(client llm.Client) Service {
	return &service{
		script: llm.MustFunction[Business, BrandScript](client, llm.FunctionSpec{
			Name:   "storybrand_brand_script",
			Task:   llm.TaskStoryBrand,
			System: guideSystemPrompt,
			Prompt: brandScriptPrompt,
			Schema: brandScriptSchema,
		}, nil),
		oneLiner: llm.MustFunction[Business, OneLiner](client, llm.FunctionSpec{
			Name:   "storybrand_one_liner",
			Task:   llm.TaskStoryBrand,
			System: guideSystemPrompt,
			Prompt: oneLinerPrompt,
			Schema: oneLinerSchema,
		}, nil),
		wireframe: llm.MustFunction[BrandScript, Wireframe](client, llm.FunctionSpec{
			Name:    "storybrand_wireframe",
			Task:    llm.TaskStoryBrand,
			System:  guideSystemPrompt,
			Prompt:  wireframePrompt,
			Schema:  wireframeSchema,
			Context: true,
		}, nil),
	}
}

func (s *service) BrandScript(ctx context.Context, b Business) (*BrandScript, error) {
	out, err := s.script.Complete(ctx, b)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) OneLiner(ctx context.Context, b Business) (*OneLiner, error) {
	out, err := s.oneLiner.Complete(ctx, b)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Wireframe(ctx context.Context, script BrandScript) (*Wireframe, error) {
	out, err := s.wireframe.Complete(ctx, script)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

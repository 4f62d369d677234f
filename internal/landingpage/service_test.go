package landingpage

import (
	"context"
	"testing"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLLMClient struct {
	response string
	err      error
	last     llm.GenerateRequest
}

func (m *mockLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "llama3.2"}, nil
}

func (m *mockLLMClient) Available(_ context.Context) bool { return m.err == nil }

var testProduct = Product{
	Name:        "PayNudge",
	Description: "automatic invoice reminders",
	Audience:    "freelance designers",
}

func TestHeadlines_ScoredAndSorted(t *testing.T) {
	client := &mockLLMClient{response: `{"headlines":[
		{"text":"Invoices","angle":"product"},
		{"text":"Get paid in 3 days with your free invoice tool","angle":"outcome"}
	]}`}

	set, err := NewService(client).Headlines(context.Background(), testProduct)

	require.NoError(t, err)
	require.Len(t, set.Headlines, 2)
	assert.Equal(t, "outcome", set.Headlines[0].Angle)
	assert.Equal(t, 100, set.Headlines[0].Analysis.Score)
	assert.Less(t, set.Headlines[1].Analysis.Score, 100)
	assert.Contains(t, client.last.UserPrompt, "Audience: freelance designers")
	assert.NotContains(t, client.last.UserPrompt, "Main benefit")
}

func TestHeadlines_TimeoutUnchanged(t *testing.T) {
	_, err := NewService(&mockLLMClient{err: llm.ErrTimeout}).Headlines(context.Background(), testProduct)
	assert.ErrorIs(t, err, llm.ErrTimeout)
}

func TestCritique_ListsFailedHeuristics(t *testing.T) {
	client := &mockLLMClient{response: `{"summary":"Images lack alt text.","fixes":[
		{"heuristic":"image-alt-text","problem":"1 image has no alt","suggestion":"Describe the dashboard","priority":"medium"}
	]}`}
	report := Audit(Page{H1: []string{"Get paid in 3 days with your free invoice tool"}, Images: 1, ImagesMissingAlt: 1})

	out, err := NewService(client).Critique(context.Background(), report)

	require.NoError(t, err)
	require.Len(t, out.Fixes, 1)
	assert.Contains(t, client.last.UserPrompt, "- image-alt-text: 1 of 1 images lack alt text")
	assert.Contains(t, client.last.UserPrompt, "- urgency-cue")
}

func TestCritique_UnknownHeuristic(t *testing.T) {
	client := &mockLLMClient{response: `{"summary":"s","fixes":[
		{"heuristic":"more-gradients","problem":"p","suggestion":"s","priority":"high"}
	]}`}

	_, err := NewService(client).Critique(context.Background(), AuditReport{})

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestExperiments_RankedByICE(t *testing.T) {
	client := &mockLLMClient{response: `{"experiments":[
		{"name":"testimonials","hypothesis":"If we add quotes, trust rises","impact":6,"confidence":7,"ease":8},
		{"name":"shorter form","hypothesis":"If we drop fields, sign-ups rise","impact":8,"confidence":8,"ease":9}
	]}`}

	plan, err := NewService(client).Experiments(context.Background(), testProduct)

	require.NoError(t, err)
	require.Len(t, plan.Experiments, 2)
	assert.Equal(t, "shorter form", plan.Experiments[0].Name)
	assert.Equal(t, 576.0, plan.Experiments[0].ICE)
	assert.Equal(t, 336.0, plan.Experiments[1].ICE)
	assert.Len(t, plan.Ideas(), 2)
}

func TestExperiments_OutOfRangeRejected(t *testing.T) {
	client := &mockLLMClient{response: `{"experiments":[
		{"name":"x","hypothesis":"h","impact":11,"confidence":7,"ease":8}
	]}`}

	_, err := NewService(client).Experiments(context.Background(), testProduct)

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

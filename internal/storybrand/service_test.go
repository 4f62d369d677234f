package storybrand

import (
	"context"
	"errors"
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

var testBusiness = Business{
	Name:     "HomeChef",
	Product:  "meal kits",
	Customer: "busy parents",
	Problem:  "no time to cook healthy dinners",
}

const validScript = `{
	"character": "Healthy family dinners",
	"problem": {"villain": "Takeout", "external": "No time", "internal": "Guilt", "philosophical": null},
	"guide": {"empathy": "We know weeknights are chaos", "authority": "20,000 families a week"},
	"plan": ["Pick recipes", "Get the box", "Cook"],
	"call_to_action": {"direct": "Start your box", "transitional": "Free recipes"},
	"failure": ["Frozen pizza again"],
	"success": ["Dinners everyone enjoys"],
	"extra": "ignored"
}`

func TestBrandScript_Valid(t *testing.T) {
	client := &mockLLMClient{response: "Here you go:\n" + validScript}

	script, err := NewService(client).BrandScript(context.Background(), testBusiness)

	require.NoError(t, err)
	assert.Equal(t, "Takeout", script.Problem.Villain)
	assert.Empty(t, script.Problem.Philosophical)
	assert.Empty(t, script.Missing())
	assert.Equal(t, llm.TaskStoryBrand, client.last.Task)
	assert.Contains(t, client.last.UserPrompt, "Problem they solve: no time to cook healthy dinners")
	assert.NotContains(t, client.last.UserPrompt, "What makes them different")
}

func TestBrandScript_MissingGuide(t *testing.T) {
	client := &mockLLMClient{response: `{
		"character": "x",
		"problem": {"external": "a", "internal": "b"},
		"plan": ["p"],
		"call_to_action": {"direct": "d"},
		"failure": ["f"],
		"success": ["s"]
	}`}

	_, err := NewService(client).BrandScript(context.Background(), testBusiness)

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestOneLiner(t *testing.T) {
	client := &mockLLMClient{response: `{"problem":"Weeknight dinners are stressful","solution":"HomeChef kits take 20 minutes","result":"Your family eats well"}`}

	out, err := NewService(client).OneLiner(context.Background(), testBusiness)

	require.NoError(t, err)
	assert.Equal(t, "Weeknight dinners are stressful. HomeChef kits take 20 minutes. Your family eats well.", out.String())
}

func TestOneLiner_ErrorUnchanged(t *testing.T) {
	rateLimited := errors.New("429 too many requests")

	_, err := NewService(&mockLLMClient{err: rateLimited}).OneLiner(context.Background(), testBusiness)

	assert.Same(t, rateLimited, err)
}

func TestWireframe_SendsScriptAsContext(t *testing.T) {
	client := &mockLLMClient{response: `{"sections":[
		{"name":"header","headline":"Dinner, solved","content":"","cta":"Start your box"},
		{"name":"stakes","headline":"","content":"No more frozen pizza"},
		{"name":"plan","headline":"Three steps","content":"Pick, get, cook"}
	]}`}
	script := BrandScript{Character: "Healthy family dinners"}

	wf, err := NewService(client).Wireframe(context.Background(), script)

	require.NoError(t, err)
	require.Len(t, wf.Sections, 3)
	assert.Equal(t, "Start your box", wf.Sections[0].CTA)
	assert.Contains(t, client.last.UserPrompt, `"character": "Healthy family dinners"`)
}

func TestWireframe_TooFewSections(t *testing.T) {
	client := &mockLLMClient{response: `{"sections":[{"name":"header","headline":"h","content":"c"}]}`}

	_, err := NewService(client).Wireframe(context.Background(), BrandScript{})

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

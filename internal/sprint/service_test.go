package sprint

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

var testChallenge = Challenge{
	Company:   "Blue Bottle Coffee",
	Product:   "online coffee subscription",
	Challenge: "new customers don't know which beans to pick",
	Customer:  "coffee novices",
}

func TestSprintQuestions_Valid(t *testing.T) {
	client := &mockLLMClient{response: `{
		"long_term_goal": "Every first-time buyer finds a coffee they love.",
		"questions": ["Can we build trust without a cafe?", "Will novices answer a quiz?"]
	}`}
	svc := NewService(client)

	out, err := svc.SprintQuestions(context.Background(), testChallenge)

	require.NoError(t, err)
	assert.Equal(t, "Every first-time buyer finds a coffee they love.", out.LongTermGoal)
	assert.Len(t, out.Questions, 2)
	assert.Equal(t, llm.TaskSprint, client.last.Task)
	assert.Contains(t, client.last.UserPrompt, "Blue Bottle Coffee")
	assert.Contains(t, client.last.UserPrompt, "Target customer: coffee novices")
}

func TestSprintQuestions_OmitsEmptyCustomer(t *testing.T) {
	client := &mockLLMClient{response: `{"long_term_goal":"g","questions":["q"]}`}
	c := testChallenge
	c.Customer = ""

	_, err := NewService(client).SprintQuestions(context.Background(), c)

	require.NoError(t, err)
	assert.NotContains(t, client.last.UserPrompt, "Target customer")
}

func TestSprintQuestions_ClientErrorPassesThrough(t *testing.T) {
	svc := NewService(&mockLLMClient{err: llm.ErrTimeout})

	_, err := svc.SprintQuestions(context.Background(), testChallenge)

	assert.ErrorIs(t, err, llm.ErrTimeout)
}

func TestSprintQuestions_MissingQuestions(t *testing.T) {
	svc := NewService(&mockLLMClient{response: `{"long_term_goal":"g","questions":[]}`})

	_, err := svc.SprintQuestions(context.Background(), testChallenge)

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestHowMightWe_Valid(t *testing.T) {
	svc := NewService(&mockLLMClient{response: "```json\n" + `{"notes":[
		{"theme":"trust","note":"How might we prove freshness online?"},
		{"theme":"choice","note":"how might we make picking beans fun?"}
	]}` + "\n```"})

	out, err := svc.HowMightWe(context.Background(), testChallenge)

	require.NoError(t, err)
	require.Len(t, out.Notes, 2)
	assert.Equal(t, "trust", out.Notes[0].Theme)
}

func TestHowMightWe_RejectsNonHMWNotes(t *testing.T) {
	svc := NewService(&mockLLMClient{response: `{"notes":[{"theme":"trust","note":"Add reviews"}]}`})

	_, err := svc.HowMightWe(context.Background(), testChallenge)

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
	assert.Contains(t, err.Error(), "How might we")
}

func TestInterviewScript_Valid(t *testing.T) {
	client := &mockLLMClient{response: `{"acts":[
		{"act":1,"name":"Friendly welcome","questions":["Thanks for coming"]},
		{"act":2,"name":"Context questions","questions":["How do you buy coffee today?"]},
		{"act":3,"name":"Introduce the prototypes","questions":["Think aloud"]},
		{"act":4,"name":"Tasks and nudges","questions":["Find a coffee you'd like"]},
		{"act":5,"name":"Quick debrief","questions":["What would you change?"]}
	]}`}

	out, err := NewService(client).InterviewScript(context.Background(), testChallenge)

	require.NoError(t, err)
	assert.Len(t, out.Acts, 5)
	assert.Contains(t, client.last.UserPrompt, "1. Friendly welcome (5 min)")
	assert.Contains(t, client.last.UserPrompt, "5. Quick debrief (5 min)")
}

func TestInterviewScript_WrongActCount(t *testing.T) {
	svc := NewService(&mockLLMClient{response: `{"acts":[
		{"act":1,"name":"Friendly welcome","questions":["Hi"]}
	]}`})

	_, err := svc.InterviewScript(context.Background(), testChallenge)

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

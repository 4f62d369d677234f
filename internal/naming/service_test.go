package naming

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

func TestNames_ScoredAndDeduplicated(t *testing.T) {
	client := &mockLLMClient{response: `{"names":[
		{"name":"Xkcdqz","style":"invented","rationale":"Unique"},
		{"name":"Nudgely","style":"Compound","rationale":"Says what it does"},
		{"name":"nudgely","style":"compound","rationale":"again"}
	]}`}

	set, err := NewService(client).Names(context.Background(), Brief{
		Description: "invoice reminders for freelancers",
		Industry:    "fintech",
	})

	require.NoError(t, err)
	require.Len(t, set.Names, 2)
	assert.Equal(t, "Nudgely", set.Names[0].Name)
	assert.Equal(t, "compound", set.Names[0].Style)
	assert.Equal(t, 100, set.Names[0].Score.Score)
	assert.Equal(t, "Xkcdqz", set.Names[1].Name)

	prompt := client.last.UserPrompt
	assert.Contains(t, prompt, "Suggest 10 startup names.")
	assert.Contains(t, prompt, "Industry roots: pay, coin, ledger")
	assert.Contains(t, prompt, "- portmanteau: Parts of two words blended")
	assert.NotContains(t, prompt, "Only use these styles")
	assert.Equal(t, llm.TaskNaming, client.last.Task)
}

func TestNames_BriefOptions(t *testing.T) {
	client := &mockLLMClient{response: `{"names":[{"name":"Kindle","style":"metaphor","rationale":"warm"}]}`}

	_, err := NewService(client).Names(context.Background(), Brief{
		Description: "a reading app",
		Industry:    "publishing",
		Keywords:    []string{"page", "story"},
		Styles:      []string{"invented", "metaphor"},
		Count:       3,
	})

	require.NoError(t, err)
	prompt := client.last.UserPrompt
	assert.Contains(t, prompt, "Suggest 3 startup names.")
	assert.Contains(t, prompt, "Words to draw on: page, story")
	assert.Contains(t, prompt, "Only use these styles: invented, metaphor")
	assert.NotContains(t, prompt, "Industry roots")
}

func TestNames_UnknownStyle(t *testing.T) {
	client := &mockLLMClient{response: `{"names":[{"name":"Zing","style":"onomatopoeia","rationale":"fun"}]}`}

	_, err := NewService(client).Names(context.Background(), Brief{Description: "x"})

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestNames_EmptyList(t *testing.T) {
	client := &mockLLMClient{response: `{"names":[]}`}

	_, err := NewService(client).Names(context.Background(), Brief{Description: "x"})

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestNames_ClientError(t *testing.T) {
	boom := errors.New("boom")
	client := &mockLLMClient{err: boom}

	_, err := NewService(client).Names(context.Background(), Brief{Description: "x"})

	assert.Same(t, boom, err)
}

package startupschool

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

var testSituation = Situation{
	Phase:       2,
	Description: "Two founders building scheduling software for dentists",
	Challenge:   "no one uses the beta",
}

func TestExplainConcept_KnownConcept(t *testing.T) {
	client := &mockLLMClient{response: `{
		"answer": "Users pull the product from you.",
		"examples": ["Dropbox's waitlist"],
		"lectures": ["how-to-find-product-market-fit", "made-up-lecture"]
	}`}

	out, err := NewService(client).ExplainConcept(context.Background(), ConceptQuestion{Concept: "product-market-fit"})

	require.NoError(t, err)
	assert.Equal(t, "Users pull the product from you.", out.Answer)
	require.Len(t, out.Lectures, 1)
	assert.Equal(t, "David Rusenko", out.Lectures[0].Speaker)
	assert.Contains(t, client.last.UserPrompt, "Curriculum definition: Being in a good market")
	assert.Contains(t, client.last.UserPrompt, "Related lectures: how-to-find-product-market-fit, how-to-talk-to-users")
	assert.Equal(t, llm.TaskStartupSchool, client.last.Task)
}

func TestExplainConcept_UnknownConcept(t *testing.T) {
	client := &mockLLMClient{response: `{"answer":"It means...","examples":[],"lectures":null}`}

	out, err := NewService(client).ExplainConcept(context.Background(), ConceptQuestion{Concept: "flywheel", Question: "is it real?"})

	require.NoError(t, err)
	assert.Empty(t, out.Lectures)
	assert.NotNil(t, out.Lectures)
	assert.NotContains(t, client.last.UserPrompt, "Curriculum definition")
	assert.Contains(t, client.last.UserPrompt, "Their question: is it real?")
}

func TestRecommendLectures_FiltersUnknownIDs(t *testing.T) {
	client := &mockLLMClient{response: `{"recommendations":[
		{"lecture_id":"how-to-talk-to-users","reason":"Find out why the beta is unused"},
		{"lecture_id":"growth-hacking-101","reason":"invented"},
		{"lecture_id":"how-to-talk-to-users","reason":"duplicate"},
		{"lecture_id":"how-to-build-an-mvp","reason":"Cut scope"}
	]}`}

	recs, err := NewService(client).RecommendLectures(context.Background(), testSituation)

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "how-to-talk-to-users", recs[0].Lecture.ID)
	assert.Equal(t, "Find out why the beta is unused", recs[0].Reason)
	assert.Equal(t, "how-to-build-an-mvp", recs[1].Lecture.ID)
	assert.Contains(t, client.last.UserPrompt, "- default-alive: Default Alive or Default Dead? (operations, phase 5)")
}

func TestRecommendLectures_NoneKnown(t *testing.T) {
	client := &mockLLMClient{response: `{"recommendations":[]}`}

	recs, err := NewService(client).RecommendLectures(context.Background(), testSituation)

	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestOfficeHours(t *testing.T) {
	client := &mockLLMClient{response: `{
		"diagnosis": "You built before talking to dentists.",
		"advice": ["Visit ten offices this week"],
		"primary_metric": "Weekly active offices",
		"next_steps": ["Book 10 visits"]
	}`}

	advice, err := NewService(client).OfficeHours(context.Background(), testSituation)

	require.NoError(t, err)
	assert.Equal(t, "Weekly active offices", advice.PrimaryMetric)
	assert.NotContains(t, client.last.UserPrompt, "Metrics:")
}

func TestOfficeHours_InvalidOutput(t *testing.T) {
	client := &mockLLMClient{response: "I'd love to help! Tell me more."}

	_, err := NewService(client).OfficeHours(context.Background(), testSituation)

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestService_PassesClientErrorsThrough(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrProviderUnavailable}
	svc := NewService(client)

	_, err := svc.ExplainConcept(context.Background(), ConceptQuestion{Concept: "mvp"})
	assert.ErrorIs(t, err, llm.ErrProviderUnavailable)

	_, err = svc.RecommendLectures(context.Background(), testSituation)
	assert.ErrorIs(t, err, llm.ErrProviderUnavailable)
}

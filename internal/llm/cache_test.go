package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachingClient_ReusesSuccessfulResponses(t *testing.T) {
	inner := &stubClient{response: `{"ok":true}`}
	client, err := NewCachingClient(inner, "llama3.2", 4)
	require.NoError(t, err)

	req := GenerateRequest{Task: TaskNaming, UserPrompt: "name a bakery"}
	first, err := client.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := client.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.Len(t, inner.requests, 1)
	assert.Equal(t, 1, client.Len())
}

func TestCachingClient_DistinctPromptsMiss(t *testing.T) {
	inner := &stubClient{response: "x"}
	client, err := NewCachingClient(inner, "llama3.2", 4)
	require.NoError(t, err)

	_, _ = client.Generate(context.Background(), GenerateRequest{Task: TaskNaming, UserPrompt: "a"})
	_, _ = client.Generate(context.Background(), GenerateRequest{Task: TaskNaming, UserPrompt: "b"})
	_, _ = client.Generate(context.Background(), GenerateRequest{Task: TaskSprint, UserPrompt: "a"})

	assert.Len(t, inner.requests, 3)
}

func TestCachingClient_ErrorsNotCached(t *testing.T) {
	inner := &stubClient{err: ErrProviderUnavailable}
	client, err := NewCachingClient(inner, "llama3.2", 4)
	require.NoError(t, err)

	req := GenerateRequest{Task: TaskNaming, UserPrompt: "a"}
	_, err = client.Generate(context.Background(), req)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
	_, err = client.Generate(context.Background(), req)
	assert.ErrorIs(t, err, ErrProviderUnavailable)

	assert.Len(t, inner.requests, 2)
	assert.Equal(t, 0, client.Len())
}

func TestNewCachingClient_InvalidSize(t *testing.T) {
	_, err := NewCachingClient(&stubClient{}, "m", 0)
	assert.Error(t, err)
}

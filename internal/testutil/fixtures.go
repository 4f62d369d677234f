package testutil

import (
	"encoding/json"
	"time"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
	"github.com/google/uuid"
)

// ArtifactOption customizes a test artifact.
type ArtifactOption func(*domain.Artifact)

func WithKind(kind string) ArtifactOption {
	return func(a *domain.Artifact) {
		a.Kind = kind
	}
}

func WithOutput(v any) ArtifactOption {
	return func(a *domain.Artifact) {
		a.Output = mustJSON(v)
	}
}

func WithInput(v any) ArtifactOption {
	return func(a *domain.Artifact) {
		a.Input = mustJSON(v)
	}
}

func WithCreatedAt(t time.Time) ArtifactOption {
	return func(a *domain.Artifact) {
		a.CreatedAt = t
	}
}

func WithKitID(id string) ArtifactOption {
	return func(a *domain.Artifact) {
		a.KitID = id
	}
}

// NewTestArtifact builds an artifact for fw with a small JSON payload.
func NewTestArtifact(fw domain.Framework, opts ...ArtifactOption) *domain.Artifact {
	a := &domain.Artifact{
		ID:        uuid.New().String(),
		Framework: fw,
		Kind:      "test",
		Input:     json.RawMessage(`{"name":"PayNudge"}`),
		Output:    json.RawMessage(`{"ok":true}`),
		Model:     "llama3.2",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func mustJSON(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

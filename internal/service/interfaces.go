package service

import (
	"context"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
)

// Generation is one generator call to record.
type Generation struct {
	Framework domain.Framework
	Kind      string
	Input     any
	Output    any
}

// GenerationRecorder persists generator outputs as artifacts.
type GenerationRecorder interface {
	Record(ctx context.Context, framework domain.Framework, kind string, input, output any) (*domain.Artifact, error)
	// RecordKit stores gens atomically under one new kit ID.
	RecordKit(ctx context.Context, gens []Generation) ([]*domain.Artifact, error)
}

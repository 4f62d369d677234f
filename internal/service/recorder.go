package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/db"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/repository"
	"github.com/google/uuid"
)

type generationRecorder struct {
	uow      db.UnitOfWork
	model    string
	observer UseCaseObserver
}

// NewGenerationRecorder creates a GenerationRecorder that stamps artifacts
// with model.
func NewGenerationRecorder(uow db.UnitOfWork, model string, observers ...UseCaseObserver) GenerationRecorder {
	return &generationRecorder{
		uow:      uow,
		model:    model,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (r *generationRecorder) Record(ctx context.Context, framework domain.Framework, kind string, input, output any) (artifact *domain.Artifact, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		r.observe(ctx, "record-artifact", startedAt, err, map[string]any{
			"framework": string(framework),
			"kind":      kind,
		})
	}()

	artifact, err = r.build(Generation{Framework: framework, Kind: kind, Input: input, Output: output}, "", startedAt)
	if err != nil {
		return nil, err
	}
	err = r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteArtifactRepo(tx).Create(ctx, artifact)
	})
	if err != nil {
		return nil, err
	}
	return artifact, nil
}

func (r *generationRecorder) RecordKit(ctx context.Context, gens []Generation) (artifacts []*domain.Artifact, err error) {
	startedAt := time.Now().UTC()
	kitID := uuid.New().String()
	defer func() {
		r.observe(ctx, "record-kit", startedAt, err, map[string]any{
			"kit_id":    kitID,
			"artifacts": len(gens),
		})
	}()

	artifacts = make([]*domain.Artifact, 0, len(gens))
	for _, g := range gens {
		a, buildErr := r.build(g, kitID, startedAt)
		if buildErr != nil {
			return nil, buildErr
		}
		artifacts = append(artifacts, a)
	}

	err = r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteArtifactRepo(tx)
		for _, a := range artifacts {
			if err := repo.Create(ctx, a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

func (r *generationRecorder) build(g Generation, kitID string, at time.Time) (*domain.Artifact, error) {
	if _, ok := domain.ParseFramework(string(g.Framework)); !ok {
		return nil, fmt.Errorf("unknown framework %q", g.Framework)
	}
	input, err := json.Marshal(g.Input)
	if err != nil {
		return nil, fmt.Errorf("encoding %s %s input: %w", g.Framework, g.Kind, err)
	}
	output, err := json.Marshal(g.Output)
	if err != nil {
		return nil, fmt.Errorf("encoding %s %s output: %w", g.Framework, g.Kind, err)
	}
	return &domain.Artifact{
		ID:        uuid.New().String(),
		Framework: g.Framework,
		Kind:      g.Kind,
		Input:     input,
		Output:    output,
		Model:     r.model,
		KitID:     kitID,
		CreatedAt: at,
	}, nil
}

func (r *generationRecorder) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	r.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

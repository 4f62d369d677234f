package repository

import (
	"context"
	"errors"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ArtifactFilter narrows List. Zero values match everything; Limit <= 0
// means no limit.
type ArtifactFilter struct {
	Framework domain.Framework
	KitID     string
	Limit     int
}

type ArtifactRepo interface {
	Create(ctx context.Context, a *domain.Artifact) error
	GetByID(ctx context.Context, id string) (*domain.Artifact, error)
	// List returns matching artifacts, newest first.
	List(ctx context.Context, f ArtifactFilter) ([]*domain.Artifact, error)
	Delete(ctx context.Context, id string) error
}

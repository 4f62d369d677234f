package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/db"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
	"github.com/google/uuid"
)

const artifactColumns = `id, framework, kind, input, output, model, kit_id, created_at`

// SQLiteArtifactRepo implements ArtifactRepo on SQLite. It accepts a
// db.DBTX so it works inside a unit of work as well as on the bare handle.
type SQLiteArtifactRepo struct {
	db db.DBTX
}

// NewSQLiteArtifactRepo creates a new SQLiteArtifactRepo.
func NewSQLiteArtifactRepo(db db.DBTX) *SQLiteArtifactRepo {
	return &SQLiteArtifactRepo{db: db}
}

// Create inserts a. An empty ID is filled with a new UUID and a zero
// CreatedAt with the current time.
func (r *SQLiteArtifactRepo) Create(ctx context.Context, a *domain.Artifact) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	a.CreatedAt = a.CreatedAt.UTC()

	if !json.Valid(a.Output) {
		return fmt.Errorf("artifact %s: output is not valid JSON", a.ID)
	}
	input := rawOrNull(a.Input)
	if !json.Valid([]byte(input)) {
		return fmt.Errorf("artifact %s: input is not valid JSON", a.ID)
	}

	query := `INSERT INTO artifacts (` + artifactColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		string(a.Framework),
		a.Kind,
		input,
		string(a.Output),
		a.Model,
		nullableString(a.KitID),
		formatTime(a.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting artifact: %w", err)
	}
	return nil
}

func (r *SQLiteArtifactRepo) GetByID(ctx context.Context, id string) (*domain.Artifact, error) {
	query := `SELECT ` + artifactColumns + ` FROM artifacts WHERE id = ?`
	a, err := scanArtifact(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("artifact %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning artifact: %w", err)
	}
	return a, nil
}

func (r *SQLiteArtifactRepo) List(ctx context.Context, f ArtifactFilter) ([]*domain.Artifact, error) {
	var where []string
	var args []any
	if f.Framework != "" {
		where = append(where, "framework = ?")
		args = append(args, string(f.Framework))
	}
	if f.KitID != "" {
		where = append(where, "kit_id = ?")
		args = append(args, f.KitID)
	}

	query := `SELECT ` + artifactColumns + ` FROM artifacts`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, rowid DESC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing artifacts: %w", err)
	}
	defer rows.Close()

	artifacts := []*domain.Artifact{}
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning artifact row: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating artifacts: %w", err)
	}
	return artifacts, nil
}

// Delete removes the artifact with id, or returns ErrNotFound.
func (r *SQLiteArtifactRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM artifacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting artifact: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting artifact: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("artifact %s: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArtifact(s scanner) (*domain.Artifact, error) {
	var a domain.Artifact
	var framework, input, output, createdAt string
	var kitID sql.NullString

	if err := s.Scan(&a.ID, &framework, &a.Kind, &input, &output, &a.Model, &kitID, &createdAt); err != nil {
		return nil, err
	}

	created, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	a.Framework = domain.Framework(framework)
	a.Input = json.RawMessage(input)
	a.Output = json.RawMessage(output)
	a.KitID = stringOrEmpty(kitID)
	a.CreatedAt = created
	return &a, nil
}

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateArtifactsFrameworks(db); err != nil {
		return fmt.Errorf("migrating artifacts framework constraint: %w", err)
	}
	return nil
}

// frameworkCheck is the CHECK clause for artifacts.framework. A table whose
// stored definition lacks one of these values is rebuilt.
const frameworkCheck = `CHECK(framework IN ('sprint','storybrand','leancanvas','landingpage','startupschool','naming','launchkit'))`

var frameworkNames = []string{"sprint", "storybrand", "leancanvas", "landingpage", "startupschool", "naming", "launchkit"}

// migrateArtifactsFrameworks rebuilds the artifacts table when it was
// created before every framework could be recorded.
func migrateArtifactsFrameworks(db *sql.DB) error {
	ctx := context.Background()
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquiring db connection: %w", err)
	}
	defer conn.Close()

	var createSQL string
	if err := conn.QueryRowContext(ctx, `SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'artifacts'`).Scan(&createSQL); err != nil {
		return fmt.Errorf("loading artifacts schema: %w", err)
	}
	current := true
	for _, name := range frameworkNames {
		if !strings.Contains(createSQL, "'"+name+"'") {
			current = false
			break
		}
	}
	if current {
		return nil
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting migration transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS artifacts_new`); err != nil {
		return fmt.Errorf("dropping stale artifacts_new: %w", err)
	}
	if _, err := tx.ExecContext(ctx, strings.Replace(createArtifacts, "IF NOT EXISTS artifacts", "artifacts_new", 1)); err != nil {
		return fmt.Errorf("creating artifacts_new: %w", err)
	}
	for _, col := range []string{
		`ALTER TABLE artifacts_new ADD COLUMN model TEXT NOT NULL DEFAULT ''`,
		`ALTER TABLE artifacts_new ADD COLUMN kit_id TEXT`,
	} {
		if _, err := tx.ExecContext(ctx, col); err != nil {
			return fmt.Errorf("adding artifacts_new column: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO artifacts_new (
		id, framework, kind, input, output, created_at, model, kit_id
	) SELECT
		id, framework, kind, input, output, created_at, model, kit_id
	FROM artifacts`); err != nil {
		return fmt.Errorf("copying artifacts data: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DROP TABLE artifacts`); err != nil {
		return fmt.Errorf("dropping old artifacts: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `ALTER TABLE artifacts_new RENAME TO artifacts`); err != nil {
		return fmt.Errorf("renaming artifacts_new: %w", err)
	}
	for _, idx := range artifactIndexes {
		if _, err := tx.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("recreating artifacts index: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing artifacts migration: %w", err)
	}
	committed = true
	return nil
}

const createArtifacts = `CREATE TABLE IF NOT EXISTS artifacts (
		id         TEXT PRIMARY KEY,
		framework  TEXT NOT NULL
		           ` + frameworkCheck + `,
		kind       TEXT NOT NULL,
		input      TEXT NOT NULL DEFAULT 'null',
		output     TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`

var artifactIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_artifacts_framework ON artifacts(framework)`,
	`CREATE INDEX IF NOT EXISTS idx_artifacts_created ON artifacts(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_artifacts_kit ON artifacts(kit_id) WHERE kit_id IS NOT NULL`,
}

var migrations = []string{
	createArtifacts,

	`CREATE INDEX IF NOT EXISTS idx_artifacts_framework ON artifacts(framework)`,
	`CREATE INDEX IF NOT EXISTS idx_artifacts_created ON artifacts(created_at)`,

	// Model that produced the artifact
	`ALTER TABLE artifacts ADD COLUMN model TEXT NOT NULL DEFAULT ''`,

	// Launch kit grouping
	`ALTER TABLE artifacts ADD COLUMN kit_id TEXT`,
	`CREATE INDEX IF NOT EXISTS idx_artifacts_kit ON artifacts(kit_id) WHERE kit_id IS NOT NULL`,
}

package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/db"
)

// NewTestDB opens a migrated in-memory history database, closed when the
// test completes. The pool is a single connection.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, ":memory:")
}

// NewFileTestDB opens a migrated history database in a temp directory.
// Every pooled connection sees the same data, so concurrent writers really
// contend for the SQLite write lock.
func NewFileTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, filepath.Join(t.TempDir(), "history.db"))
}

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

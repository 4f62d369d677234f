package db_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pragmaInt(t *testing.T, conn *sql.Conn, name string) int {
	t.Helper()
	var v int
	require.NoError(t, conn.QueryRowContext(context.Background(), "PRAGMA "+name).Scan(&v))
	return v
}

func TestOpenDB_PragmasOnEveryConnection(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()

	// Both handles stay open, so the pool has to hand out two connections.
	first, err := database.Conn(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := database.Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	for i, conn := range []*sql.Conn{first, second} {
		assert.Equal(t, 5000, pragmaInt(t, conn, "busy_timeout"), "conn %d", i+1)
		assert.Equal(t, 1, pragmaInt(t, conn, "foreign_keys"), "conn %d", i+1)

		var mode string
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
		assert.Equal(t, "wal", mode, "conn %d", i+1)
	}
}

func TestOpenDB_MemoryIsMigrated(t *testing.T) {
	database := testutil.NewTestDB(t)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM artifacts`).Scan(&n))
	assert.Zero(t, n)
}

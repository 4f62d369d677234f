package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/db"
)

// FailOnNthExecUoW runs a real SQLiteUnitOfWork transaction but fails the
// Nth ExecContext inside it with Err. RecordKit tests use it to break a kit
// partway through and check that no artifact of the kit survives.
//
// ExecContext calls are counted from 1. Reads are not counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failOnNthExec{DBTX: tx, failOn: u.FailOn, err: u.Err})
	})
}

type failOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.count.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

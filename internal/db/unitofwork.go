package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
)

// UnitOfWork runs fn inside one write transaction. Repositories built from
// the DBTX passed to fn share that transaction.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

// SQLiteUnitOfWork starts every transaction with BEGIN IMMEDIATE, so the
// write lock is held before fn reads anything. Concurrent recorders queue on
// busy_timeout instead of failing with SQLITE_BUSY on the read-to-write
// upgrade.
type SQLiteUnitOfWork struct {
	db *sql.DB
}

// NewSQLiteUnitOfWork creates a UnitOfWork backed by the given *sql.DB.
func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db}
}

func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	conn, err := u.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquiring connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "BEGIN IMMEDIATE"); err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = rollback(ctx, conn)
			panic(p)
		}
	}()

	if err := fn(ctx, conn); err != nil {
		if rbErr := rollback(ctx, conn); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
		_ = rollback(ctx, conn)
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// rollback ends the open transaction on conn even when ctx is already
// cancelled. A connection that cannot roll back is dropped from the pool
// so a half-open transaction never leaks to the next caller.
func rollback(ctx context.Context, conn *sql.Conn) error {
	_, err := conn.ExecContext(context.WithoutCancel(ctx), "ROLLBACK")
	if err != nil {
		_ = conn.Raw(func(any) error { return driver.ErrBadConn })
	}
	return err
}

package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExecutor struct {
	name string
}

func (s *stubExecutor) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (s *stubExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (s *stubExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (s *stubExecutor) Commit() error   { return nil }
func (s *stubExecutor) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	db := &stubExecutor{name: "db"}
	tx := &stubExecutor{name: "tx"}

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, tx, GetExecutor(txCtx, db))
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM spaces"))
	assert.Equal(t, "insert", operation("  INSERT INTO bookings (...)"))
	assert.Equal(t, "unknown", operation(""))
}

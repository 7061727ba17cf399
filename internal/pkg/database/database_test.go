package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *DB {
	t.Helper()
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func TestRebind(t *testing.T) {
	pg := &DB{Dialect: DialectPostgres}
	lite := &DB{Dialect: DialectSQLite}
	query := "SELECT id FROM employees WHERE email = ? AND name = ?"

	assert.Equal(t, "SELECT id FROM employees WHERE email = $1 AND name = $2", pg.Rebind(query))
	assert.Equal(t, query, lite.Rebind(query))
}

func TestMigrate_IsRepeatable(t *testing.T) {
	db := newTestSQLite(t)
	require.NoError(t, Migrate(db))

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('employees', 'admin', 'attendance')`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestClassify_SQLiteConstraints(t *testing.T) {
	ctx := context.Background()
	db := newTestSQLite(t)

	_, err := db.ExecContext(ctx, `INSERT INTO employees (name, position, email) VALUES ('Ann', 'Engineer', 'ann@x.com')`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO employees (name, position, email) VALUES ('Bo', 'QA', 'ann@x.com')`)
	require.Error(t, err)
	classified := Classify(err)
	assert.ErrorIs(t, classified, ErrConstraintViolation)
	assert.True(t, IsUniqueViolation(classified))

	_, err = db.ExecContext(ctx, `INSERT INTO attendance (employee_id, date, status) VALUES (999, '2024-01-10', 'Present')`)
	require.Error(t, err)
	assert.ErrorIs(t, Classify(err), ErrForeignKeyViolation)

	_, err = db.ExecContext(ctx, `INSERT INTO attendance (employee_id, date, status) VALUES (1, '2024-01-10', 'Late')`)
	require.Error(t, err)
	classified = Classify(err)
	assert.ErrorIs(t, classified, ErrConstraintViolation)
	assert.False(t, IsUniqueViolation(classified))
}

func TestClassify_Passthrough(t *testing.T) {
	assert.NoError(t, Classify(nil))
	assert.ErrorIs(t, Classify(sql.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, Classify(errors.New("disk I/O error")), ErrStoreUnavailable)

	already := Classify(sql.ErrNoRows)
	assert.Same(t, already, Classify(already))
}

func TestCascadeDelete_RemovesAttendance(t *testing.T) {
	ctx := context.Background()
	db := newTestSQLite(t)

	res, err := db.ExecContext(ctx, `INSERT INTO employees (name, position, email) VALUES ('Ann', 'Engineer', 'ann@x.com')`)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO attendance (employee_id, date, status) VALUES (?, '2024-01-10', 'Present')`, id)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	require.NoError(t, err)

	var remaining int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM attendance`).Scan(&remaining))
	assert.Zero(t, remaining)
}

// Package sqlstoretest opens migrated stores for tests in other packages.
package sqlstoretest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// NewSQLiteDB opens a migrated SQLite file in the test's temp dir. The
// handle is closed when the test ends.
func NewSQLiteDB(t testing.TB) *database.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "attendance_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

// NewPostgresDB connects to dsn, migrates and empties every table.
func NewPostgresDB(t testing.TB, dsn string) *database.DB {
	t.Helper()
	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	_, err = db.ExecContext(context.Background(), "TRUNCATE TABLE attendance, employees, admin RESTART IDENTITY CASCADE")
	require.NoError(t, err)
	return db
}

// PostgresDSN returns TEST_DATABASE_URL, or "" when PostgreSQL tests should be skipped.
func PostgresDSN() string {
	return os.Getenv("TEST_DATABASE_URL")
}

// CountRows runs a COUNT query written with ? placeholders.
func CountRows(t testing.TB, db *database.DB, query string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.QueryRowContext(context.Background(), db.Rebind(query), args...).Scan(&n))
	return n
}

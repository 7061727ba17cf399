package sqlstore_test

import (
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/sqlstore/sqlstoretest"
)

// forEachStore runs fn against a fresh SQLite file and, when
// TEST_DATABASE_URL is set, against a truncated PostgreSQL database.
func forEachStore(t *testing.T, fn func(t *testing.T, db *database.DB)) {
	t.Run("sqlite", func(t *testing.T) {
		fn(t, sqlstoretest.NewSQLiteDB(t))
	})

	dsn := sqlstoretest.PostgresDSN()
	t.Run("postgres", func(t *testing.T) {
		if dsn == "" {
			t.Skip("TEST_DATABASE_URL not set")
		}
		fn(t, sqlstoretest.NewPostgresDB(t, dsn))
	})
}

func countRows(t *testing.T, db *database.DB, query string, args ...any) int64 {
	t.Helper()
	return sqlstoretest.CountRows(t, db, query, args...)
}

package database

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// Migrate applies every pending migration for the handle's dialect.
// The underlying *sql.DB stays open; the migrate instance is not closed
// because its drivers would close the shared handle.
func Migrate(db *DB) error {
	var (
		dir    string
		name   string
		driver migratedb.Driver
		err    error
	)

	switch db.Dialect {
	case DialectSQLite:
		dir, name = "migrations/sqlite", "sqlite3"
		driver, err = migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	case DialectPostgres:
		dir, name = "migrations/postgres", "pgx5"
		driver, err = migratepgx.WithInstance(db.DB, &migratepgx.Config{})
	default:
		return fmt.Errorf("unsupported dialect %q", db.Dialect)
	}
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, name, driver)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("schema is dirty at version %d", version)
	}
	slog.Debug("Database migrations applied", "dialect", string(db.Dialect), "version", version)

	return nil
}

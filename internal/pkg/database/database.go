package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "pgx"
)

type DB struct {
	*sql.DB
	Dialect Dialect
}

// NewSQLiteDB opens the embedded store at path. Foreign keys are enforced on
// every connection so ON DELETE CASCADE is honored.
func NewSQLiteDB(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate", path)
	db, err := sql.Open(string(DialectSQLite), dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	var fk int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		db.Close()
		return nil, fmt.Errorf("read foreign_keys pragma: %w", err)
	}
	if fk != 1 {
		db.Close()
		return nil, fmt.Errorf("sqlite foreign key enforcement is disabled")
	}

	return &DB{DB: db, Dialect: DialectSQLite}, nil
}

func NewPostgreSQLDB(dsn string) (*DB, error) {
	db, err := sql.Open(string(DialectPostgres), dsn)
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{DB: db, Dialect: DialectPostgres}, nil
}

func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.DB.BeginTx(ctx, nil)
}

// Rebind rewrites ? placeholders into the dialect's bind syntax.
// Queries must not contain a literal question mark.
func (db *DB) Rebind(query string) string {
	if db.Dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

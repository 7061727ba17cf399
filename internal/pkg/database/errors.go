package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrStoreUnavailable    = errors.New("store unavailable")
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// Classify wraps a driver error with the matching sentinel so callers can use
// errors.Is without knowing which store is behind the handle.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConstraintViolation) ||
		errors.Is(err, ErrForeignKeyViolation) || errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code == sqlite3.ErrConstraint {
			if sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
				return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
			}
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		case pgUniqueViolation, pgCheckViolation, pgNotNullViolation:
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}
	}

	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

// IsUniqueViolation reports whether err came from a uniqueness rule.
func IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}

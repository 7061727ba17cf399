package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type txKey struct{}

// WithTransaction executes fn inside a database transaction. Repositories
// called with txCtx run on the same transaction.
func WithTransaction(ctx context.Context, db *database.DB, fn func(txCtx context.Context) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return database.Classify(fmt.Errorf("begin transaction: %w", err))
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	// Execute function
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return database.Classify(fmt.Errorf("commit transaction: %w", err))
	}

	return nil
}

// GetQuerier returns either transaction or pool
// Used in repositories to support both transactional and non-transactional operations
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}

package auth

import "context"

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (Admin, error)
	// CreateIfEmpty inserts the credential only when the table has no rows,
	// as one statement. It reports whether a row was inserted.
	CreateIfEmpty(ctx context.Context, username, password string) (bool, error)
}

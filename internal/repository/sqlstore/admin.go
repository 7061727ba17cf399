package sqlstore

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type adminRepositoryImpl struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) auth.AdminRepository {
	return &adminRepositoryImpl{db: db}
}

// GetByUsername implements auth.AdminRepository.
func (r *adminRepositoryImpl) GetByUsername(ctx context.Context, username string) (auth.Admin, error) {
	q := GetQuerier(ctx, r.db)

	var admin auth.Admin
	err := q.QueryRowContext(ctx, r.db.Rebind(`SELECT id, username, password FROM admin WHERE username = ?`), username).
		Scan(&admin.ID, &admin.Username, &admin.Password)
	if err != nil {
		return auth.Admin{}, fmt.Errorf("failed to get admin by username: %w", database.Classify(err))
	}

	return admin, nil
}

// CreateIfEmpty implements auth.AdminRepository.
func (r *adminRepositoryImpl) CreateIfEmpty(ctx context.Context, username, password string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO admin (username, password)
		SELECT ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM admin)
	`

	result, err := q.ExecContext(ctx, r.db.Rebind(query), username, password)
	if err != nil {
		return false, fmt.Errorf("failed to seed admin: %w", database.Classify(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", database.Classify(err))
	}

	return rowsAffected > 0, nil
}

package sqlstore

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (employee_id, date, status)
		VALUES (?, ?, ?)
		ON CONFLICT (employee_id, date) DO UPDATE SET status = excluded.status
		RETURNING attendance_id, employee_id, date, status
	`

	var saved attendance.Record
	err := q.QueryRowContext(ctx, a.db.Rebind(query),
		record.EmployeeID,
		record.Date,
		string(record.Status),
	).Scan(&saved.ID, &saved.EmployeeID, &saved.Date, &saved.Status)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to mark attendance: %w", database.Classify(err))
	}

	return saved, nil
}

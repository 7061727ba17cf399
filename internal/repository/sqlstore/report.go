package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// GetDailyAttendance left-joins every employee against the day's attendance.
// The scalar subquery yields at most one status per employee, so an employee
// can never appear twice even if the pair were ever duplicated.
func (r *reportRepositoryImpl) GetDailyAttendance(ctx context.Context, date string) ([]report.DailyAttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			e.id,
			e.name,
			(
				SELECT a.status
				FROM attendance a
				WHERE a.employee_id = e.id AND a.date = ?
				ORDER BY a.attendance_id DESC
				LIMIT 1
			) AS status
		FROM employees e
		ORDER BY e.id ASC
	`

	rows, err := q.QueryContext(ctx, r.db.Rebind(query), date)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily attendance: %w", database.Classify(err))
	}
	defer rows.Close()

	result := []report.DailyAttendanceRow{}
	for rows.Next() {
		var row report.DailyAttendanceRow
		var status sql.NullString
		if err := rows.Scan(&row.EmployeeID, &row.EmployeeName, &status); err != nil {
			return nil, fmt.Errorf("failed to scan daily attendance: %w", database.Classify(err))
		}
		row.Status = status.String
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", database.Classify(err))
	}

	return result, nil
}

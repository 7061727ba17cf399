package report

import "context"

type ReportRepository interface {
	// GetDailyAttendance returns one row per employee, in employee ID order.
	// Status is empty for employees with no record on date.
	GetDailyAttendance(ctx context.Context, date string) ([]DailyAttendanceRow, error)
}

package attendance

import "context"

type AttendanceService interface {
	// MarkAttendance records the status for an employee on a date, defaulting
	// the date to today. Re-marking the same day overwrites the status.
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
}

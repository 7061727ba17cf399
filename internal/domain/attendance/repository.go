package attendance

import "context"

type AttendanceRepository interface {
	// Upsert inserts the record or, when one exists for the same employee
	// and date, overwrites its status in a single statement.
	Upsert(ctx context.Context, record Record) (Record, error)
}

package attendance

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

// Attendance domain errors
var (
	ErrEmployeeNotFound = fmt.Errorf("cannot mark attendance for unknown employee: %w", database.ErrForeignKeyViolation)
)

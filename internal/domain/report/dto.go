package report

import (
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// StatusNotMarked is reported for employees without an attendance record on the date.
const StatusNotMarked = "Not Marked"

// ========================================
// DAILY ATTENDANCE REPORT
// ========================================

type DailyAttendanceReportRequest struct {
	Date string `json:"date"`
}

func (r *DailyAttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Date = strings.TrimSpace(r.Date)
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyAttendanceReport struct {
	Date        string `json:"date"`
	GeneratedAt string `json:"generated_at"`

	Summary DailyAttendanceSummary `json:"summary"`
	Rows    []DailyAttendanceRow   `json:"rows"`
}

type DailyAttendanceRow struct {
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Status       string `json:"status"`
}

type DailyAttendanceSummary struct {
	TotalEmployees int `json:"total_employees"`
	Present        int `json:"present"`
	Absent         int `json:"absent"`
	OnLeave        int `json:"on_leave"`
	NotMarked      int `json:"not_marked"`
}

// ReportFile is a rendered report ready to be served as a download.
type ReportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

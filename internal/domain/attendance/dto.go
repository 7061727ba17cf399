package attendance

import (
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type MarkAttendanceRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date,omitempty"`
	Status     Status `json:"status"`
}

// Validate expects Date to be filled already; the service defaults it.
func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Date = strings.TrimSpace(r.Date)

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive integer",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Absent, On Leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
}

func ToResponse(r Record) AttendanceResponse {
	return AttendanceResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		Status:     r.Status,
	}
}

package employee

import (
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
}

// Validate trims every field in place and checks it.
func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	r.Position = strings.TrimSpace(r.Position)
	r.Email = strings.TrimSpace(r.Email)

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	} else if len(r.Position) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if len(r.Email) > 254 {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must not exceed 254 characters",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
}

type OptionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type DeleteEmployeeResponse struct {
	ID                int64 `json:"id"`
	Deleted           bool  `json:"deleted"`
	AttendanceRemoved int64 `json:"attendance_removed"`
}

type ImportEmployeesResponse struct {
	Added   []EmployeeResponse `json:"added"`
	Skipped []ImportRowError   `json:"skipped"`
}

// ImportRowError describes a spreadsheet row that was not imported.
// Row is 1-based, matching what a spreadsheet program shows.
type ImportRowError struct {
	Row    int    `json:"row"`
	Email  string `json:"email,omitempty"`
	Reason string `json:"reason"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID,
		Name:     e.Name,
		Position: e.Position,
		Email:    e.Email,
	}
}

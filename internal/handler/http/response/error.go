package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrImportNoData),
		errors.Is(err, employee.ErrImportBadHeader),
		errors.Is(err, employee.ErrImportTooManyRows):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Store errors not claimed by a domain
	case errors.Is(err, database.ErrStoreUnavailable):
		ServiceUnavailable(w, "Store is unavailable, try again")
	case errors.Is(err, database.ErrForeignKeyViolation),
		errors.Is(err, database.ErrConstraintViolation):
		Conflict(w, "Request conflicts with stored data")
	case errors.Is(err, database.ErrNotFound):
		NotFound(w, "Record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

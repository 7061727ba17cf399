package employee

import (
	"context"
	"io"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee registers a new employee; the store assigns the ID.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the employee together with its attendance history.
	// Deleting an unknown ID is not an error; Deleted is false.
	DeleteEmployee(ctx context.Context, id int64) (DeleteEmployeeResponse, error)

	// ListEmployees returns every employee in ascending ID order.
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// ListEmployeeOptions returns the (id, name) projection in the same order.
	ListEmployeeOptions(ctx context.Context) ([]OptionResponse, error)

	// ImportEmployees adds one employee per data row of the first sheet of an XLSX workbook.
	ImportEmployees(ctx context.Context, workbook io.Reader) (ImportEmployeesResponse, error)
}

package employee

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/sqlstore"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.create(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:     req.Name,
		Position: req.Position,
		Email:    req.Email,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return employee.Employee{}, fmt.Errorf("%w: %s", employee.ErrEmailExists, req.Email)
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) (employee.DeleteEmployeeResponse, error) {
	if id <= 0 {
		return employee.DeleteEmployeeResponse{}, validator.ValidationErrors{{
			Field:   "id",
			Message: employee.ErrInvalidEmployeeID.Error(),
		}}
	}

	response := employee.DeleteEmployeeResponse{ID: id}
	err := sqlstore.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		removed, err := s.employeeRepo.CountAttendance(txCtx, id)
		if err != nil {
			return err
		}

		deleted, err := s.employeeRepo.Delete(txCtx, id)
		if err != nil {
			return err
		}

		response.Deleted = deleted
		if deleted {
			response.AttendanceRemoved = removed
		}
		return nil
	})
	if err != nil {
		return employee.DeleteEmployeeResponse{}, fmt.Errorf("failed to delete employee %d: %w", id, err)
	}

	return response, nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// ListEmployeeOptions implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployeeOptions(ctx context.Context) ([]employee.OptionResponse, error) {
	options, err := s.employeeRepo.ListOptions(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.OptionResponse, 0, len(options))
	for _, o := range options {
		responses = append(responses, employee.OptionResponse{ID: o.ID, Name: o.Name})
	}
	return responses, nil
}

// importRow is one parsed data row; Row is the 1-based sheet row number.
type importRow struct {
	Row int
	employee.CreateEmployeeRequest
}

// ImportEmployees implements employee.EmployeeService. Each row is added on
// its own; a rejected row is reported and does not stop the import.
func (s *EmployeeServiceImpl) ImportEmployees(ctx context.Context, workbook io.Reader) (employee.ImportEmployeesResponse, error) {
	rows, err := parseImportRows(workbook)
	if err != nil {
		return employee.ImportEmployeesResponse{}, err
	}

	response := employee.ImportEmployeesResponse{
		Added:   []employee.EmployeeResponse{},
		Skipped: []employee.ImportRowError{},
	}

	for _, row := range rows {
		req := row.CreateEmployeeRequest
		if err := req.Validate(); err != nil {
			response.Skipped = append(response.Skipped, employee.ImportRowError{
				Row:    row.Row,
				Email:  req.Email,
				Reason: err.Error(),
			})
			continue
		}

		created, err := s.create(ctx, req)
		if err != nil {
			if errors.Is(err, employee.ErrEmailExists) {
				response.Skipped = append(response.Skipped, employee.ImportRowError{
					Row:    row.Row,
					Email:  req.Email,
					Reason: "email already registered",
				})
				continue
			}
			return employee.ImportEmployeesResponse{}, fmt.Errorf("import stopped at row %d: %w", row.Row, err)
		}

		response.Added = append(response.Added, employee.ToResponse(created))
	}

	return response, nil
}

func parseImportRows(workbook io.Reader) ([]importRow, error) {
	sheetRows, err := spreadsheet.ReadFirstSheet(workbook)
	if err != nil {
		return nil, validator.ValidationErrors{{Field: "file", Message: err.Error()}}
	}
	if len(sheetRows) < 2 {
		return nil, employee.ErrImportNoData
	}

	colIndex := parseHeaderIndex(sheetRows[0])
	if colIndex["name"] < 0 || colIndex["position"] < 0 || colIndex["email"] < 0 {
		return nil, employee.ErrImportBadHeader
	}

	cellAt := func(row []string, key string) string {
		if idx := colIndex[key]; idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var rows []importRow
	for i := 1; i < len(sheetRows); i++ {
		item := importRow{Row: i + 1}
		item.Name = cellAt(sheetRows[i], "name")
		item.Position = cellAt(sheetRows[i], "position")
		item.Email = cellAt(sheetRows[i], "email")

		// skip blank rows
		if item.Name == "" && item.Position == "" && item.Email == "" {
			continue
		}
		rows = append(rows, item)
	}

	if len(rows) == 0 {
		return nil, employee.ErrImportNoData
	}
	if len(rows) > employee.MaxImportRows {
		return nil, employee.ErrImportTooManyRows
	}

	return rows, nil
}

// parseHeaderIndex maps column keys to their position in the header row.
// Missing columns map to -1.
func parseHeaderIndex(header []string) map[string]int {
	idx := map[string]int{
		"name":     -1,
		"position": -1,
		"email":    -1,
	}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name", "employee name", "full name":
			idx["name"] = i
		case "position", "job title", "title":
			idx["position"] = i
		case "email", "e-mail", "email address":
			idx["email"] = i
		}
	}
	return idx
}

package sqlstore

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (name, position, email)
		VALUES (?, ?, ?)
		RETURNING id
	`

	err := q.QueryRowContext(ctx, r.db.Rebind(query),
		newEmployee.Name,
		newEmployee.Position,
		newEmployee.Email,
	).Scan(&newEmployee.ID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", database.Classify(err))
	}

	return newEmployee, nil
}

// Delete implements employee.EmployeeRepository. Attendance rows go with the
// employee through ON DELETE CASCADE, inside the same statement.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	result, err := q.ExecContext(ctx, r.db.Rebind(`DELETE FROM employees WHERE id = ?`), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete employee: %w", database.Classify(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", database.Classify(err))
	}

	return rowsAffected > 0, nil
}

// CountAttendance implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountAttendance(ctx context.Context, id int64) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRowContext(ctx, r.db.Rebind(`SELECT COUNT(*) FROM attendance WHERE employee_id = ?`), id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", database.Classify(err))
	}

	return count, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, position, email
		FROM employees
		ORDER BY id ASC
	`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", database.Classify(err))
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Position, &e.Email); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", database.Classify(err))
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", database.Classify(err))
	}

	return employees, nil
}

// ListOptions implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListOptions(ctx context.Context) ([]employee.Option, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.QueryContext(ctx, `SELECT id, name FROM employees ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee options: %w", database.Classify(err))
	}
	defer rows.Close()

	options := []employee.Option{}
	for rows.Next() {
		var o employee.Option
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("failed to scan employee option: %w", database.Classify(err))
		}
		options = append(options, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", database.Classify(err))
	}

	return options, nil
}

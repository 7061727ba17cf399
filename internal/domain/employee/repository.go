package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Delete(ctx context.Context, id int64) (bool, error)
	CountAttendance(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]Employee, error)
	ListOptions(ctx context.Context) ([]Option, error)
}

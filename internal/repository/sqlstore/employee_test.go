package sqlstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/sqlstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_CreateAndList(t *testing.T) {
	forEachStore(t, func(t *testing.T, db *database.DB) {
		ctx := context.Background()
		repo := sqlstore.NewEmployeeRepository(db)

		empty, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, empty)

		ann, err := repo.Create(ctx, employee.Employee{Name: "Ann", Position: "Engineer", Email: "ann@x.com"})
		require.NoError(t, err)
		assert.Positive(t, ann.ID)

		bo, err := repo.Create(ctx, employee.Employee{Name: "Bo", Position: "QA", Email: "bo@x.com"})
		require.NoError(t, err)
		assert.Greater(t, bo.ID, ann.ID)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []employee.Employee{ann, bo}, list)

		options, err := repo.ListOptions(ctx)
		require.NoError(t, err)
		assert.Equal(t, []employee.Option{{ID: ann.ID, Name: "Ann"}, {ID: bo.ID, Name: "Bo"}}, options)
	})
}

func TestEmployeeRepository_DuplicateEmail(t *testing.T) {
	forEachStore(t, func(t *testing.T, db *database.DB) {
		ctx := context.Background()
		repo := sqlstore.NewEmployeeRepository(db)

		_, err := repo.Create(ctx, employee.Employee{Name: "Ann", Position: "Engineer", Email: "ann@x.com"})
		require.NoError(t, err)

		_, err = repo.Create(ctx, employee.Employee{Name: "Bo", Position: "QA", Email: "ann@x.com"})
		require.Error(t, err)
		assert.ErrorIs(t, err, database.ErrConstraintViolation)
		assert.True(t, database.IsUniqueViolation(err))

		assert.EqualValues(t, 1, countRows(t, db, "SELECT COUNT(*) FROM employees"))
	})
}

func TestEmployeeRepository_DeleteCascadesAttendance(t *testing.T) {
	forEachStore(t, func(t *testing.T, db *database.DB) {
		ctx := context.Background()
		employees := sqlstore.NewEmployeeRepository(db)
		ledger := sqlstore.NewAttendanceRepository(db)

		ann, err := employees.Create(ctx, employee.Employee{Name: "Ann", Position: "Engineer", Email: "ann@x.com"})
		require.NoError(t, err)
		bo, err := employees.Create(ctx, employee.Employee{Name: "Bo", Position: "QA", Email: "bo@x.com"})
		require.NoError(t, err)

		for _, date := range []string{"2024-01-10", "2024-01-11"} {
			_, err = ledger.Upsert(ctx, attendance.Record{EmployeeID: ann.ID, Date: date, Status: attendance.StatusPresent})
			require.NoError(t, err)
		}
		_, err = ledger.Upsert(ctx, attendance.Record{EmployeeID: bo.ID, Date: "2024-01-10", Status: attendance.StatusAbsent})
		require.NoError(t, err)

		count, err := employees.CountAttendance(ctx, ann.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)

		deleted, err := employees.Delete(ctx, ann.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		assert.Zero(t, countRows(t, db, "SELECT COUNT(*) FROM attendance WHERE employee_id = ?", ann.ID))
		assert.EqualValues(t, 1, countRows(t, db, "SELECT COUNT(*) FROM attendance WHERE employee_id = ?", bo.ID))
		assert.Zero(t, countRows(t, db, "SELECT COUNT(*) FROM attendance a WHERE NOT EXISTS (SELECT 1 FROM employees e WHERE e.id = a.employee_id)"))

		list, err := employees.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []employee.Employee{bo}, list)
	})
}

func TestEmployeeRepository_DeleteUnknownID(t *testing.T) {
	forEachStore(t, func(t *testing.T, db *database.DB) {
		deleted, err := sqlstore.NewEmployeeRepository(db).Delete(context.Background(), 4242)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	forEachStore(t, func(t *testing.T, db *database.DB) {
		ctx := context.Background()
		repo := sqlstore.NewEmployeeRepository(db)
		boom := errors.New("boom")

		err := sqlstore.WithTransaction(ctx, db, func(txCtx context.Context) error {
			if _, err := repo.Create(txCtx, employee.Employee{Name: "Ann", Position: "Engineer", Email: "ann@x.com"}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, countRows(t, db, "SELECT COUNT(*) FROM employees"))
	})
}

package sqlstore_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/sqlstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_UpsertOverwritesInPlace(t *testing.T) {
	forEachStore(t, func(t *testing.T, db *database.DB) {
		ctx := context.Background()
		ann, err := sqlstore.NewEmployeeRepository(db).Create(ctx, employee.Employee{Name: "Ann", Position: "Engineer", Email: "ann@x.com"})
		require.NoError(t, err)
		ledger := sqlstore.NewAttendanceRepository(db)

		first, err := ledger.Upsert(ctx, attendance.Record{EmployeeID: ann.ID, Date: "2024-01-10", Status: attendance.StatusPresent})
		require.NoError(t, err)
		assert.Positive(t, first.ID)
		assert.Equal(t, attendance.StatusPresent, first.Status)

		second, err := ledger.Upsert(ctx, attendance.Record{EmployeeID: ann.ID, Date: "2024-01-10", Status: attendance.StatusOnLeave})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, attendance.StatusOnLeave, second.Status)
		assert.Equal(t, "2024-01-10", second.Date)

		assert.EqualValues(t, 1, countRows(t, db, "SELECT COUNT(*) FROM attendance WHERE employee_id = ? AND date = ?", ann.ID, "2024-01-10"))

		var stored string
		require.NoError(t, db.QueryRowContext(ctx, db.Rebind("SELECT status FROM attendance WHERE employee_id = ? AND date = ?"), ann.ID, "2024-01-10").Scan(&stored))
		assert.Equal(t, "On Leave", stored)
	})
}

func TestAttendanceRepository_UpsertIsIdempotent(t *testing.T) {
	forEachStore(t, func(t *testing.T, db *database.DB) {
		ctx := context.Background()
		ann, err := sqlstore.NewEmployeeRepository(db).Create(ctx, employee.Employee{Name: "Ann", Position: "Engineer", Email: "ann@x.com"})
		require.NoError(t, err)
		ledger := sqlstore.NewAttendanceRepository(db)

		record := attendance.Record{EmployeeID: ann.ID, Date: "2024-01-10", Status: attendance.StatusAbsent}
		first, err := ledger.Upsert(ctx, record)
		require.NoError(t, err)
		second, err := ledger.Upsert(ctx, record)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.EqualValues(t, 1, countRows(t, db, "SELECT COUNT(*) FROM attendance"))
	})
}

func TestAttendanceRepository_SeparateDatesAreSeparateRows(t *testing.T) {
	forEachStore(t, func(t *testing.T, db *database.DB) {
		ctx := context.Background()
		ann, err := sqlstore.NewEmployeeRepository(db).Create(ctx, employee.Employee{Name: "Ann", Position: "Engineer", Email: "ann@x.com"})
		require.NoError(t, err)
		ledger := sqlstore.NewAttendanceRepository(db)

		a, err := ledger.Upsert(ctx, attendance.Record{EmployeeID: ann.ID, Date: "2024-01-10", Status: attendance.StatusPresent})
		require.NoError(t, err)
		b, err := ledger.Upsert(ctx, attendance.Record{EmployeeID: ann.ID, Date: "2024-01-11", Status: attendance.StatusPresent})
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
		assert.EqualValues(t, 2, countRows(t, db, "SELECT COUNT(*) FROM attendance"))
	})
}

func TestAttendanceRepository_UnknownEmployee(t *testing.T) {
	forEachStore(t, func(t *testing.T, db *database.DB) {
		_, err := sqlstore.NewAttendanceRepository(db).Upsert(context.Background(), attendance.Record{
			EmployeeID: 999,
			Date:       "2024-01-10",
			Status:     attendance.StatusPresent,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, database.ErrForeignKeyViolation)
		assert.Zero(t, countRows(t, db, "SELECT COUNT(*) FROM attendance"))
	})
}

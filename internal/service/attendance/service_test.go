package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/sqlstore"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/sqlstore/sqlstoretest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	got attendance.Record
	err error
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	f.got = record
	if f.err != nil {
		return attendance.Record{}, f.err
	}
	record.ID = 7
	return record, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAttendanceService_MarkAttendance_DefaultsToToday(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := &AttendanceServiceImpl{
		attendanceRepo: repo,
		now:            fixedClock(time.Date(2024, time.January, 10, 23, 59, 0, 0, time.Local)),
	}

	resp, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 1,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", repo.got.Date)
	assert.Equal(t, attendance.AttendanceResponse{ID: 7, EmployeeID: 1, Date: "2024-01-10", Status: attendance.StatusPresent}, resp)
}

func TestAttendanceService_MarkAttendance_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   attendance.MarkAttendanceRequest
		field string
	}{
		{"unknown status", attendance.MarkAttendanceRequest{EmployeeID: 1, Date: "2024-01-10", Status: "Late"}, "status"},
		{"lowercase status", attendance.MarkAttendanceRequest{EmployeeID: 1, Date: "2024-01-10", Status: "present"}, "status"},
		{"bad date", attendance.MarkAttendanceRequest{EmployeeID: 1, Date: "10/01/2024", Status: attendance.StatusAbsent}, "date"},
		{"unpadded date", attendance.MarkAttendanceRequest{EmployeeID: 1, Date: "2024-1-10", Status: attendance.StatusAbsent}, "date"},
		{"missing employee", attendance.MarkAttendanceRequest{Date: "2024-01-10", Status: attendance.StatusAbsent}, "employee_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAttendanceRepo{}
			svc := NewAttendanceService(repo)

			_, err := svc.MarkAttendance(context.Background(), tt.req)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
			assert.Zero(t, repo.got, "store must not be touched")
		})
	}
}

func TestAttendanceService_MarkAttendance_PassesStoreErrors(t *testing.T) {
	storeDown := errors.Join(database.ErrStoreUnavailable, errors.New("disk I/O error"))
	svc := NewAttendanceService(&fakeAttendanceRepo{err: storeDown})

	_, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 1,
		Date:       "2024-01-10",
		Status:     attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, attendance.ErrEmployeeNotFound)
}

func TestAttendanceService_MarkAttendance_Store(t *testing.T) {
	ctx := context.Background()
	db := sqlstoretest.NewSQLiteDB(t)
	svc := NewAttendanceService(sqlstore.NewAttendanceRepository(db))

	ann, err := sqlstore.NewEmployeeRepository(db).Create(ctx, employee.Employee{Name: "Ann", Position: "Engineer", Email: "ann@x.com"})
	require.NoError(t, err)

	first, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{EmployeeID: ann.ID, Date: "2024-01-10", Status: attendance.StatusPresent})
	require.NoError(t, err)
	second, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{EmployeeID: ann.ID, Date: "2024-01-10", Status: attendance.StatusAbsent})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.StatusAbsent, second.Status)
	assert.EqualValues(t, 1, sqlstoretest.CountRows(t, db, "SELECT COUNT(*) FROM attendance"))

	_, err = svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{EmployeeID: ann.ID + 100, Date: "2024-01-10", Status: attendance.StatusAbsent})
	assert.ErrorIs(t, err, attendance.ErrEmployeeNotFound)
	assert.ErrorIs(t, err, database.ErrForeignKeyViolation)
}

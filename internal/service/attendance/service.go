package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if req.Date == "" {
		req.Date = validator.FormatDate(s.now())
	}
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.Upsert(ctx, attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     req.Status,
	})
	if err != nil {
		if errors.Is(err, database.ErrForeignKeyViolation) {
			return attendance.AttendanceResponse{}, fmt.Errorf("%w: id %d", attendance.ErrEmployeeNotFound, req.EmployeeID)
		}
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

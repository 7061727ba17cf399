package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("MarkAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			slog.Error("MarkAttendance service error", "error", err)
		}
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked", result)
}

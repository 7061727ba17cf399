package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetDailyAttendanceReport(w http.ResponseWriter, r *http.Request)
	ExportDailyAttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetDailyAttendanceReport handles GET /reports/attendance?date=YYYY-MM-DD
func (h *reportHandlerImpl) GetDailyAttendanceReport(w http.ResponseWriter, r *http.Request) {
	req := report.DailyAttendanceReportRequest{Date: r.URL.Query().Get("date")}

	result, err := h.reportService.GenerateDailyAttendanceReport(r.Context(), req)
	if err != nil {
		slog.Error("GenerateDailyAttendanceReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportDailyAttendanceReport handles GET /reports/attendance/export?date=YYYY-MM-DD
func (h *reportHandlerImpl) ExportDailyAttendanceReport(w http.ResponseWriter, r *http.Request) {
	req := report.DailyAttendanceReportRequest{Date: r.URL.Query().Get("date")}

	file, err := h.reportService.ExportDailyAttendanceReport(r.Context(), req)
	if err != nil {
		slog.Error("ExportDailyAttendanceReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Filename, file.ContentType, file.Content)
}

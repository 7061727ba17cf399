package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
	now        func() time.Time
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// GenerateDailyAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateDailyAttendanceReport(ctx context.Context, req report.DailyAttendanceReportRequest) (report.DailyAttendanceReport, error) {
	now := s.now()
	if req.Date == "" {
		req.Date = validator.FormatDate(now)
	}
	if err := req.Validate(); err != nil {
		return report.DailyAttendanceReport{}, err
	}

	rows, err := s.reportRepo.GetDailyAttendance(ctx, req.Date)
	if err != nil {
		return report.DailyAttendanceReport{}, fmt.Errorf("failed to get attendance data: %w", err)
	}

	summary := report.DailyAttendanceSummary{TotalEmployees: len(rows)}
	for i := range rows {
		switch attendance.Status(rows[i].Status) {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusAbsent:
			summary.Absent++
		case attendance.StatusOnLeave:
			summary.OnLeave++
		default:
			rows[i].Status = report.StatusNotMarked
			summary.NotMarked++
		}
	}

	return report.DailyAttendanceReport{
		Date:        req.Date,
		GeneratedAt: now.Format(time.RFC3339),
		Summary:     summary,
		Rows:        rows,
	}, nil
}

// ExportDailyAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) ExportDailyAttendanceReport(ctx context.Context, req report.DailyAttendanceReportRequest) (report.ReportFile, error) {
	daily, err := s.GenerateDailyAttendanceReport(ctx, req)
	if err != nil {
		return report.ReportFile{}, err
	}

	rows := make([][]any, 0, len(daily.Rows))
	for _, row := range daily.Rows {
		rows = append(rows, []any{row.EmployeeID, row.EmployeeName, row.Status})
	}

	content, err := spreadsheet.Table{
		Sheet:  "Attendance",
		Title:  fmt.Sprintf("Attendance report for %s", daily.Date),
		Header: []string{"Employee ID", "Name", "Status"},
		Rows:   rows,
		Widths: []float64{14, 32, 16},
		Summary: [][]any{
			{"Total", daily.Summary.TotalEmployees},
			{string(attendance.StatusPresent), daily.Summary.Present},
			{string(attendance.StatusAbsent), daily.Summary.Absent},
			{string(attendance.StatusOnLeave), daily.Summary.OnLeave},
			{report.StatusNotMarked, daily.Summary.NotMarked},
		},
	}.Render()
	if err != nil {
		return report.ReportFile{}, fmt.Errorf("%w: %w", report.ErrReportEncoding, err)
	}

	return report.ReportFile{
		Filename:    fmt.Sprintf("attendance_%s.xlsx", daily.Date),
		ContentType: spreadsheet.ContentTypeXLSX,
		Content:     content,
	}, nil
}

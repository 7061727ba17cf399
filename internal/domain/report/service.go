package report

import "context"

type ReportService interface {
	// GenerateDailyAttendanceReport lists every employee with its status on
	// the requested date (today when empty) or StatusNotMarked.
	GenerateDailyAttendanceReport(ctx context.Context, req DailyAttendanceReportRequest) (DailyAttendanceReport, error)

	// ExportDailyAttendanceReport renders the same report as an XLSX workbook.
	ExportDailyAttendanceReport(ctx context.Context, req DailyAttendanceReportRequest) (ReportFile, error)
}

package http

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/spreadsheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportHandler_DailyAttendance(t *testing.T) {
	s := newTestServer(t)
	ann := createEmployee(t, s, "Ann", "Engineer", "ann@x.com")
	bo := createEmployee(t, s, "Bo", "QA", "bo@x.com")

	w := s.do(t, http.MethodPut, "/api/v1/attendance", map[string]any{
		"employee_id": ann.ID, "date": "2024-01-10", "status": "Present",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/reports/attendance?date=2024-01-10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var daily report.DailyAttendanceReport
	decode(t, w, &daily)
	assert.Equal(t, "2024-01-10", daily.Date)
	assert.Equal(t, []report.DailyAttendanceRow{
		{EmployeeID: ann.ID, EmployeeName: "Ann", Status: "Present"},
		{EmployeeID: bo.ID, EmployeeName: "Bo", Status: "Not Marked"},
	}, daily.Rows)
	assert.Equal(t, 1, daily.Summary.Present)
	assert.Equal(t, 1, daily.Summary.NotMarked)
}

func TestReportHandler_DailyAttendance_InvalidDate(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/reports/attendance?date=yesterday", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestReportHandler_Export(t *testing.T) {
	s := newTestServer(t)
	createEmployee(t, s, "Ann", "Engineer", "ann@x.com")

	w := s.do(t, http.MethodGet, "/api/v1/reports/attendance/export?date=2024-01-10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, spreadsheet.ContentTypeXLSX, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attendance_2024-01-10.xlsx")

	rows, err := spreadsheet.ReadFirstSheet(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 4)
	assert.Equal(t, []string{"Employee ID", "Name", "Status"}, rows[2])
	assert.Equal(t, "Not Marked", rows[3][2])
}

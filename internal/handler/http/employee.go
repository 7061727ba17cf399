package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// maxImportSize caps the uploaded XLSX workbook.
const maxImportSize = 10 << 20

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListOptions(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		if !errors.Is(err, employee.ErrEmailExists) {
			slog.Error("CreateEmployee service error", "error", err)
		}
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee added", "employee_id", result.ID)
	response.Created(w, "Employee added successfully", result)
}

// Delete implements EmployeeHandler.
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Employee ID must be an integer", nil)
		return
	}

	result, err := h.employeeService.DeleteEmployee(r.Context(), id)
	if err != nil {
		slog.Error("DeleteEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if !result.Deleted {
		response.SuccessWithMessage(w, "Employee did not exist", result)
		return
	}

	slog.Info("Employee deleted", "employee_id", result.ID, "attendance_removed", result.AttendanceRemoved)
	response.SuccessWithMessage(w, "Employee deleted successfully", result)
}

// ListOptions implements EmployeeHandler.
func (h *employeeHandlerImpl) ListOptions(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListEmployeeOptions(r.Context())
	if err != nil {
		slog.Error("ListEmployeeOptions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Import implements EmployeeHandler.
func (h *employeeHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Spreadsheet file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
		response.BadRequest(w, "invalid file type: only xlsx allowed", nil)
		return
	}

	result, err := h.employeeService.ImportEmployees(r.Context(), file)
	if err != nil {
		slog.Error("ImportEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employees imported", "added", len(result.Added), "skipped", len(result.Skipped))
	response.SuccessWithMessage(w, "Import finished", result)
}

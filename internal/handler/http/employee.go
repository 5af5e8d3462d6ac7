package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/waspernest/pe-bms-node/internal/domain/employee"
	"github.com/waspernest/pe-bms-node/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateSchedule(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	biometricID := chi.URLParam(r, "biometricID")

	emp, err := h.employeeService.Get(r.Context(), biometricID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// UpdateSchedule implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	biometricID := chi.URLParam(r, "biometricID")

	var req employee.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode schedule update", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.UpdateSchedule(r.Context(), biometricID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule updated", emp)
}

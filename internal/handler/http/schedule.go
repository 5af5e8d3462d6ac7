package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/waspernest/pe-bms-node/internal/domain/schedule"
	"github.com/waspernest/pe-bms-node/internal/handler/http/response"
)

type ScheduleHandler interface {
	CreateGroup(w http.ResponseWriter, r *http.Request)
	ListGroups(w http.ResponseWriter, r *http.Request)
	DeleteGroup(w http.ResponseWriter, r *http.Request)
	SetAssignment(w http.ResponseWriter, r *http.Request)
	MonthView(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// CreateGroup implements ScheduleHandler.
func (h *scheduleHandlerImpl) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode group request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	group, err := h.scheduleService.CreateGroup(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule group created", group)
}

// ListGroups implements ScheduleHandler.
func (h *scheduleHandlerImpl) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.scheduleService.ListGroups(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, groups)
}

// DeleteGroup implements ScheduleHandler.
func (h *scheduleHandlerImpl) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group id", nil)
		return
	}

	if err := h.scheduleService.DeleteGroup(r.Context(), groupID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule group deleted", nil)
}

// SetAssignment implements ScheduleHandler.
func (h *scheduleHandlerImpl) SetAssignment(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group id", nil)
		return
	}

	var req schedule.SetAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode assignment request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.GroupID = groupID

	assignment, err := h.scheduleService.SetAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule assignment saved", assignment)
}

// MonthView implements ScheduleHandler.
func (h *scheduleHandlerImpl) MonthView(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group id", nil)
		return
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	q := r.URL.Query()
	if v := q.Get("year"); v != "" {
		if year, err = strconv.Atoi(v); err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
	}
	if v := q.Get("month"); v != "" {
		if month, err = strconv.Atoi(v); err != nil {
			response.BadRequest(w, "Invalid month", nil)
			return
		}
	}

	days, err := h.scheduleService.MonthView(r.Context(), groupID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, days)
}

// Resolve implements ScheduleHandler.
func (h *scheduleHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	biometricID := chi.URLParam(r, "biometricID")

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	resolved, err := h.scheduleService.Resolve(r.Context(), biometricID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resolved)
}

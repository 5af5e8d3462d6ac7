package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/waspernest/pe-bms-node/internal/domain/attendance"
	"github.com/waspernest/pe-bms-node/internal/handler/http/response"
	"github.com/waspernest/pe-bms-node/internal/pkg/validator"
	"github.com/waspernest/pe-bms-node/internal/service/importfile"
)

type AttendanceHandler interface {
	Log(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	ImportProgress(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

type logRequest struct {
	Attendance []attendance.PunchRequest `json:"attendance"`
}

type punchOutcome struct {
	BiometricID string                     `json:"biometric_id"`
	LogDate     string                     `json:"log_date"`
	Time        string                     `json:"time"`
	Action      string                     `json:"action"`
	Error       string                     `json:"error,omitempty"`
	Record      *attendance.RecordResponse `json:"record,omitempty"`
}

// Log implements AttendanceHandler. It accepts a batch of punches and
// reconciles each independently; one bad punch never fails the batch.
func (h *attendanceHandlerImpl) Log(w http.ResponseWriter, r *http.Request) {
	var req logRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode punch batch", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if len(req.Attendance) == 0 {
		response.BadRequest(w, "No attendance data provided", nil)
		return
	}

	results := make([]punchOutcome, 0, len(req.Attendance))
	for _, punch := range req.Attendance {
		outcome := punchOutcome{
			BiometricID: punch.BiometricID,
			LogDate:     punch.LogDate,
			Time:        punch.Time,
		}

		result, err := h.attendanceService.Reconcile(r.Context(), punch)
		if err != nil {
			outcome.Action = "error"
			outcome.Error = err.Error()

			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				outcome.Action = "skipped"
			}
		} else {
			outcome.Action = string(result.Action)
			outcome.Record = &result.Record
		}

		results = append(results, outcome)
	}

	response.Success(w, map[string]interface{}{
		"processed": len(results),
		"results":   results,
	})
}

// Import implements AttendanceHandler. The uploaded file is parsed by
// extension and the rows run through the batch importer under a fresh
// job id.
func (h *attendanceHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	// 20MB cap covers a year of punches from one device.
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "No file uploaded", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("Failed to read uploaded file", "error", err)
		response.BadRequest(w, "Failed to read uploaded file", nil)
		return
	}

	rows, err := importfile.Parse(fileHeader.Filename, data)
	if err != nil {
		slog.Error("Failed to parse import file", "file", fileHeader.Filename, "error", err)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	jobID := uuid.NewString()
	result, err := h.attendanceService.ImportRows(r.Context(), jobID, rows)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Import finished", result)
}

// ImportProgress implements AttendanceHandler.
func (h *attendanceHandlerImpl) ImportProgress(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	progress, err := h.attendanceService.Progress(jobID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"job_id":      progress.JobID,
		"state":       progress.State,
		"total":       progress.Total,
		"processed":   progress.Processed,
		"percent":     progress.Percent(),
		"message":     progress.Message,
		"started_at":  progress.StartedAt,
		"finished_at": progress.FinishedAt,
	})
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListFilter{}

	q := r.URL.Query()
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := q.Get("page"); v != "" {
		filter.Page, _ = strconv.Atoi(v)
	}
	if v := q.Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}
	filter.SortOrder = q.Get("sort_order")

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

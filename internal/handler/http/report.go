package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/waspernest/pe-bms-node/internal/domain/report"
	"github.com/waspernest/pe-bms-node/internal/handler/http/response"
)

type ReportHandler interface {
	DTR(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func rangeRequestFromURL(r *http.Request) report.RangeRequest {
	q := r.URL.Query()
	return report.RangeRequest{
		BiometricID: chi.URLParam(r, "biometricID"),
		StartDate:   q.Get("start_date"),
		EndDate:     q.Get("end_date"),
	}
}

// DTR implements ReportHandler.
func (h *reportHandlerImpl) DTR(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.DTR(r.Context(), rangeRequestFromURL(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements ReportHandler.
func (h *reportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Summary(r.Context(), rangeRequestFromURL(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/peoplehub/hrm-backend-go/internal/domain/report"
	"github.com/peoplehub/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplehub/hrm-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	AttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// AttendanceReport implements ReportHandler - xlsx export of a date range
func (h *reportHandlerImpl) AttendanceReport(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := report.AttendanceReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	workbook, filename, err := h.reportService.AttendanceWorkbook(r.Context(), caller, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(workbook); err != nil {
		slog.Error("Failed to stream attendance report", "error", err)
	}
}

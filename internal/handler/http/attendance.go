package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/peoplehub/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplehub/hrm-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListAttendance(w http.ResponseWriter, r *http.Request)
	TodayAttendance(w http.ResponseWriter, r *http.Request)
	UpsertAttendance(w http.ResponseWriter, r *http.Request)
	UpdateAttendance(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
	AssignTask(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ListAttendance implements AttendanceHandler - roster for a given day
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := attendance.ListFilter{
		EmployeeID: r.URL.Query().Get("employee"),
		Status:     r.URL.Query().Get("status"),
	}

	if date := r.URL.Query().Get("date"); date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		filter.Date = &parsed
	}

	results, err := h.attendanceService.List(r.Context(), caller, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithCount(w, results, len(results))
}

// TodayAttendance implements AttendanceHandler - today's roster shortcut
func (h *attendanceHandlerImpl) TodayAttendance(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := attendance.ListFilter{
		EmployeeID: r.URL.Query().Get("employee"),
		Status:     r.URL.Query().Get("status"),
	}

	results, err := h.attendanceService.List(r.Context(), caller, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithCount(w, results, len(results))
}

// UpsertAttendance implements AttendanceHandler - create or update by day
func (h *attendanceHandlerImpl) UpsertAttendance(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.UpsertAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, created, err := h.attendanceService.Upsert(r.Context(), caller, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if created {
		response.Created(w, "Attendance recorded successfully", result)
		return
	}
	response.SuccessWithMessage(w, "Attendance updated successfully", result)
}

// UpdateAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Update(r.Context(), caller, id, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated successfully", result)
}

// DeleteAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), caller, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted successfully", nil)
}

// AssignTask implements AttendanceHandler - bulk task assignment
func (h *attendanceHandlerImpl) AssignTask(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.BulkTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.AssignTask(r.Context(), caller, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

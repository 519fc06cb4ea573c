package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/peoplehub/hrm-backend-go/internal/domain/candidate"
	"github.com/peoplehub/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplehub/hrm-backend-go/internal/handler/http/response"
)

type CandidateHandler interface {
	ListCandidates(w http.ResponseWriter, r *http.Request)
	GetCandidate(w http.ResponseWriter, r *http.Request)
	CreateCandidate(w http.ResponseWriter, r *http.Request)
	UpdateCandidate(w http.ResponseWriter, r *http.Request)
	DeleteCandidate(w http.ResponseWriter, r *http.Request)
	DownloadResume(w http.ResponseWriter, r *http.Request)
	ConvertCandidate(w http.ResponseWriter, r *http.Request)
}

type candidateHandlerImpl struct {
	candidateService candidate.Service
}

func NewCandidateHandler(candidateService candidate.Service) CandidateHandler {
	return &candidateHandlerImpl{
		candidateService: candidateService,
	}
}

// ListCandidates implements CandidateHandler
func (h *candidateHandlerImpl) ListCandidates(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.candidateService.List(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithCount(w, results, len(results))
}

// GetCandidate implements CandidateHandler
func (h *candidateHandlerImpl) GetCandidate(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Candidate ID is required", nil)
		return
	}

	result, err := h.candidateService.Get(r.Context(), caller, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateCandidate implements CandidateHandler. Accepts either plain JSON or
// a multipart form carrying a 'data' JSON field plus an optional 'resume'
// file.
func (h *candidateHandlerImpl) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req candidate.CreateCandidateRequest
	var resume multipart.File
	var resumeHeader *multipart.FileHeader

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		// Parse multipart form (max 10MB)
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			slog.Error("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}

		dataJSON := r.FormValue("data")
		if dataJSON == "" {
			response.BadRequest(w, "Field 'data' is required", nil)
			return
		}

		if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
			slog.Error("Failed to unmarshal JSON data", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		file, fileHeader, err := r.FormFile("resume")
		if err == nil {
			defer file.Close()
			resume = file
			resumeHeader = fileHeader
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.candidateService.Create(r.Context(), caller, &req, resume, resumeHeader)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Candidate created successfully", result)
}

// UpdateCandidate implements CandidateHandler
func (h *candidateHandlerImpl) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Candidate ID is required", nil)
		return
	}

	var req candidate.UpdateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.candidateService.Update(r.Context(), caller, id, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate updated successfully", result)
}

// DeleteCandidate implements CandidateHandler
func (h *candidateHandlerImpl) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Candidate ID is required", nil)
		return
	}

	if err := h.candidateService.Delete(r.Context(), caller, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate deleted successfully", nil)
}

// DownloadResume implements CandidateHandler
func (h *candidateHandlerImpl) DownloadResume(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Candidate ID is required", nil)
		return
	}

	file, filename, err := h.candidateService.DownloadResume(r.Context(), caller, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := io.Copy(w, file); err != nil {
		slog.Error("Failed to stream resume", "candidate_id", id, "error", err)
	}
}

// ConvertCandidate implements CandidateHandler
func (h *candidateHandlerImpl) ConvertCandidate(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Candidate ID is required", nil)
		return
	}

	var req candidate.ConvertCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.candidateService.Convert(r.Context(), caller, id, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Candidate converted to employee successfully", result)
}

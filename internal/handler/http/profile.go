package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/peoplehub/hrm-backend-go/internal/domain/profile"
	"github.com/peoplehub/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplehub/hrm-backend-go/internal/handler/http/response"
)

type ProfileHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	UpdatePicture(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	profileService profile.Service
}

func NewProfileHandler(profileService profile.Service) ProfileHandler {
	return &profileHandlerImpl{
		profileService: profileService,
	}
}

// GetProfile implements ProfileHandler
func (h *profileHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.profileService.Get(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateProfile implements ProfileHandler
func (h *profileHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req profile.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.profileService.Update(r.Context(), caller, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated successfully", result)
}

// UpdatePicture implements ProfileHandler
func (h *profileHandlerImpl) UpdatePicture(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Parse multipart form (max 5MB)
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("picture")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Picture file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	result, err := h.profileService.UpdatePicture(r.Context(), caller, file, fileHeader.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile picture updated successfully", result)
}

package http

import (
	"net/http"

	"github.com/peoplehub/hrm-backend-go/internal/domain/dashboard"
	"github.com/peoplehub/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplehub/hrm-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
	GetActivities(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetStats implements DashboardHandler
func (h *dashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.Stats(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetActivities implements DashboardHandler
func (h *dashboardHandlerImpl) GetActivities(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.dashboardService.Activities(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithCount(w, results, len(results))
}

package http

import (
	"net/http"

	"github.com/wmoldes/roster-backend/internal/domain/dashboard"
	"github.com/wmoldes/roster-backend/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns stats with the upcoming and on-vacation panels
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetShiftBoards returns the roster grouped by shift
	GetShiftBoards(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetShiftBoards handles GET /dashboard/shifts
func (h *dashboardHandlerImpl) GetShiftBoards(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetShiftBoards(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

package http

import (
	"net/http"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/dashboard"
	"github.com/crewdesk/crewdesk-backend-go/internal/handler/http/middleware"
	"github.com/crewdesk/crewdesk-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetStats implements DashboardHandler. Counters are recomputed per call.
func (d *DashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := dashboard.StatsQuery{
		DepartmentID: r.URL.Query().Get("department_id"),
		ProjectID:    r.URL.Query().Get("project_id"),
		StartDate:    r.URL.Query().Get("start_date"),
		EndDate:      r.URL.Query().Get("end_date"),
	}

	stats, err := d.dashboardService.GetStats(r.Context(), actor, query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

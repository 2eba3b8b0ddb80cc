package http

import (
	"net/http"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/dashboard"
	"github.com/crewdesk/crewdesk-backend-go/internal/handler/http/middleware"
	"github.com/crewdesk/crewdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeDashboardHandler interface {
	GetMyStats(w http.ResponseWriter, r *http.Request)
	GetMyWeeklyHours(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetWeeklyHours(w http.ResponseWriter, r *http.Request)
}

type EmployeeDashboardHandlerImpl struct {
	service dashboard.EmployeeDashboardService
}

func NewEmployeeDashboardHandler(service dashboard.EmployeeDashboardService) EmployeeDashboardHandler {
	return &EmployeeDashboardHandlerImpl{service: service}
}

// GetMyStats implements EmployeeDashboardHandler.
func (e *EmployeeDashboardHandlerImpl) GetMyStats(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := e.service.GetStats(r.Context(), actor, actor.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// GetMyWeeklyHours implements EmployeeDashboardHandler.
func (e *EmployeeDashboardHandlerImpl) GetMyWeeklyHours(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	hours, err := e.service.GetWeeklyHours(r.Context(), actor, actor.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, hours)
}

// GetStats implements EmployeeDashboardHandler. The scope check lives in the
// service, so an employee probing someone else's id gets a 403 there.
func (e *EmployeeDashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	stats, err := e.service.GetStats(r.Context(), actor, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// GetWeeklyHours implements EmployeeDashboardHandler.
func (e *EmployeeDashboardHandlerImpl) GetWeeklyHours(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	hours, err := e.service.GetWeeklyHours(r.Context(), actor, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, hours)
}

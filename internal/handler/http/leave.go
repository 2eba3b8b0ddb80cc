package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/leave"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/user"
	"github.com/crewdesk/crewdesk-backend-go/internal/handler/http/middleware"
	"github.com/crewdesk/crewdesk-backend-go/internal/handler/http/response"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	TransitionRequest(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// CreateRequest implements LeaveHandler. The employee id always comes from
// the token, never the body.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.EmployeeID = actor.EmployeeID

	created, err := l.leaveService.SubmitRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", leave.NewLeaveRequestResponse(created))
}

// TransitionRequest implements LeaveHandler. One endpoint serves approve,
// reject and cancel; the body names the action.
func (l *LeaveHandlerImpl) TransitionRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	var req leave.TransitionLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("TransitionRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = requestID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	var updated leave.LeaveRequest
	switch req.Action {
	case leave.TransitionActionApprove:
		updated, err = l.leaveService.ApproveRequest(r.Context(), actor, requestID)
	case leave.TransitionActionReject:
		updated, err = l.leaveService.RejectRequest(r.Context(), actor, requestID, req.Reason)
	case leave.TransitionActionCancel:
		updated, err = l.leaveService.CancelRequest(r.Context(), actor, requestID)
	default:
		response.HandleError(w, validator.ValidationErrors{{
			Field: "action", Message: "action must be one of approve, reject, cancel",
		}})
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated successfully", leave.NewLeaveRequestResponse(updated))
}

// GetRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	request, err := l.leaveService.GetRequest(r.Context(), actor, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewLeaveRequestResponse(request))
}

// GetMyRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := l.leaveService.ListMyRequests(r.Context(), actor.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewLeaveRequestResponses(requests))
}

// ListRequests implements LeaveHandler. Admin view with optional filters.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if actor.Role != user.RoleAdmin {
		response.HandleError(w, user.ErrAdminPrivilegeRequired)
		return
	}

	var filter leave.LeaveRequestFilter

	if v := r.URL.Query().Get("status"); v != "" {
		status := leave.LeaveRequestStatus(v)
		if !status.IsValid() {
			response.HandleError(w, validator.ValidationErrors{{
				Field: "status", Message: "status must be one of pending, approved, rejected, cancelled",
			}})
			return
		}
		filter.Status = &status
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("department_id"); v != "" {
		filter.DepartmentID = &v
	}
	if v := r.URL.Query().Get("project_id"); v != "" {
		filter.ProjectID = &v
	}

	requests, err := l.leaveService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewLeaveRequestResponses(requests))
}

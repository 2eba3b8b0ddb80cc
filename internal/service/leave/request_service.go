package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/leave"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/user"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/accesscontrol"
)

// defaultStoreTimeout bounds the store call under a status transition so a
// stuck connection surfaces as a retryable timeout instead of hanging the
// request.
const defaultStoreTimeout = 5 * time.Second

type RequestService struct {
	acl *accesscontrol.Model
	leave.LeaveRequestRepository

	storeTimeout time.Duration
}

func NewRequestService(acl *accesscontrol.Model, leaveRequestRepository leave.LeaveRequestRepository) *RequestService {
	return &RequestService{
		acl:                    acl,
		LeaveRequestRepository: leaveRequestRepository,
		storeTimeout:           defaultStoreTimeout,
	}
}

var _ leave.LeaveService = (*RequestService)(nil)

// SubmitRequest creates a request in pending. Any authenticated employee may
// submit for themselves, so there is no access control check here; the
// identity middleware has already bound EmployeeID to the caller.
func (s *RequestService) SubmitRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	startDate, endDate := req.Dates()

	request := leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		LeaveType:  leave.LeaveTypeEnum(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

func (s *RequestService) ApproveRequest(ctx context.Context, actor user.Actor, requestID string) (leave.LeaveRequest, error) {
	if !s.acl.Permitted(actor.Role, accesscontrol.ResourceLeaveRequest, accesscontrol.ActionApprove) {
		return leave.LeaveRequest{}, user.ErrInsufficientPermissions
	}

	return s.transition(ctx, leave.StatusTransition{
		RequestID: requestID,
		From:      leave.LeaveRequestStatusPending,
		To:        leave.LeaveRequestStatusApproved,
		ActorID:   actor.EmployeeID,
	})
}

func (s *RequestService) RejectRequest(ctx context.Context, actor user.Actor, requestID string, reason *string) (leave.LeaveRequest, error) {
	if !s.acl.Permitted(actor.Role, accesscontrol.ResourceLeaveRequest, accesscontrol.ActionReject) {
		return leave.LeaveRequest{}, user.ErrInsufficientPermissions
	}

	return s.transition(ctx, leave.StatusTransition{
		RequestID: requestID,
		From:      leave.LeaveRequestStatusPending,
		To:        leave.LeaveRequestStatusRejected,
		ActorID:   actor.EmployeeID,
		Reason:    reason,
	})
}

// CancelRequest cancels a pending request. Owners cancel their own; elevated
// cancellation of someone else's request needs the admin role on top of the
// cancel grant, since the grant table does not encode ownership.
func (s *RequestService) CancelRequest(ctx context.Context, actor user.Actor, requestID string) (leave.LeaveRequest, error) {
	if !s.acl.Permitted(actor.Role, accesscontrol.ResourceLeaveRequest, accesscontrol.ActionCancel) {
		return leave.LeaveRequest{}, user.ErrInsufficientPermissions
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if request.EmployeeID != actor.EmployeeID && actor.Role != user.RoleAdmin {
		return leave.LeaveRequest{}, leave.ErrNotRequestOwner
	}

	return s.transition(ctx, leave.StatusTransition{
		RequestID: requestID,
		From:      leave.LeaveRequestStatusPending,
		To:        leave.LeaveRequestStatusCancelled,
		ActorID:   actor.EmployeeID,
	})
}

// transition applies the compare-and-set under a bounded timeout. Losing the
// race surfaces as ErrLeaveAlreadyProcessed from the repository; a deadline
// surfaces as the retryable ErrStoreTimeout.
func (s *RequestService) transition(ctx context.Context, t leave.StatusTransition) (leave.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	updated, err := s.LeaveRequestRepository.Transition(ctx, t)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return leave.LeaveRequest{}, leave.ErrStoreTimeout
		}
		return leave.LeaveRequest{}, err
	}

	return updated, nil
}

// GetRequest reads a single request. Employees only see their own; admins
// see any.
func (s *RequestService) GetRequest(ctx context.Context, actor user.Actor, requestID string) (leave.LeaveRequest, error) {
	if !s.acl.Permitted(actor.Role, accesscontrol.ResourceLeaveRequest, accesscontrol.ActionRead) {
		return leave.LeaveRequest{}, user.ErrInsufficientPermissions
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if request.EmployeeID != actor.EmployeeID && actor.Role != user.RoleAdmin {
		return leave.LeaveRequest{}, user.ErrScopeViolation
	}

	return request, nil
}

func (s *RequestService) ListMyRequests(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return s.LeaveRequestRepository.List(ctx, leave.LeaveRequestFilter{
		EmployeeID: &employeeID,
	})
}

func (s *RequestService) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	pending := leave.LeaveRequestStatusPending
	return s.LeaveRequestRepository.List(ctx, leave.LeaveRequestFilter{
		Status: &pending,
	})
}

func (s *RequestService) ListRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	return s.LeaveRequestRepository.List(ctx, filter)
}

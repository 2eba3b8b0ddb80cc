package leave

import (
	"context"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/user"
)

// LeaveService owns the request lifecycle. State-changing operations take the
// acting identity explicitly; authorization happens here, not in handlers.
type LeaveService interface {
	SubmitRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequest, error)
	ApproveRequest(ctx context.Context, actor user.Actor, requestID string) (LeaveRequest, error)
	RejectRequest(ctx context.Context, actor user.Actor, requestID string, reason *string) (LeaveRequest, error)
	CancelRequest(ctx context.Context, actor user.Actor, requestID string) (LeaveRequest, error)

	GetRequest(ctx context.Context, actor user.Actor, requestID string) (LeaveRequest, error)
	ListMyRequests(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListPending(ctx context.Context) ([]LeaveRequest, error)
	ListRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
}

package leave

import (
	"context"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)

	// Transition applies a compare-and-set status update. It returns
	// ErrLeaveAlreadyProcessed when the request exists but its status no
	// longer matches the expected one, so concurrent approvers cannot both
	// succeed.
	Transition(ctx context.Context, t StatusTransition) (LeaveRequest, error)
}

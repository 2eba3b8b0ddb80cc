package leave

import (
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/validator"
)

const minReasonLength = 10

type CreateLeaveRequestRequest struct {
	EmployeeID string `json:"-"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	} else if !LeaveTypeEnum(r.LeaveType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of: annual, maternity, casual, sick, personal, unpaid",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}

	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if !validator.MinLength(r.Reason, minReasonLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must be at least 10 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed date range. Call only after Validate has passed.
func (r *CreateLeaveRequestRequest) Dates() (time.Time, time.Time) {
	start, _ := time.Parse("2006-01-02", r.StartDate)
	end, _ := time.Parse("2006-01-02", r.EndDate)
	return start, end
}

const (
	TransitionActionApprove = "approve"
	TransitionActionReject  = "reject"
	TransitionActionCancel  = "cancel"
)

type TransitionLeaveRequestRequest struct {
	RequestID string  `json:"-"`
	Action    string  `json:"action"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *TransitionLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if !validator.IsInSlice(r.Action, []string{TransitionActionApprove, TransitionActionReject, TransitionActionCancel}) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of: approve, reject, cancel",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveRequestResponse is the wire form of a request. Dates go out as
// YYYY-MM-DD; timestamps as RFC 3339.
type LeaveRequestResponse struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	EmployeeName    *string    `json:"employee_name,omitempty"`
	LeaveType       string     `json:"leave_type"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	ApprovedBy      *string    `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CancelledBy     *string    `json:"cancelled_by,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	SubmittedAt     time.Time  `json:"submitted_at"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		LeaveType:       string(r.LeaveType),
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		Reason:          r.Reason,
		Status:          string(r.Status),
		ApprovedBy:      r.ApprovedBy,
		ApprovedAt:      r.ApprovedAt,
		RejectionReason: r.RejectionReason,
		CancelledBy:     r.CancelledBy,
		CancelledAt:     r.CancelledAt,
		SubmittedAt:     r.SubmittedAt,
	}
}

func NewLeaveRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	responses := make([]LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, NewLeaveRequestResponse(r))
	}
	return responses
}

// LeaveRequestFilter narrows list queries. Empty or "all" values mean no
// filter on that dimension.
type LeaveRequestFilter struct {
	EmployeeID   *string
	DepartmentID *string
	ProjectID    *string
	Status       *LeaveRequestStatus
	StartDate    *time.Time
	EndDate      *time.Time
}

// StatusTransition is the compare-and-set payload applied by the repository.
// From is the expected current status; the update only lands if it matches.
type StatusTransition struct {
	RequestID string
	From      LeaveRequestStatus
	To        LeaveRequestStatus
	ActorID   string
	Reason    *string
}

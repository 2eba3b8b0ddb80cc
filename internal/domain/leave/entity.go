package leave

import "time"

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending   LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved  LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected  LeaveRequestStatus = "rejected"
	LeaveRequestStatusCancelled LeaveRequestStatus = "cancelled"
)

func (s LeaveRequestStatus) IsValid() bool {
	switch s {
	case LeaveRequestStatusPending, LeaveRequestStatusApproved, LeaveRequestStatusRejected, LeaveRequestStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s LeaveRequestStatus) IsTerminal() bool {
	switch s {
	case LeaveRequestStatusApproved, LeaveRequestStatusRejected, LeaveRequestStatusCancelled:
		return true
	}
	return false
}

type LeaveTypeEnum string

const (
	LeaveTypeAnnual    LeaveTypeEnum = "annual"
	LeaveTypeMaternity LeaveTypeEnum = "maternity"
	LeaveTypeCasual    LeaveTypeEnum = "casual"
	LeaveTypeSick      LeaveTypeEnum = "sick"
	LeaveTypePersonal  LeaveTypeEnum = "personal"
	LeaveTypeUnpaid    LeaveTypeEnum = "unpaid"
)

// LeaveTypes is the closed set of request types. Parsing rejects anything
// outside it, so downstream code never sees an unknown type.
var LeaveTypes = []LeaveTypeEnum{
	LeaveTypeAnnual,
	LeaveTypeMaternity,
	LeaveTypeCasual,
	LeaveTypeSick,
	LeaveTypePersonal,
	LeaveTypeUnpaid,
}

func (t LeaveTypeEnum) IsValid() bool {
	for _, known := range LeaveTypes {
		if t == known {
			return true
		}
	}
	return false
}

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string

	LeaveType LeaveTypeEnum
	StartDate time.Time
	EndDate   time.Time
	Reason    string

	Status          LeaveRequestStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CancelledBy     *string
	CancelledAt     *time.Time

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for responses and filtering
	DepartmentID *string
	ProjectID    *string
	EmployeeName *string
}

// CoversDate reports whether d falls within [StartDate, EndDate], both
// boundary dates inclusive. Compared at day granularity; each time's calendar
// date is taken in its own location, so stored UTC dates match local clocks.
func (r LeaveRequest) CoversDate(d time.Time) bool {
	day := calendarDay(d)
	return !day.Before(calendarDay(r.StartDate)) && !day.After(calendarDay(r.EndDate))
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

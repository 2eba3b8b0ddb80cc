package attendance

import "time"

type SessionStatus string

const (
	SessionStatusActive   SessionStatus = "active"   // checked in, not yet out
	SessionStatusFinished SessionStatus = "finished" // checked in and out
	SessionStatusAbsent   SessionStatus = "absent"   // no check-in recorded
)

// Session is one employee-day attendance record, consumed read-only. Worked
// minutes are derived at write time by the attendance system that owns it.
type Session struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	CheckIn       *time.Time
	CheckOut      *time.Time
	WorkedMinutes int64
	Status        SessionStatus

	// Joined for filtering
	DepartmentID *string
	ProjectID    *string
}

package attendance

import (
	"context"
	"time"
)

// SessionFilter narrows session queries. Empty values mean no filter.
type SessionFilter struct {
	EmployeeID   *string
	DepartmentID *string
	ProjectID    *string
	StartDate    *time.Time
	EndDate      *time.Time
}

type SessionRepository interface {
	List(ctx context.Context, filter SessionFilter) ([]Session, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Session, error)
}

package dashboard

import (
	"context"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/user"
)

// DashboardService serves the admin view. Only admin callers may pass
// arbitrary filters; everything is recomputed per call, never cached.
type DashboardService interface {
	GetStats(ctx context.Context, actor user.Actor, query StatsQuery) (*AdminStatsResponse, error)
}

// EmployeeDashboardService serves the self-scoped employee view. A caller
// asking for another employee's data gets an authorization error.
type EmployeeDashboardService interface {
	GetStats(ctx context.Context, actor user.Actor, employeeID string) (*EmployeeStatsResponse, error)
	GetWeeklyHours(ctx context.Context, actor user.Actor, employeeID string) (*WeeklyHoursResponse, error)
}

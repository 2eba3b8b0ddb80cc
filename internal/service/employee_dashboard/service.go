package employee_dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/attendance"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/dashboard"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/leave"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

const clockFormat = "15:04"

type EmployeeDashboardServiceImpl struct {
	leaveRepo      leave.LeaveRequestRepository
	attendanceRepo attendance.SessionRepository

	// now is swapped in tests to pin "today"
	now func() time.Time
}

func NewEmployeeDashboardService(
	leaveRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.SessionRepository,
) dashboard.EmployeeDashboardService {
	return &EmployeeDashboardServiceImpl{
		leaveRepo:      leaveRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// authorize enforces the self-scope rule. Employees only read their own data;
// admins may read anyone's.
func (s *EmployeeDashboardServiceImpl) authorize(actor user.Actor, employeeID string) error {
	if actor.EmployeeID != employeeID && actor.Role != user.RoleAdmin {
		return user.ErrScopeViolation
	}
	return nil
}

// GetStats returns the employee's own dashboard card: today's session and
// their leave request counters. A missing session for today is a normal state,
// not an error.
func (s *EmployeeDashboardServiceImpl) GetStats(ctx context.Context, actor user.Actor, employeeID string) (*dashboard.EmployeeStatsResponse, error) {
	if err := s.authorize(actor, employeeID); err != nil {
		return nil, err
	}

	today := s.now()

	var (
		session    attendance.Session
		hasSession bool
		requests   []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		found, err := s.attendanceRepo.GetByEmployeeAndDate(gCtx, employeeID, today)
		if err != nil {
			if errors.Is(err, attendance.ErrSessionNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get today's session: %w", err)
		}
		session = found
		hasSession = true
		return nil
	})

	g.Go(func() error {
		var err error
		requests, err = s.leaveRepo.List(gCtx, leave.LeaveRequestFilter{
			EmployeeID: &employeeID,
		})
		if err != nil {
			return fmt.Errorf("failed to list leave requests: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	response := &dashboard.EmployeeStatsResponse{}
	for _, request := range requests {
		switch request.Status {
		case leave.LeaveRequestStatusApproved:
			response.LeavesApproved++
		case leave.LeaveRequestStatusPending:
			response.LeavesPending++
		}
	}

	if hasSession {
		response.CheckInTime = formatClock(session.CheckIn)
		response.CheckOutTime = formatClock(session.CheckOut)
		response.TodaySession = &dashboard.TodaySessionResponse{
			Status:    string(session.Status),
			StartTime: formatClock(session.CheckIn),
			EndTime:   formatClock(session.CheckOut),
		}
	}

	return response, nil
}

// GetWeeklyHours returns one entry per day for the trailing seven days, today
// included, oldest first. Days without a session report zero hours.
func (s *EmployeeDashboardServiceImpl) GetWeeklyHours(ctx context.Context, actor user.Actor, employeeID string) (*dashboard.WeeklyHoursResponse, error) {
	if err := s.authorize(actor, employeeID); err != nil {
		return nil, err
	}

	today := truncateToDay(s.now())
	start := today.AddDate(0, 0, -6)

	sessions, err := s.attendanceRepo.List(ctx, attendance.SessionFilter{
		EmployeeID: &employeeID,
		StartDate:  &start,
		EndDate:    &today,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	// Keyed by calendar date, not time.Time: session dates come back from the
	// store in UTC while the loop days carry the local zone, and time.Time map
	// keys compare locations too.
	minutesByDay := make(map[string]int64, len(sessions))
	for _, session := range sessions {
		minutesByDay[session.Date.Format("2006-01-02")] += session.WorkedMinutes
	}

	days := make([]dashboard.WeeklyHourItem, 0, 7)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		days = append(days, dashboard.WeeklyHourItem{
			Label: d.Weekday().String(),
			Hours: float64(minutesByDay[d.Format("2006-01-02")]) / 60,
		})
	}

	return &dashboard.WeeklyHoursResponse{
		StartDate: start.Format("2006-01-02"),
		EndDate:   today.Format("2006-01-02"),
		Days:      days,
	}, nil
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(clockFormat)
	return &formatted
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

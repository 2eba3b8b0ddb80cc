package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/attendance"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/dashboard"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/department"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/leave"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/project"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/user"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	leaveRepo      leave.LeaveRequestRepository
	attendanceRepo attendance.SessionRepository
	departmentRepo department.DepartmentRepository
	projectRepo    project.ProjectRepository
	logger         *slog.Logger

	// now is swapped in tests to pin "today"
	now func() time.Time
}

func NewDashboardService(
	leaveRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.SessionRepository,
	departmentRepo department.DepartmentRepository,
	projectRepo project.ProjectRepository,
	logger *slog.Logger,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		leaveRepo:      leaveRepo,
		attendanceRepo: attendanceRepo,
		departmentRepo: departmentRepo,
		projectRepo:    projectRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// GetStats recomputes the admin counters from the stores on every call.
// Attendance is best-effort: when that store fails, TotalWorkHours comes back
// nil and the leave counters are still served.
func (s *DashboardServiceImpl) GetStats(ctx context.Context, actor user.Actor, query dashboard.StatsQuery) (*dashboard.AdminStatsResponse, error) {
	if actor.Role != user.RoleAdmin {
		return nil, user.ErrAdminPrivilegeRequired
	}

	filter, err := s.parseFilter(ctx, query)
	if err != nil {
		return nil, err
	}

	var (
		requests      []leave.LeaveRequest
		sessions      []attendance.Session
		attendanceErr error
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var listErr error
		requests, listErr = s.leaveRepo.List(gCtx, leave.LeaveRequestFilter{
			DepartmentID: filter.DepartmentID,
			ProjectID:    filter.ProjectID,
			StartDate:    filter.StartDate,
			EndDate:      filter.EndDate,
		})
		if listErr != nil {
			return fmt.Errorf("failed to list leave requests: %w", listErr)
		}
		return nil
	})

	g.Go(func() error {
		sessions, attendanceErr = s.attendanceRepo.List(gCtx, attendance.SessionFilter{
			DepartmentID: filter.DepartmentID,
			ProjectID:    filter.ProjectID,
			StartDate:    filter.StartDate,
			EndDate:      filter.EndDate,
		})
		// Attendance outage degrades the payload rather than failing it.
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts := CountByStatus(requests)
	response := &dashboard.AdminStatsResponse{
		OnLeave:  OnLeaveCount(requests, s.now()),
		Approved: counts[leave.LeaveRequestStatusApproved],
		Pending:  counts[leave.LeaveRequestStatusPending],
		Rejected: counts[leave.LeaveRequestStatusRejected],
	}

	if attendanceErr != nil {
		s.logger.Warn("attendance store unavailable, omitting work hours",
			slog.Any("error", attendanceErr))
	} else {
		formatted := FormatWorkHours(float64(SumWorkedMinutes(sessions)) / 60)
		response.TotalWorkHours = &formatted
	}

	return response, nil
}

// parseFilter validates the raw query. Department and project values are
// checked against the directory; "all" and empty both mean unfiltered.
func (s *DashboardServiceImpl) parseFilter(ctx context.Context, query dashboard.StatsQuery) (dashboard.StatsFilter, error) {
	var filter dashboard.StatsFilter
	var errs validator.ValidationErrors

	if query.DepartmentID != "" && query.DepartmentID != dashboard.FilterAll {
		if _, err := s.departmentRepo.GetByID(ctx, query.DepartmentID); err != nil {
			return filter, err
		}
		id := query.DepartmentID
		filter.DepartmentID = &id
	}

	if query.ProjectID != "" && query.ProjectID != dashboard.FilterAll {
		if _, err := s.projectRepo.GetByID(ctx, query.ProjectID); err != nil {
			return filter, err
		}
		id := query.ProjectID
		filter.ProjectID = &id
	}

	if query.StartDate != "" {
		if start, ok := validator.IsValidDate(query.StartDate); ok {
			filter.StartDate = &start
		} else {
			errs = append(errs, validator.ValidationError{
				Field: "start_date", Message: "must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if query.EndDate != "" {
		if end, ok := validator.IsValidDate(query.EndDate); ok {
			filter.EndDate = &end
		} else {
			errs = append(errs, validator.ValidationError{
				Field: "end_date", Message: "must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field: "end_date", Message: "must be on or after start_date",
		})
	}

	if len(errs) > 0 {
		return filter, errs
	}

	return filter, nil
}

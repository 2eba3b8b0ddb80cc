package employee_dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/attendance"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/leave"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLeaveRepo struct {
	leave.LeaveRequestRepository

	requests   []leave.LeaveRequest
	lastFilter leave.LeaveRequestFilter
}

func (s *stubLeaveRepo) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	s.lastFilter = filter
	return s.requests, nil
}

type stubSessionRepo struct {
	sessions []attendance.Session
	today    *attendance.Session
}

func (s *stubSessionRepo) List(ctx context.Context, filter attendance.SessionFilter) ([]attendance.Session, error) {
	return s.sessions, nil
}

func (s *stubSessionRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Session, error) {
	if s.today == nil {
		return attendance.Session{}, attendance.ErrSessionNotFound
	}
	return *s.today, nil
}

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func clock(value string) *time.Time {
	t, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic(err)
	}
	return &t
}

func newService(leaves *stubLeaveRepo, sessions *stubSessionRepo) *EmployeeDashboardServiceImpl {
	return &EmployeeDashboardServiceImpl{
		leaveRepo:      leaves,
		attendanceRepo: sessions,
		now:            func() time.Time { return day("2026-08-31") },
	}
}

var (
	adminActor = user.Actor{EmployeeID: "emp-admin", Role: user.RoleAdmin}
	selfActor  = user.Actor{EmployeeID: "emp-1", Role: user.RoleEmployee}
)

func TestGetStats_SelfScope(t *testing.T) {
	s := newService(&stubLeaveRepo{}, &stubSessionRepo{})

	_, err := s.GetStats(context.Background(), selfActor, "emp-2")

	require.ErrorIs(t, err, user.ErrScopeViolation)
}

func TestGetStats_AdminMayReadOthers(t *testing.T) {
	s := newService(&stubLeaveRepo{}, &stubSessionRepo{})

	_, err := s.GetStats(context.Background(), adminActor, "emp-1")

	require.NoError(t, err)
}

func TestGetStats_CountsAndTodaySession(t *testing.T) {
	leaves := &stubLeaveRepo{requests: []leave.LeaveRequest{
		{Status: leave.LeaveRequestStatusApproved},
		{Status: leave.LeaveRequestStatusApproved},
		{Status: leave.LeaveRequestStatusPending},
		{Status: leave.LeaveRequestStatusRejected},
		{Status: leave.LeaveRequestStatusCancelled},
	}}
	sessions := &stubSessionRepo{today: &attendance.Session{
		Status:  attendance.SessionStatusActive,
		CheckIn: clock("2026-08-31 09:05"),
	}}
	s := newService(leaves, sessions)

	stats, err := s.GetStats(context.Background(), selfActor, "emp-1")

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.LeavesApproved)
	assert.Equal(t, int64(1), stats.LeavesPending)
	require.NotNil(t, stats.CheckInTime)
	assert.Equal(t, "09:05", *stats.CheckInTime)
	assert.Nil(t, stats.CheckOutTime)
	require.NotNil(t, stats.TodaySession)
	assert.Equal(t, "active", stats.TodaySession.Status)

	// Query was scoped to the requested employee
	require.NotNil(t, leaves.lastFilter.EmployeeID)
	assert.Equal(t, "emp-1", *leaves.lastFilter.EmployeeID)
}

func TestGetStats_NoSessionToday(t *testing.T) {
	s := newService(&stubLeaveRepo{}, &stubSessionRepo{})

	stats, err := s.GetStats(context.Background(), selfActor, "emp-1")

	require.NoError(t, err)
	assert.Nil(t, stats.CheckInTime)
	assert.Nil(t, stats.CheckOutTime)
	assert.Nil(t, stats.TodaySession)
}

func TestGetWeeklyHours_TrailingSevenDays(t *testing.T) {
	sessions := &stubSessionRepo{sessions: []attendance.Session{
		{Date: day("2026-08-25"), WorkedMinutes: 480}, // Tuesday, window start
		{Date: day("2026-08-28"), WorkedMinutes: 462}, // Friday
		{Date: day("2026-08-31"), WorkedMinutes: 125}, // Monday, today
	}}
	s := newService(&stubLeaveRepo{}, sessions)

	hours, err := s.GetWeeklyHours(context.Background(), selfActor, "emp-1")

	require.NoError(t, err)
	assert.Equal(t, "2026-08-25", hours.StartDate)
	assert.Equal(t, "2026-08-31", hours.EndDate)
	require.Len(t, hours.Days, 7)

	assert.Equal(t, "Tuesday", hours.Days[0].Label)
	assert.InDelta(t, 8.0, hours.Days[0].Hours, 0.001)

	assert.Equal(t, "Friday", hours.Days[3].Label)
	assert.InDelta(t, 7.7, hours.Days[3].Hours, 0.001)

	assert.Equal(t, "Monday", hours.Days[6].Label)
	assert.InDelta(t, 2.0833, hours.Days[6].Hours, 0.001)

	// Days without sessions report zero
	assert.Zero(t, hours.Days[1].Hours)
	assert.Zero(t, hours.Days[2].Hours)
}

func TestGetWeeklyHours_NonUTCServerZone(t *testing.T) {
	// Session dates come back from the store in UTC; "today" carries the
	// server's zone. The minutes must still land on the right calendar day.
	local := time.FixedZone("UTC+5", 5*60*60)
	sessions := &stubSessionRepo{sessions: []attendance.Session{
		{Date: day("2026-08-30"), WorkedMinutes: 480}, // Sunday, stored as UTC
		{Date: day("2026-08-31"), WorkedMinutes: 125}, // Monday, today
	}}
	s := newService(&stubLeaveRepo{}, sessions)
	s.now = func() time.Time { return time.Date(2026, time.August, 31, 12, 0, 0, 0, local) }

	hours, err := s.GetWeeklyHours(context.Background(), selfActor, "emp-1")

	require.NoError(t, err)
	require.Len(t, hours.Days, 7)

	assert.Equal(t, "Sunday", hours.Days[5].Label)
	assert.InDelta(t, 8.0, hours.Days[5].Hours, 0.001)

	assert.Equal(t, "Monday", hours.Days[6].Label)
	assert.InDelta(t, 2.0833, hours.Days[6].Hours, 0.001)
}

func TestGetWeeklyHours_SelfScope(t *testing.T) {
	s := newService(&stubLeaveRepo{}, &stubSessionRepo{})

	_, err := s.GetWeeklyHours(context.Background(), selfActor, "emp-2")

	require.ErrorIs(t, err, user.ErrScopeViolation)
}

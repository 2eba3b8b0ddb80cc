package leave

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/leave"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/user"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/accesscontrol"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRequestRepo mimics the per-record compare-and-set of the PostgreSQL
// repository so transition races behave the same way in tests.
type memoryRequestRepo struct {
	mu       sync.Mutex
	requests map[string]leave.LeaveRequest
	seq      int
}

func newMemoryRequestRepo() *memoryRequestRepo {
	return &memoryRequestRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (m *memoryRequestRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	now := time.Now()
	request.ID = fmt.Sprintf("req-%d", m.seq)
	request.SubmittedAt = now
	request.CreatedAt = now
	request.UpdatedAt = now
	m.requests[request.ID] = request
	return request, nil
}

func (m *memoryRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	request, ok := m.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (m *memoryRequestRepo) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []leave.LeaveRequest
	for _, request := range m.requests {
		if filter.EmployeeID != nil && request.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && request.Status != *filter.Status {
			continue
		}
		result = append(result, request)
	}
	return result, nil
}

func (m *memoryRequestRepo) Transition(ctx context.Context, t leave.StatusTransition) (leave.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	request, ok := m.requests[t.RequestID]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if request.Status != t.From {
		return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
	}

	now := time.Now()
	request.Status = t.To
	request.UpdatedAt = now
	switch t.To {
	case leave.LeaveRequestStatusApproved:
		request.ApprovedBy = &t.ActorID
		request.ApprovedAt = &now
	case leave.LeaveRequestStatusRejected:
		request.ApprovedBy = &t.ActorID
		request.ApprovedAt = &now
		request.RejectionReason = t.Reason
	case leave.LeaveRequestStatusCancelled:
		request.CancelledBy = &t.ActorID
		request.CancelledAt = &now
	}
	m.requests[t.RequestID] = request
	return request, nil
}

func newTestService(t *testing.T) (*RequestService, *memoryRequestRepo) {
	t.Helper()
	acl, err := accesscontrol.Default()
	require.NoError(t, err)
	repo := newMemoryRequestRepo()
	return NewRequestService(acl, repo), repo
}

func submitPending(t *testing.T, s *RequestService, employeeID string) leave.LeaveRequest {
	t.Helper()
	created, err := s.SubmitRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: employeeID,
		LeaveType:  "annual",
		StartDate:  "2026-09-07",
		EndDate:    "2026-09-11",
		Reason:     "family trip out of town",
	})
	require.NoError(t, err)
	return created
}

var (
	adminActor    = user.Actor{EmployeeID: "emp-admin", Role: user.RoleAdmin}
	employeeActor = user.Actor{EmployeeID: "emp-1", Role: user.RoleEmployee}
)

func TestSubmitRequest_CreatesPending(t *testing.T) {
	s, _ := newTestService(t)

	created := submitPending(t, s, "emp-1")

	assert.Equal(t, leave.LeaveRequestStatusPending, created.Status)
	assert.Equal(t, "emp-1", created.EmployeeID)
	assert.Equal(t, leave.LeaveTypeAnnual, created.LeaveType)
	assert.False(t, created.EndDate.Before(created.StartDate))
	assert.NotEmpty(t, created.ID)
}

func TestSubmitRequest_ValidationFailures(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		req   leave.CreateLeaveRequestRequest
		field string
	}{
		{
			name: "unknown leave type",
			req: leave.CreateLeaveRequestRequest{
				EmployeeID: "emp-1", LeaveType: "sabbatical",
				StartDate: "2026-09-07", EndDate: "2026-09-08",
				Reason: "long enough reason",
			},
			field: "leave_type",
		},
		{
			name: "end before start",
			req: leave.CreateLeaveRequestRequest{
				EmployeeID: "emp-1", LeaveType: "sick",
				StartDate: "2026-09-08", EndDate: "2026-09-07",
				Reason: "long enough reason",
			},
			field: "end_date",
		},
		{
			name: "reason too short",
			req: leave.CreateLeaveRequestRequest{
				EmployeeID: "emp-1", LeaveType: "sick",
				StartDate: "2026-09-07", EndDate: "2026-09-08",
				Reason: "flu",
			},
			field: "reason",
		},
		{
			name: "malformed date",
			req: leave.CreateLeaveRequestRequest{
				EmployeeID: "emp-1", LeaveType: "sick",
				StartDate: "07/09/2026", EndDate: "2026-09-08",
				Reason: "long enough reason",
			},
			field: "start_date",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := s.SubmitRequest(ctx, c.req)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), c.field)
		})
	}
}

func TestSubmitRequest_ZeroDurationRangeAllowed(t *testing.T) {
	s, _ := newTestService(t)

	created, err := s.SubmitRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1", LeaveType: "casual",
		StartDate: "2026-09-07", EndDate: "2026-09-07",
		Reason: "single day errand",
	})

	require.NoError(t, err)
	assert.Equal(t, created.StartDate, created.EndDate)
}

func TestApproveRequest_AdminSucceeds(t *testing.T) {
	s, _ := newTestService(t)
	created := submitPending(t, s, "emp-1")

	approved, err := s.ApproveRequest(context.Background(), adminActor, created.ID)

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "emp-admin", *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)
}

func TestApproveRequest_EmployeeForbidden(t *testing.T) {
	s, repo := newTestService(t)
	created := submitPending(t, s, "emp-1")

	_, err := s.ApproveRequest(context.Background(), employeeActor, created.ID)

	require.ErrorIs(t, err, user.ErrInsufficientPermissions)

	// Record untouched
	stored, getErr := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, getErr)
	assert.Equal(t, leave.LeaveRequestStatusPending, stored.Status)
}

func TestApproveRequest_AlreadyTerminal(t *testing.T) {
	s, repo := newTestService(t)
	created := submitPending(t, s, "emp-1")

	_, err := s.ApproveRequest(context.Background(), adminActor, created.ID)
	require.NoError(t, err)

	_, err = s.ApproveRequest(context.Background(), adminActor, created.ID)
	require.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)

	// No silent overwrite on the second call
	stored, getErr := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, getErr)
	assert.Equal(t, leave.LeaveRequestStatusApproved, stored.Status)
	assert.Equal(t, "emp-admin", *stored.ApprovedBy)
}

func TestRejectRequest_SetsReason(t *testing.T) {
	s, _ := newTestService(t)
	created := submitPending(t, s, "emp-1")

	reason := "insufficient coverage that week"
	rejected, err := s.RejectRequest(context.Background(), adminActor, created.ID, &reason)

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, reason, *rejected.RejectionReason)
}

func TestConcurrentApproveReject_ExactlyOneWins(t *testing.T) {
	s, repo := newTestService(t)
	created := submitPending(t, s, "emp-1")

	var wg sync.WaitGroup
	wg.Add(2)
	var approveErr, rejectErr error

	go func() {
		defer wg.Done()
		_, approveErr = s.ApproveRequest(context.Background(), adminActor, created.ID)
	}()
	go func() {
		defer wg.Done()
		reason := "team is short staffed"
		_, rejectErr = s.RejectRequest(context.Background(), adminActor, created.ID, &reason)
	}()
	wg.Wait()

	if approveErr == nil {
		require.ErrorIs(t, rejectErr, leave.ErrLeaveAlreadyProcessed)
	} else {
		require.ErrorIs(t, approveErr, leave.ErrLeaveAlreadyProcessed)
		require.NoError(t, rejectErr)
	}

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Status.IsTerminal())
}

func TestCancelRequest_OwnerCancelsPending(t *testing.T) {
	s, _ := newTestService(t)
	created := submitPending(t, s, "emp-1")

	cancelled, err := s.CancelRequest(context.Background(), employeeActor, created.ID)

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledBy)
	assert.Equal(t, "emp-1", *cancelled.CancelledBy)
}

func TestCancelRequest_NonOwnerEmployeeForbidden(t *testing.T) {
	s, _ := newTestService(t)
	created := submitPending(t, s, "emp-2")

	_, err := s.CancelRequest(context.Background(), employeeActor, created.ID)

	require.ErrorIs(t, err, leave.ErrNotRequestOwner)
}

func TestCancelRequest_AdminCancelsAnyPending(t *testing.T) {
	s, _ := newTestService(t)
	created := submitPending(t, s, "emp-2")

	cancelled, err := s.CancelRequest(context.Background(), adminActor, created.ID)

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusCancelled, cancelled.Status)
}

func TestCancelRequest_ApprovedRejected(t *testing.T) {
	s, _ := newTestService(t)
	created := submitPending(t, s, "emp-1")

	_, err := s.ApproveRequest(context.Background(), adminActor, created.ID)
	require.NoError(t, err)

	_, err = s.CancelRequest(context.Background(), employeeActor, created.ID)
	require.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

// slowRequestRepo blocks transitions until the context gives up.
type slowRequestRepo struct {
	*memoryRequestRepo
}

func (s *slowRequestRepo) Transition(ctx context.Context, t leave.StatusTransition) (leave.LeaveRequest, error) {
	<-ctx.Done()
	return leave.LeaveRequest{}, ctx.Err()
}

func TestTransition_TimeoutIsRetryable(t *testing.T) {
	acl, err := accesscontrol.Default()
	require.NoError(t, err)

	repo := &slowRequestRepo{memoryRequestRepo: newMemoryRequestRepo()}
	s := NewRequestService(acl, repo)
	s.storeTimeout = 10 * time.Millisecond

	_, err = s.ApproveRequest(context.Background(), adminActor, "req-1")

	require.ErrorIs(t, err, leave.ErrStoreTimeout)
	assert.False(t, errors.Is(err, leave.ErrLeaveAlreadyProcessed))
}

func TestGetRequest_ScopeRules(t *testing.T) {
	s, _ := newTestService(t)
	created := submitPending(t, s, "emp-2")

	// Owner reads their own
	owner := user.Actor{EmployeeID: "emp-2", Role: user.RoleEmployee}
	got, err := s.GetRequest(context.Background(), owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Admin reads anyone's
	_, err = s.GetRequest(context.Background(), adminActor, created.ID)
	require.NoError(t, err)

	// Another employee is shut out
	_, err = s.GetRequest(context.Background(), employeeActor, created.ID)
	require.ErrorIs(t, err, user.ErrScopeViolation)
}

func TestListPending_FiltersByStatus(t *testing.T) {
	s, _ := newTestService(t)
	first := submitPending(t, s, "emp-1")
	second := submitPending(t, s, "emp-2")
	third := submitPending(t, s, "emp-3")

	_, err := s.ApproveRequest(context.Background(), adminActor, second.ID)
	require.NoError(t, err)

	pending, err := s.ListPending(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(pending))
	for _, r := range pending {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []string{first.ID, third.ID}, ids)
}

func TestListMyRequests_ScopedToEmployee(t *testing.T) {
	s, _ := newTestService(t)
	mine := submitPending(t, s, "emp-1")
	submitPending(t, s, "emp-2")

	requests, err := s.ListMyRequests(context.Background(), "emp-1")
	require.NoError(t, err)

	require.Len(t, requests, 1)
	assert.Equal(t, mine.ID, requests[0].ID)
}

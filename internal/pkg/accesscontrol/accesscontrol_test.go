package accesscontrol

import (
	"testing"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultModel_LeavePermissions(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	cases := []struct {
		role     user.Role
		action   Action
		expected bool
	}{
		{user.RoleAdmin, ActionApprove, true},
		{user.RoleAdmin, ActionReject, true},
		{user.RoleAdmin, ActionCancel, true},
		{user.RoleEmployee, ActionApprove, false},
		{user.RoleEmployee, ActionReject, false},
		{user.RoleEmployee, ActionCreate, true},
		{user.RoleEmployee, ActionCancel, true},
		{user.RoleEmployee, ActionRead, true},
	}

	for _, c := range cases {
		got := m.Permitted(c.role, ResourceLeaveRequest, c.action)
		assert.Equal(t, c.expected, got, "Permitted(%s, leaveRequest, %s)", c.role, c.action)
	}
}

func TestDefaultModel_ProjectPermissions(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	for _, action := range []Action{ActionCreate, ActionShare, ActionUpdate, ActionDelete} {
		assert.True(t, m.Permitted(user.RoleAdmin, ResourceProject, action))
		assert.False(t, m.Permitted(user.RoleEmployee, ResourceProject, action))
	}
}

func TestNew_RejectsUnknownResource(t *testing.T) {
	baseline := []Statement{
		{Resource: ResourceLeaveRequest, Actions: []Action{ActionCreate}},
	}
	overrides := map[user.Role][]Statement{
		user.RoleAdmin: {
			{Resource: "payroll", Actions: []Action{ActionCreate}},
		},
	}

	_, err := New(baseline, overrides)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resource")
}

func TestNew_RejectsUnknownAction(t *testing.T) {
	baseline := []Statement{
		{Resource: ResourceLeaveRequest, Actions: []Action{ActionCreate, ActionRead}},
	}
	overrides := map[user.Role][]Statement{
		user.RoleEmployee: {
			{Resource: ResourceLeaveRequest, Actions: []Action{ActionApprove}},
		},
	}

	_, err := New(baseline, overrides)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action")
}

func TestNew_RejectsUnknownRole(t *testing.T) {
	baseline := []Statement{
		{Resource: ResourceLeaveRequest, Actions: []Action{ActionCreate}},
	}
	overrides := map[user.Role][]Statement{
		user.Role("superuser"): {
			{Resource: ResourceLeaveRequest, Actions: []Action{ActionCreate}},
		},
	}

	_, err := New(baseline, overrides)
	require.Error(t, err)
}

func TestPermitted_UnknownRoleDenied(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	assert.False(t, m.Permitted(user.Role("intern"), ResourceLeaveRequest, ActionRead))
}

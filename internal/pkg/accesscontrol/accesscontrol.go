package accesscontrol

import (
	"fmt"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/user"
)

type Resource string

const (
	ResourceLeaveRequest Resource = "leaveRequest"
	ResourceProject      Resource = "project"
)

type Action string

const (
	ActionCreate  Action = "create"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionCancel  Action = "cancel"
	ActionRead    Action = "read"
	ActionShare   Action = "share"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
)

// Statement grants a set of actions on a single resource.
type Statement struct {
	Resource Resource
	Actions  []Action
}

type grant struct {
	role     user.Role
	resource Resource
	action   Action
}

// Model answers Permitted(role, resource, action). It is built once at
// startup from a baseline schema plus per-role overrides and is immutable
// afterwards, so lookups need no locking.
type Model struct {
	schema map[Resource]map[Action]bool
	grants map[grant]bool
}

// New builds the effective permission table. Every override must reference a
// (resource, action) pair present in the baseline schema; an unknown pair is
// a configuration error and fails construction rather than silently denying
// at request time.
func New(baseline []Statement, overrides map[user.Role][]Statement) (*Model, error) {
	m := &Model{
		schema: make(map[Resource]map[Action]bool),
		grants: make(map[grant]bool),
	}

	for _, st := range baseline {
		if m.schema[st.Resource] == nil {
			m.schema[st.Resource] = make(map[Action]bool)
		}
		for _, a := range st.Actions {
			m.schema[st.Resource][a] = true
		}
	}

	for role, statements := range overrides {
		if !role.IsValid() {
			return nil, fmt.Errorf("access control: unknown role %q", role)
		}
		for _, st := range statements {
			actions, ok := m.schema[st.Resource]
			if !ok {
				return nil, fmt.Errorf("access control: role %q references unknown resource %q", role, st.Resource)
			}
			for _, a := range st.Actions {
				if !actions[a] {
					return nil, fmt.Errorf("access control: role %q references unknown action %q on resource %q", role, a, st.Resource)
				}
				m.grants[grant{role: role, resource: st.Resource, action: a}] = true
			}
		}
	}

	return m, nil
}

// Permitted reports whether the role may perform the action on the resource.
// Deterministic, no I/O.
func (m *Model) Permitted(role user.Role, resource Resource, action Action) bool {
	return m.grants[grant{role: role, resource: resource, action: action}]
}

// Default returns the model used in production: the closed statement table
// for the leave workflow and the project screens.
func Default() (*Model, error) {
	baseline := []Statement{
		{Resource: ResourceLeaveRequest, Actions: []Action{ActionCreate, ActionApprove, ActionReject, ActionCancel, ActionRead}},
		{Resource: ResourceProject, Actions: []Action{ActionCreate, ActionShare, ActionUpdate, ActionDelete}},
	}

	overrides := map[user.Role][]Statement{
		user.RoleAdmin: {
			{Resource: ResourceLeaveRequest, Actions: []Action{ActionCreate, ActionApprove, ActionReject, ActionCancel, ActionRead}},
			{Resource: ResourceProject, Actions: []Action{ActionCreate, ActionShare, ActionUpdate, ActionDelete}},
		},
		user.RoleEmployee: {
			{Resource: ResourceLeaveRequest, Actions: []Action{ActionCreate, ActionCancel, ActionRead}},
		},
	}

	return New(baseline, overrides)
}

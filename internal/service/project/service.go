package project

import (
	"context"
	"fmt"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/project"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/user"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/accesscontrol"
)

type ProjectServiceImpl struct {
	acl *accesscontrol.Model
	project.ProjectRepository
}

func NewProjectService(acl *accesscontrol.Model, projectRepository project.ProjectRepository) project.ProjectService {
	return &ProjectServiceImpl{
		acl:               acl,
		ProjectRepository: projectRepository,
	}
}

func (s *ProjectServiceImpl) CreateProject(ctx context.Context, actor user.Actor, req project.CreateProjectRequest) (project.Project, error) {
	if !s.acl.Permitted(actor.Role, accesscontrol.ResourceProject, accesscontrol.ActionCreate) {
		return project.Project{}, user.ErrInsufficientPermissions
	}

	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	created, err := s.ProjectRepository.Create(ctx, project.Project{
		Name:         req.Name,
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
		CreatedBy:    actor.EmployeeID,
	})
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return created, nil
}

// GetProject returns a project the caller can see. There is no read grant on
// the project resource, so visibility is ownership or membership of the
// shared list; admins see everything.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, actor user.Actor, id string) (project.Project, error) {
	found, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.Project{}, err
	}

	if !s.visible(actor, found) {
		return project.Project{}, user.ErrScopeViolation
	}

	return found, nil
}

func (s *ProjectServiceImpl) ListProjects(ctx context.Context, actor user.Actor) ([]project.Project, error) {
	projects, err := s.ProjectRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	if actor.Role == user.RoleAdmin {
		return projects, nil
	}

	visible := make([]project.Project, 0, len(projects))
	for _, p := range projects {
		if s.visible(actor, p) {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, actor user.Actor, req project.UpdateProjectRequest) (project.Project, error) {
	if !s.acl.Permitted(actor.Role, accesscontrol.ResourceProject, accesscontrol.ActionUpdate) {
		return project.Project{}, user.ErrInsufficientPermissions
	}

	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	if err := s.ProjectRepository.Update(ctx, req); err != nil {
		return project.Project{}, err
	}

	return s.ProjectRepository.GetByID(ctx, req.ID)
}

func (s *ProjectServiceImpl) ShareProject(ctx context.Context, actor user.Actor, req project.ShareProjectRequest) (project.Project, error) {
	if !s.acl.Permitted(actor.Role, accesscontrol.ResourceProject, accesscontrol.ActionShare) {
		return project.Project{}, user.ErrInsufficientPermissions
	}

	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	if err := s.ProjectRepository.Share(ctx, req.ID, req.EmployeeIDs); err != nil {
		return project.Project{}, err
	}

	return s.ProjectRepository.GetByID(ctx, req.ID)
}

func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, actor user.Actor, id string) error {
	if !s.acl.Permitted(actor.Role, accesscontrol.ResourceProject, accesscontrol.ActionDelete) {
		return user.ErrInsufficientPermissions
	}

	return s.ProjectRepository.Delete(ctx, id)
}

func (s *ProjectServiceImpl) visible(actor user.Actor, p project.Project) bool {
	if actor.Role == user.RoleAdmin {
		return true
	}
	if p.CreatedBy == actor.EmployeeID {
		return true
	}
	for _, id := range p.SharedWith {
		if id == actor.EmployeeID {
			return true
		}
	}
	return false
}

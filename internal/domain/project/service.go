package project

import (
	"context"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/user"
)

type ProjectService interface {
	CreateProject(ctx context.Context, actor user.Actor, req CreateProjectRequest) (Project, error)
	GetProject(ctx context.Context, actor user.Actor, id string) (Project, error)
	ListProjects(ctx context.Context, actor user.Actor) ([]Project, error)
	UpdateProject(ctx context.Context, actor user.Actor, req UpdateProjectRequest) (Project, error)
	ShareProject(ctx context.Context, actor user.Actor, req ShareProjectRequest) (Project, error)
	DeleteProject(ctx context.Context, actor user.Actor, id string) error
}

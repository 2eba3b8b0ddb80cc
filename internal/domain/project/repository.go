package project

import "context"

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	List(ctx context.Context) ([]Project, error)
	Update(ctx context.Context, req UpdateProjectRequest) error
	Share(ctx context.Context, id string, employeeIDs []string) error
	Delete(ctx context.Context, id string) error
}

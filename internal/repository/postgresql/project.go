package postgresql

import (
	"context"
	"errors"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/project"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	p.ID = uuid.NewString()

	query := `
		INSERT INTO projects (id, name, description, department_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.Name, p.Description, p.DepartmentID, p.CreatedBy,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return project.Project{}, project.ErrProjectNameExists
		}
		return project.Project{}, err
	}

	return p, nil
}

func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name, p.description, p.department_id, p.created_by,
			   COALESCE(array_agg(ps.employee_id) FILTER (WHERE ps.employee_id IS NOT NULL), '{}'),
			   p.created_at, p.updated_at
		FROM projects p
		LEFT JOIN project_shares ps ON ps.project_id = p.id
		WHERE p.id = $1
		GROUP BY p.id
	`

	var p project.Project
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.DepartmentID, &p.CreatedBy,
		&p.SharedWith, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}

	return p, nil
}

func (r *projectRepositoryImpl) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name, p.description, p.department_id, p.created_by,
			   COALESCE(array_agg(ps.employee_id) FILTER (WHERE ps.employee_id IS NOT NULL), '{}'),
			   p.created_at, p.updated_at
		FROM projects p
		LEFT JOIN project_shares ps ON ps.project_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.DepartmentID, &p.CreatedBy,
			&p.SharedWith, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (r *projectRepositoryImpl) Update(ctx context.Context, req project.UpdateProjectRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET name = COALESCE($2, name),
			description = COALESCE($3, description),
			department_id = COALESCE($4, department_id),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Name, req.Description, req.DepartmentID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return project.ErrProjectNameExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

// Share replaces the shared-with list atomically.
func (r *projectRepositoryImpl) Share(ctx context.Context, id string, employeeIDs []string) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		var exists bool
		if err := q.QueryRow(txCtx, `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return project.ErrProjectNotFound
		}

		if _, err := q.Exec(txCtx, `DELETE FROM project_shares WHERE project_id = $1`, id); err != nil {
			return err
		}

		for _, employeeID := range employeeIDs {
			_, err := q.Exec(txCtx, `
				INSERT INTO project_shares (project_id, employee_id, created_at)
				VALUES ($1, $2, NOW())
				ON CONFLICT DO NOTHING
			`, id, employeeID)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

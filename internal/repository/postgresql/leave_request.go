package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/leave"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type,
	lr.start_date, lr.end_date, lr.reason, lr.status,
	lr.approved_by, lr.approved_at, lr.rejection_reason,
	lr.cancelled_by, lr.cancelled_at,
	lr.submitted_at, lr.created_at, lr.updated_at,
	e.department_id, e.project_id, e.name`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveType,
		&lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status,
		&lr.ApprovedBy, &lr.ApprovedAt, &lr.RejectionReason,
		&lr.CancelledBy, &lr.CancelledAt,
		&lr.SubmittedAt, &lr.CreatedAt, &lr.UpdatedAt,
		&lr.DepartmentID, &lr.ProjectID, &lr.EmployeeName,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	request.ID = uuid.NewString()

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type,
			start_date, end_date, reason, status,
			submitted_at, created_at, updated_at
		) VALUES (
			$1, $2, $3,
			$4, $5, $6, $7,
			NOW(), NOW(), NOW()
		) RETURNING submitted_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.LeaveType,
		request.StartDate, request.EndDate, request.Reason, request.Status,
	).Scan(&request.SubmittedAt, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1
	`

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE 1=1`
	var args []any

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND lr.employee_id = $%d", len(args))
	}
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		query += fmt.Sprintf(" AND e.department_id = $%d", len(args))
	}
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		query += fmt.Sprintf(" AND e.project_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND lr.status = $%d", len(args))
	}
	// Date bounds select requests whose range overlaps the window
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND lr.end_date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND lr.start_date <= $%d", len(args))
	}

	query += " ORDER BY lr.submitted_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}

// Transition applies the status change only when the stored status still
// matches t.From. A concurrent writer that got there first leaves zero rows
// to update, which is reported as ErrLeaveAlreadyProcessed.
func (r *leaveRequestRepositoryImpl) Transition(ctx context.Context, t leave.StatusTransition) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	var query string
	args := []any{t.RequestID, t.From, t.To, t.ActorID}

	switch t.To {
	case leave.LeaveRequestStatusApproved:
		query = `
			UPDATE leave_requests
			SET status = $3, approved_by = $4, approved_at = NOW(), updated_at = NOW()
			WHERE id = $1 AND status = $2
			RETURNING id
		`
	case leave.LeaveRequestStatusRejected:
		args = append(args, t.Reason)
		query = `
			UPDATE leave_requests
			SET status = $3, approved_by = $4, approved_at = NOW(), rejection_reason = $5, updated_at = NOW()
			WHERE id = $1 AND status = $2
			RETURNING id
		`
	case leave.LeaveRequestStatusCancelled:
		query = `
			UPDATE leave_requests
			SET status = $3, cancelled_by = $4, cancelled_at = NOW(), updated_at = NOW()
			WHERE id = $1 AND status = $2
			RETURNING id
		`
	default:
		return leave.LeaveRequest{}, fmt.Errorf("unsupported target status %q", t.To)
	}

	var id string
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Zero rows means the request is gone or someone else won the race
			if _, getErr := r.GetByID(ctx, t.RequestID); getErr != nil {
				return leave.LeaveRequest{}, getErr
			}
			return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
		}
		return leave.LeaveRequest{}, err
	}

	return r.GetByID(ctx, id)
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/attendance"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// attendanceRepositoryImpl reads sessions owned by the attendance system.
// Nothing here writes; worked_minutes is maintained at check-out time.
type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.SessionRepository {
	return &attendanceRepositoryImpl{db: db}
}

const sessionColumns = `
	s.id, s.employee_id, s.date, s.check_in, s.check_out,
	s.worked_minutes, s.status, e.department_id, e.project_id`

func scanSession(row pgx.Row) (attendance.Session, error) {
	var session attendance.Session
	err := row.Scan(
		&session.ID, &session.EmployeeID, &session.Date,
		&session.CheckIn, &session.CheckOut,
		&session.WorkedMinutes, &session.Status,
		&session.DepartmentID, &session.ProjectID,
	)
	return session, err
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.SessionFilter) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions s
		INNER JOIN employees e ON s.employee_id = e.id
		WHERE 1=1`
	var args []any

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND s.employee_id = $%d", len(args))
	}
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		query += fmt.Sprintf(" AND e.department_id = $%d", len(args))
	}
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		query += fmt.Sprintf(" AND e.project_id = $%d", len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND s.date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND s.date <= $%d", len(args))
	}

	query += " ORDER BY s.date ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions s
		INNER JOIN employees e ON s.employee_id = e.id
		WHERE s.employee_id = $1 AND s.date = $2::date
	`

	session, err := scanSession(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Session{}, attendance.ErrSessionNotFound
		}
		return attendance.Session{}, err
	}

	return session, nil
}

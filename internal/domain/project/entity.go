package project

import "time"

type Project struct {
	ID           string
	Name         string
	Description  *string
	DepartmentID *string
	SharedWith   []string // employee ids the project is shared with
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

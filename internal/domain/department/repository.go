package department

import "context"

// DepartmentRepository is a read-only directory. The dashboard uses it to
// validate filter values; departments themselves are owned elsewhere.
type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
}

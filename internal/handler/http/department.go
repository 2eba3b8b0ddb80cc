package http

import (
	"net/http"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/department"
	"github.com/crewdesk/crewdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// DepartmentHandler exposes the read-only department directory.
type DepartmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type DepartmentHandlerImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewDepartmentHandler(departmentRepo department.DepartmentRepository) DepartmentHandler {
	return &DepartmentHandlerImpl{departmentRepo: departmentRepo}
}

// List implements DepartmentHandler.
func (d *DepartmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	departments, err := d.departmentRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

// Get implements DepartmentHandler.
func (d *DepartmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	found, err := d.departmentRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

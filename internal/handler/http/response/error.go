package response

import (
	"errors"
	"net/http"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/attendance"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/auth"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/department"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/leave"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/project"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/user"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrOAuthEmailMismatch):
		Forbidden(w, "Google account is not linked to a registered user")

	// Authorization
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrScopeViolation):
		Forbidden(w, "Access to this resource is not allowed")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Only the request owner may cancel it")

	// Not found
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")

	// Conflicts
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, project.ErrProjectNameExists):
		Conflict(w, "Project name already exists")

	// Transient
	case errors.Is(err, leave.ErrStoreTimeout):
		ServiceUnavailable(w, "Storage temporarily unavailable, retry the request")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

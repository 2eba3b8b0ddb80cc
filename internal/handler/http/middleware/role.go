package middleware

import (
	"net/http"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/user"
	"github.com/crewdesk/crewdesk-backend-go/internal/handler/http/response"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/accesscontrol"
)

// RequireAdmin requires the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := ActorFromContext(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if actor.Role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireGrant rejects callers whose role lacks the given grant. Services
// still run their own checks; this keeps obviously unauthorized requests out
// of the handlers.
func RequireGrant(acl *accesscontrol.Model, resource accesscontrol.Resource, action accesscontrol.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := ActorFromContext(r)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !acl.Permitted(actor.Role, resource, action) {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

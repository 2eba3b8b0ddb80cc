package middleware

import (
	"net/http"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/auth"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/user"
	"github.com/crewdesk/crewdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a verified access token. It runs
// after jwtauth.Verifier, which parses the token into the request context.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		claims, err := token.AsMap(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != "access" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ActorFromContext rebuilds the caller identity from the verified claims.
// Handlers pass the result into services; nothing below the handler layer
// reads the JWT.
func ActorFromContext(r *http.Request) (user.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Actor{}, auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return user.Actor{}, auth.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return user.Actor{}, auth.ErrInvalidToken
	}

	role := user.Role(roleStr)
	if !role.IsValid() {
		return user.Actor{}, auth.ErrInvalidToken
	}

	return user.Actor{EmployeeID: employeeID, Role: role}, nil
}

package middleware

import (
	"net/http"

	"clinic-front-desk/pkg/response"
)

// Staff roles known to this service
const (
	RoleAdmin     = "admin"
	RoleFrontDesk = "front-desk"
)

// RequireRole creates a middleware that checks if the user has any of the
// required roles. Role is read from context (set by AuthMiddleware from JWT
// claims).
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireFrontDesk gates the endpoints that mutate appointment state
func RequireFrontDesk(next http.Handler) http.Handler {
	return RequireRole(RoleFrontDesk, RoleAdmin)(next)
}

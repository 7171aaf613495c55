package middleware

import (
	"net/http"

	"github.com/alikitto/ad-dash/pkg/apiErrors"
	"github.com/alikitto/ad-dash/pkg/log"
)

const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

// RoleMiddleware restringe a rota aos roles informados
func RoleMiddleware(allowedRoles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
				return
			}

			for _, role := range allowedRoles {
				if claims.UserRoleID == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.ForContext(r.Context()).WithFields(log.Fields{
				"user_id":   claims.UserID,
				"user_role": claims.UserRoleID,
				"path":      r.URL.Path,
			}).Warn("auth: access denied for role")
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "you are not allowed to access this resource", nil)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin)
}

func AdminOrSupervisor() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin, RoleSupervisor)
}

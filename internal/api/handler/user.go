package handler

import (
	"net/http"

	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/internal/usecases/authenticating"
	"github.com/alikitto/ad-dash/pkg/apiErrors"
	"github.com/alikitto/ad-dash/pkg/middleware"
)

func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intPathParam(w, r, "id")
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), id)
		if err != nil {
			writeAuthError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// CreateUser cadastra um usuário inativo com o papel padrão; um administrador ativa depois
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user domain.User
		if !decodeAndValidate(w, r, &user) {
			return
		}

		created, err := service.CreateUser(r.Context(), &user)
		if err != nil {
			writeAuthError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser(r.Context())
		if err != nil {
			writeAuthError(w, r, err)
			return
		}

		if users == nil {
			users = []*domain.User{}
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// UpdateUser permite editar o próprio perfil; só administradores editam outros usuários ou trocam papéis
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intPathParam(w, r, "id")
		if !ok {
			return
		}

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		isAdmin := claims.UserRoleID == middleware.RoleAdmin
		if claims.UserID != id && !isAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "cannot edit another user", nil)
			return
		}

		var req domain.UpdateUserRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		req.ID = id

		if !isAdmin && (req.RoleID != nil || req.Active != nil || req.Deleted != nil) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "only administrators can change role or status", nil)
			return
		}

		if err := service.UpdateUser(r.Context(), &req); err != nil {
			writeAuthError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "user updated"})
	}
}

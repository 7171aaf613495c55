package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/alikitto/ad-dash/internal/usecases/authenticating"
	"github.com/alikitto/ad-dash/pkg/apiErrors"
	"github.com/alikitto/ad-dash/pkg/log"
	"github.com/alikitto/ad-dash/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			writeAuthError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}

// GetMe retorna o perfil do usuário dono do token
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), claims.UserID)
		if err != nil {
			writeAuthError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// ChangePassword só permite que o usuário troque a própria senha
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetUserID, ok := intPathParam(w, r, "id")
		if !ok {
			return
		}

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		if claims.UserID != targetUserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "cannot change another user's password", nil)
			return
		}

		var req ChangePasswordRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if err := service.ChangePassword(r.Context(), targetUserID, req.CurrentPassword, req.NewPassword); err != nil {
			writeAuthError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "password changed"})
	}
}

// GeneratePassword gera uma senha forte para outro usuário. Apenas administradores.
func GeneratePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		targetUserID, ok := intPathParam(w, r, "id")
		if !ok {
			return
		}

		password, err := service.GenerateStrongPassword(r.Context(), claims.UserID, targetUserID)
		if err != nil {
			writeAuthError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, GeneratePasswordResponse{Password: password})
	}
}

func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	code := authenticating.CodeOf(err)

	var authErr *authenticating.AuthError
	if !errors.As(err, &authErr) || code == apiErrors.ErrInternalServer || code == apiErrors.ErrDatabaseOperation {
		log.ForContext(r.Context()).WithError(err).Error("auth: request failed")
		apiErrors.WriteError(w, code, "internal server error", nil)
		return
	}

	var details any
	if authErr.UserID != 0 {
		details = map[string]any{"user_id": authErr.UserID}
	}

	log.ForContext(r.Context()).WithError(err).Warn("auth: request rejected")
	apiErrors.WriteError(w, code, authErr.Error(), details)
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/internal/usecases/authenticating"
	"github.com/alikitto/ad-dash/internal/usecases/authenticating/mocks"
	"github.com/alikitto/ad-dash/pkg/apiErrors"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(auth *mocks.MockAuthenticator)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "token issued",
			body: `{"email":"ana@example.com","password":"Secret#123"}`,
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().LoginUser(gomock.Any(), "ana@example.com", "Secret#123").Return("jwt-token", nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"token":"jwt-token"}`, rec.Body.String())
			},
		},
		{
			name:  "invalid email",
			body:  `{"email":"ana","password":"x"}`,
			setup: func(auth *mocks.MockAuthenticator) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), "email")
			},
		},
		{
			name: "wrong password",
			body: `{"email":"ana@example.com","password":"nope"}`,
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().LoginUser(gomock.Any(), "ana@example.com", "nope").
					Return("", authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 4, "wrong password"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeError(t, rec).Code)
			},
		},
		{
			name: "inactive user",
			body: `{"email":"ana@example.com","password":"Secret#123"}`,
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", authenticating.NewUserAuthError(authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, 4, "account disabled"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, rec.Code)
				assert.Equal(t, apiErrors.ErrUserDisabled, decodeError(t, rec).Code)
			},
		},
		{
			name: "unexpected failure hides details",
			body: `{"email":"ana@example.com","password":"Secret#123"}`,
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("pq: connection reset"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.NotContains(t, rec.Body.String(), "pq:")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mocks.NewMockAuthenticator(gomock.NewController(t))
			tt.setup(auth)

			rec := serve(Authentication(auth), http.MethodPost, "/v1/login", tt.body, nil)
			tt.validate(t, rec)
		})
	}
}

func TestRegister_CreatesInactiveUser(t *testing.T) {
	auth := mocks.NewMockAuthenticator(gomock.NewController(t))
	auth.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Equal(t, "Secret#123", user.PasswordHash)
			return &domain.User{ID: 5, Email: user.Email, Active: false, RoleID: 3}, nil
		})

	rec := serve(Authentication(auth), http.MethodPost, "/v1/register",
		`{"name":"Ana","lastname":"Lima","email":"ana@example.com","password":"Secret#123"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"active":false`)
	assert.NotContains(t, rec.Body.String(), "Secret#123")
}

func TestGetMe(t *testing.T) {
	auth := mocks.NewMockAuthenticator(gomock.NewController(t))
	auth.EXPECT().GetUserProfile(gomock.Any(), 9).Return(&domain.User{ID: 9, Email: "me@example.com"}, nil)

	rec := serve(Authentication(auth), http.MethodGet, "/v1/me", "", clientClaims)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "me@example.com")
}

func TestChangePassword_OnlyOwnAccount(t *testing.T) {
	auth := mocks.NewMockAuthenticator(gomock.NewController(t))

	rec := serve(Authentication(auth), http.MethodPost, "/v1/users/1/change-password",
		`{"current_password":"a","new_password":"b"}`, clientClaims)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeError(t, rec).Code)
}

func TestChangePassword_WeakPassword(t *testing.T) {
	auth := mocks.NewMockAuthenticator(gomock.NewController(t))
	auth.EXPECT().ChangePassword(gomock.Any(), 9, "Old#12345", "weak").
		Return(authenticating.NewAuthError(authenticating.ErrWeakPassword, apiErrors.ErrInvalidFormat, "password must have at least 8 characters"))

	rec := serve(Authentication(auth), http.MethodPost, "/v1/users/9/change-password",
		`{"current_password":"Old#12345","new_password":"weak"}`, clientClaims)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "at least 8 characters")
}

func TestGeneratePassword_AdminOnly(t *testing.T) {
	auth := mocks.NewMockAuthenticator(gomock.NewController(t))

	rec := serve(Authentication(auth), http.MethodPost, "/v1/users/9/generate-password", "", clientClaims)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	auth.EXPECT().GenerateStrongPassword(gomock.Any(), 1, 9).Return("N3w#Passw0rd", nil)

	rec = serve(Authentication(auth), http.MethodPost, "/v1/users/9/generate-password", "", adminClaims)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"password":"N3w#Passw0rd"}`, rec.Body.String())
}

func TestUpdateUser(t *testing.T) {
	t.Run("non admin cannot change role", func(t *testing.T) {
		auth := mocks.NewMockAuthenticator(gomock.NewController(t))

		rec := serve(User(auth), http.MethodPut, "/v1/users/9", `{"role_id":1}`, clientClaims)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin activates user", func(t *testing.T) {
		auth := mocks.NewMockAuthenticator(gomock.NewController(t))
		auth.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.UpdateUserRequest) error {
				assert.Equal(t, 9, req.ID)
				require.NotNil(t, req.Active)
				assert.True(t, *req.Active)
				return nil
			})

		rec := serve(User(auth), http.MethodPut, "/v1/users/9", `{"active":true}`, adminClaims)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		auth := mocks.NewMockAuthenticator(gomock.NewController(t))
		auth.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
			Return(authenticating.NewUserAuthError(authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, 99, "user 99 not found"))

		rec := serve(User(auth), http.MethodPut, "/v1/users/99", `{"name":"X"}`, adminClaims)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListUsers_AdminOnly(t *testing.T) {
	auth := mocks.NewMockAuthenticator(gomock.NewController(t))

	rec := serve(User(auth), http.MethodGet, "/v1/users", "", clientClaims)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	auth.EXPECT().ListUser(gomock.Any()).Return(nil, nil)

	rec = serve(User(auth), http.MethodGet, "/v1/users", "", adminClaims)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/internal/usecases/authenticating"
	"github.com/alikitto/ad-dash/internal/usecases/authenticating/mocks"
	"github.com/alikitto/ad-dash/pkg/apiErrors"
	"github.com/alikitto/ad-dash/pkg/log"
	"github.com/alikitto/ad-dash/pkg/metrics"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		header   string
		setup    func(auth *mocks.MockAuthenticator)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:  "public path skips validation",
			path:  "/v1/login",
			setup: func(auth *mocks.MockAuthenticator) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
			},
		},
		{
			name:  "missing header",
			path:  "/v1/adsets",
			setup: func(auth *mocks.MockAuthenticator) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidToken)
			},
		},
		{
			name:   "expired token",
			path:   "/v1/adsets",
			header: "Bearer old",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("old").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrExpiredToken)
			},
		},
		{
			name:   "valid token stores claims",
			path:   "/v1/adsets",
			header: "Bearer good",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("good").Return(&domain.Claims{UserID: 7}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "7", rec.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mocks.NewMockAuthenticator(gomock.NewController(t))
			tt.setup(auth)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims, ok := ClaimsFromContext(r.Context())
				if !ok {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				w.Write([]byte(strconv.Itoa(claims.UserID)))
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(next).ServeHTTP(rec, req)
			tt.validate(t, rec)
		})
	}
}

func contextWithClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}

func TestRoleMiddleware(t *testing.T) {
	handler := AdminOnly()(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/users", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	req = req.WithContext(contextWithClaims(req, &domain.Claims{UserID: 2, UserRoleID: RoleClient}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	req = req.WithContext(contextWithClaims(req, &domain.Claims{UserID: 1, UserRoleID: RoleAdmin}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLoggingMiddleware(t *testing.T) {
	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodGet, "204"))

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/adsets", nil)
	req.Header.Set(log.CorrelationIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	LoggingMiddleware()(next).ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(log.CorrelationIDHeader))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodGet, "204")))
}

func TestLoggingMiddleware_GeneratesCorrelationID(t *testing.T) {
	rec := httptest.NewRecorder()
	LoggingMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	require.NotEmpty(t, rec.Header().Get(log.CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/adsets", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/adsets", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/adsets", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitByIP(t *testing.T) {
	handler := RateLimitByIP(1, time.Minute)(okHandler())

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/v1/login", nil))
	assert.Equal(t, http.StatusNoContent, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/v1/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

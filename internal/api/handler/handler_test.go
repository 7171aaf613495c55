package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alikitto/ad-dash/internal/api/handler/router"
	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/pkg/apiErrors"
	"github.com/alikitto/ad-dash/pkg/middleware"
)

var (
	adminClaims  = &domain.Claims{UserID: 1, UserRoleID: middleware.RoleAdmin}
	clientClaims = &domain.Claims{UserID: 9, UserRoleID: middleware.RoleClient}
)

func serve(routes []router.Route, method, path, body string, claims *domain.Claims) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestRouter_UnknownRoute(t *testing.T) {
	rec := serve(Healthcheck(), http.MethodGet, "/v1/nope", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, apiErrors.ErrResourceNotFound, decodeError(t, rec).Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	rec := serve(Healthcheck(), http.MethodPost, "/healthcheck", "", nil)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, apiErrors.ErrMethodNotAllowed, decodeError(t, rec).Code)
}

func TestHealthcheck(t *testing.T) {
	rec := serve(Healthcheck(), http.MethodGet, "/healthcheck", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	rec := serve(Healthcheck(), http.MethodGet, "/metrics", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}

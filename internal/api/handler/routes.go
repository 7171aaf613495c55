package handler

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alikitto/ad-dash/internal/api/handler/router"
	"github.com/alikitto/ad-dash/internal/scheduler"
	"github.com/alikitto/ad-dash/internal/usecases/analysing"
	"github.com/alikitto/ad-dash/internal/usecases/authenticating"
	"github.com/alikitto/ad-dash/internal/usecases/clienting"
	"github.com/alikitto/ad-dash/internal/usecases/insighting"
	"github.com/alikitto/ad-dash/pkg/middleware"
)

const (
	loginRequestsPerWindow = 10
	loginWindow            = time.Minute
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	throttle := middleware.RateLimitByIP(loginRequestsPerWindow, loginWindow)

	return []router.Route{
		{
			Path:        "/v1/login",
			Method:      http.MethodPost,
			Handler:     Login(service),
			Middlewares: []func(http.Handler) http.Handler{throttle},
		},
		{
			Path:        "/v1/register",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{throttle},
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:    "/v1/users/:id/change-password",
			Method:  http.MethodPost,
			Handler: ChangePassword(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:    "/v1/users/:id",
			Method:  http.MethodPut,
			Handler: UpdateUser(service),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/adsets",
			Method:  http.MethodGet,
			Handler: ListAdSets(service),
		},
		{
			Path:    "/v1/adsets/:id/ads",
			Method:  http.MethodGet,
			Handler: ListAdSetAds(service),
		},
		{
			Path:    "/v1/adsets/:id/stats",
			Method:  http.MethodGet,
			Handler: GetAdSetStats(service),
		},
		{
			Path:    "/v1/adsets/:id/details",
			Method:  http.MethodGet,
			Handler: GetAdSetDetails(service),
		},
		{
			Path:    "/v1/adsets/:id/activities",
			Method:  http.MethodGet,
			Handler: ListAdSetActivities(service),
		},
		{
			Path:        "/v1/adsets/:id/update-status",
			Method:      http.MethodPost,
			Handler:     UpdateEntityStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/adsets/:id/update-budget-dates",
			Method:      http.MethodPost,
			Handler:     UpdateAdSetBudget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/ads/:id/update-status",
			Method:      http.MethodPost,
			Handler:     UpdateEntityStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Analysis(service analysing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analysis/adsets",
			Method:  http.MethodPost,
			Handler: AnalyzeAdSets(service),
		},
		{
			Path:    "/v1/analysis/adsets/:id",
			Method:  http.MethodPost,
			Handler: AnalyzeAdSet(service),
		},
	}
}

func MetaHealth(service scheduler.HealthChecker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/meta/health",
			Method:  http.MethodGet,
			Handler: GetMetaHealth(service),
		},
	}
}

func Clients(service clienting.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: ListClients(service),
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodPost,
			Handler:     CreateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:    "/v1/clients/:account_id",
			Method:  http.MethodGet,
			Handler: GetClient(service),
		},
		{
			Path:        "/v1/clients/:account_id",
			Method:      http.MethodPut,
			Handler:     UpdateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/clients/:account_id",
			Method:      http.MethodDelete,
			Handler:     DeleteClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:    "/v1/clients/:account_id/payments",
			Method:  http.MethodGet,
			Handler: ListPayments(service),
		},
		{
			Path:        "/v1/clients/:account_id/payments",
			Method:      http.MethodPost,
			Handler:     CreatePayment(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:    "/v1/clients-from-accounts",
			Method:  http.MethodGet,
			Handler: ListAccountsForClients(service),
		},
	}
}

func Avatars(service clienting.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/settings/avatars",
			Method:  http.MethodGet,
			Handler: ListAvatars(service),
		},
		{
			Path:        "/v1/settings/avatars",
			Method:      http.MethodPost,
			Handler:     SaveAvatar(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/settings/avatars/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAvatar(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

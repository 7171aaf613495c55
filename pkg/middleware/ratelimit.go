package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/alikitto/ad-dash/pkg/apiErrors"
)

// RateLimitByIP limita tentativas por IP nas rotas públicas de login e cadastro
func RateLimitByIP(requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "too many attempts, try again later", nil)
		}),
	)
}

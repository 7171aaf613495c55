package handler

import (
	"net/http"

	"github.com/alikitto/ad-dash/internal/scheduler"
)

// GetMetaHealth devolve o último resultado da verificação do token. ?refresh=true força uma nova checagem.
func GetMetaHealth(service scheduler.HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("refresh") == "true" {
			writeJSON(w, http.StatusOK, service.Check(r.Context()))
			return
		}

		writeJSON(w, http.StatusOK, service.Status(r.Context()))
	}
}

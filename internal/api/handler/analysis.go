package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/internal/usecases/analysing"
	"github.com/alikitto/ad-dash/pkg/apiErrors"
)

// AnalyzeAdSets recebe as linhas já exibidas no painel e devolve a leitura do modelo
func AnalyzeAdSets(service analysing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var adsets []domain.AggregatedAdSetRecord
		if err := json.NewDecoder(r.Body).Decode(&adsets); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "expected a list of ad sets", nil)
			return
		}

		report, err := service.AnalyzeAdSets(r.Context(), adsets)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func AnalyzeAdSet(service analysing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AdSetAnalysisRequest
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
				return
			}
		}
		req.AdSetID = pathParam(r, "id")

		report, err := service.AnalyzeAdSet(r.Context(), req)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func writeAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, analysing.ErrInvalidReport) {
		apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
		return
	}
	writeServiceError(w, r, err)
}

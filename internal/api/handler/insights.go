package handler

import (
	"net/http"

	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/internal/usecases/insighting"
	"github.com/alikitto/ad-dash/pkg/log"
)

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

func windowFromQuery(w http.ResponseWriter, r *http.Request) (domain.InsightWindow, bool) {
	query := r.URL.Query()

	window, err := insighting.ParseWindow(query.Get("date_preset"), query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		writeServiceError(w, r, err)
		return domain.InsightWindow{}, false
	}

	return window, true
}

// ListAdSets devolve todos os ad sets de todas as contas na janela pedida
func ListAdSets(service insighting.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, ok := windowFromQuery(w, r)
		if !ok {
			return
		}

		records, err := service.Run(r.Context(), window)
		if err != nil {
			writeReadError(w, r, err, []domain.AggregatedAdSetRecord{})
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}

func ListAdSetAds(service insighting.AdsDetailFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, ok := windowFromQuery(w, r)
		if !ok {
			return
		}

		adsetID := pathParam(r, "id")
		ads, err := service.BuildAdRows(r.Context(), adsetID, window)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("adset_id", adsetID).Warn("ads: could not build ad rows")
			writeReadError(w, r, err, []domain.AdRecord{})
			return
		}

		writeJSON(w, http.StatusOK, ads)
	}
}

func GetAdSetStats(service insighting.AdSetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, ok := windowFromQuery(w, r)
		if !ok {
			return
		}

		stats, err := service.GetDailyStats(r.Context(), pathParam(r, "id"), window)
		if err != nil {
			writeReadError(w, r, err, []domain.AdSetDailyStat{})
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

func GetAdSetDetails(service insighting.AdSetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		details, err := service.GetDetails(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, details)
	}
}

func ListAdSetActivities(service insighting.AdSetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activities, err := service.ListActivities(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeReadError(w, r, err, []domain.AdSetActivity{})
			return
		}

		writeJSON(w, http.StatusOK, activities)
	}
}

// UpdateEntityStatus serve tanto ad sets quanto anúncios; o Meta trata os dois pelo id
func UpdateEntityStatus(service insighting.AdSetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StatusUpdateRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		resp, err := service.UpdateStatus(r.Context(), pathParam(r, "id"), req.Status)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func UpdateAdSetBudget(service insighting.AdSetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.BudgetUpdate
		if !decodeAndValidate(w, r, &req) {
			return
		}

		resp, err := service.UpdateBudget(r.Context(), pathParam(r, "id"), req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

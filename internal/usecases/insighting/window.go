package insighting

import (
	"strings"
	"time"

	"github.com/alikitto/ad-dash/internal/domain"
)

var datePresets = map[string]struct{}{
	"today":               {},
	"yesterday":           {},
	"this_month":          {},
	"last_month":          {},
	"this_quarter":        {},
	"last_quarter":        {},
	"this_year":           {},
	"last_year":           {},
	"last_3d":             {},
	"last_7d":             {},
	"last_14d":            {},
	"last_28d":            {},
	"last_30d":            {},
	"last_90d":            {},
	"last_week_mon_sun":   {},
	"last_week_sun_sat":   {},
	"this_week_mon_today": {},
	"this_week_sun_today": {},
	"maximum":             {},
}

// ParseWindow valida os parâmetros de janela vindos da query string
func ParseWindow(datePreset, startDate, endDate string) (domain.InsightWindow, error) {
	window := domain.InsightWindow{DatePreset: strings.TrimSpace(datePreset)}
	if window.DatePreset == "" {
		window.DatePreset = domain.DefaultDatePreset
	}

	// intervalo só vale com as duas pontas, senão fica o preset
	startDate, endDate = strings.TrimSpace(startDate), strings.TrimSpace(endDate)
	if startDate == "" || endDate == "" {
		if _, ok := datePresets[window.DatePreset]; !ok {
			return domain.InsightWindow{}, newValidationError("date_preset", "unsupported preset "+window.DatePreset)
		}
		return window, nil
	}

	start, err := time.Parse(time.DateOnly, startDate)
	if err != nil {
		return domain.InsightWindow{}, newValidationError("start_date", "expected YYYY-MM-DD")
	}

	end, err := time.Parse(time.DateOnly, endDate)
	if err != nil {
		return domain.InsightWindow{}, newValidationError("end_date", "expected YYYY-MM-DD")
	}

	if start.After(end) {
		return domain.InsightWindow{}, newValidationError("start_date", "start_date must not be after end_date")
	}

	window.StartDate = &start
	window.EndDate = &end

	return window, nil
}

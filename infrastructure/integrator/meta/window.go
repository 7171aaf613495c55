package meta

import (
	"strings"
	"time"

	metadomain "github.com/alikitto/ad-dash/infrastructure/integrator/meta/domain"
	"github.com/alikitto/ad-dash/internal/domain"
)

// timeRange converte a janela do domínio no parâmetro do Graph API.
// Intervalo explícito vence o preset; "maximum" vira time_range a partir da
// data âncora configurada até hoje.
func (s *MetaIntegrator) timeRange(window domain.InsightWindow) metadomain.TimeRange {
	if window.IsExplicit() {
		return metadomain.TimeRange{
			Since: window.StartDate.Format(time.DateOnly),
			Until: window.EndDate.Format(time.DateOnly),
		}
	}

	preset := strings.TrimSpace(window.DatePreset)
	if preset == "" {
		preset = domain.DefaultDatePreset
	}

	if preset == domain.DatePresetMaximum {
		today := s.now()
		since := s.cfg.Meta.MaximumSince()
		if since.After(today) {
			since = today
		}
		return metadomain.TimeRange{
			Since: since.Format(time.DateOnly),
			Until: today.Format(time.DateOnly),
		}
	}

	return metadomain.TimeRange{DatePreset: preset}
}

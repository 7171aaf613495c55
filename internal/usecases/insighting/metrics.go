package insighting

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/alikitto/ad-dash/internal/domain"
)

// SafeNumber converte qualquer valor numérico do Meta em float64.
// Nulo, ausente, texto não numérico, NaN e Inf viram 0.
func SafeNumber(value any) float64 {
	var f float64

	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case *string:
		if v == nil {
			return 0
		}
		return SafeNumber(*v)
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}

// SafeInt trunca o valor normalizado
func SafeInt(value any) int {
	return int(SafeNumber(value))
}

// SumLeadActions soma as ações cujo action_type contém o sinal de lead
func SumLeadActions(actions []domain.Action, leadSignal string) int {
	if leadSignal == "" {
		return 0
	}

	total := 0
	for _, action := range actions {
		if strings.Contains(action.ActionType, leadSignal) {
			total += SafeInt(action.Value)
		}
	}

	return total
}

func DeriveCPL(spend float64, leads int) float64 {
	if leads <= 0 {
		return 0
	}
	return finite(spend / float64(leads))
}

// DeriveCTRLink devolve o CTR de link em percentual
func DeriveCTRLink(linkClicks, impressions int) float64 {
	if impressions <= 0 {
		return 0
	}
	return finite(float64(linkClicks) / float64(impressions) * 100)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

package domain

import "time"

type Action struct {
	ActionType string `json:"action_type"`
	Value      any    `json:"value"`
}

// InsightRow mantém os números como vieram do Meta (string, número ou nulo)
type InsightRow struct {
	AdSetID          string
	AdID             string
	DateStart        string
	Spend            any
	Impressions      any
	Clicks           any
	InlineLinkClicks any
	CPM              any
	CTR              any
	Frequency        any
	Actions          []Action
}

const (
	DatePresetMaximum = "maximum"
	DefaultDatePreset = "last_7d"
)

// InsightWindow é um preset nomeado ou um intervalo explícito.
// O intervalo explícito tem precedência sobre o preset.
type InsightWindow struct {
	DatePreset string
	StartDate  *time.Time
	EndDate    *time.Time
}

func (w InsightWindow) IsExplicit() bool {
	return w.StartDate != nil && w.EndDate != nil
}

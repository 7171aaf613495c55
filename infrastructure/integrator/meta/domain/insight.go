package metadomain

import (
	"net/url"
	"strings"
)

// Action é um evento de conversão. value costuma vir como string.
type Action struct {
	ActionType string `json:"action_type"`
	Value      any    `json:"value"`
}

// InsightRow guarda os campos numéricos crus; a normalização fica com quem consome.
type InsightRow struct {
	AccountID        string   `json:"account_id"`
	AdSetID          string   `json:"adset_id"`
	AdID             string   `json:"ad_id"`
	DateStart        string   `json:"date_start"`
	DateStop         string   `json:"date_stop"`
	Spend            any      `json:"spend"`
	Impressions      any      `json:"impressions"`
	Clicks           any      `json:"clicks"`
	InlineLinkClicks any      `json:"inline_link_clicks"`
	CPM              any      `json:"cpm"`
	CTR              any      `json:"ctr"`
	Frequency        any      `json:"frequency"`
	Actions          []Action `json:"actions"`
}

// TimeRange é a janela enviada ao Graph API: date_preset ou time_range
type TimeRange struct {
	DatePreset string
	Since      string
	Until      string
}

func (t TimeRange) IsExplicit() bool {
	return t.Since != "" && t.Until != ""
}

// Apply grava a janela nos parâmetros da requisição
func (t TimeRange) Apply(params url.Values) {
	if t.IsExplicit() {
		params.Set("time_range", `{"since":"`+t.Since+`","until":"`+t.Until+`"}`)
		return
	}

	if preset := strings.TrimSpace(t.DatePreset); preset != "" {
		params.Set("date_preset", preset)
	}
}

package metaclient

import (
	"context"
	"net/url"
	"strconv"

	metadomain "github.com/alikitto/ad-dash/infrastructure/integrator/meta/domain"
)

const (
	adSetInsightFields = "adset_id,spend,actions,cpm,ctr,clicks,impressions,frequency,inline_link_clicks"
	adInsightFields    = "ad_id,spend,impressions,clicks,inline_link_clicks,ctr,cpm,frequency,actions"
	dailyInsightFields = "spend,impressions,clicks,inline_link_clicks,frequency,actions"
	insightsLimit      = 5000
)

type inFilter struct {
	Field    string   `json:"field"`
	Operator string   `json:"operator"`
	Value    []string `json:"value"`
}

// GetAdSetInsights busca as métricas de todos os ad sets de uma conta
// em uma única chamada filtrada por adset.id IN (...)
func (c *MetaClient) GetAdSetInsights(ctx context.Context, accountID string, adsetIDs []string, window metadomain.TimeRange) ([]metadomain.InsightRow, error) {
	if len(adsetIDs) == 0 {
		return []metadomain.InsightRow{}, nil
	}

	filtering, err := json.Marshal([]inFilter{{Field: "adset.id", Operator: "IN", Value: adsetIDs}})
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("level", "adset")
	params.Add("fields", adSetInsightFields)
	params.Add("filtering", string(filtering))
	params.Add("limit", strconv.Itoa(insightsLimit))
	window.Apply(params)

	return fetchAll[metadomain.InsightRow](ctx, c, Request{
		Endpoint: "adset_insights",
		Path:     accountPath(accountID, "insights"),
		Query:    params,
	})
}

func (c *MetaClient) GetAdInsights(ctx context.Context, adsetID string, window metadomain.TimeRange) ([]metadomain.InsightRow, error) {
	params := url.Values{}
	params.Add("level", "ad")
	params.Add("fields", adInsightFields)
	params.Add("limit", strconv.Itoa(insightsLimit))
	window.Apply(params)

	return fetchAll[metadomain.InsightRow](ctx, c, Request{
		Endpoint: "ad_insights",
		Path:     adsetID + "/insights",
		Query:    params,
	})
}

// GetAdSetDailyInsights devolve uma linha por dia (time_increment=1)
func (c *MetaClient) GetAdSetDailyInsights(ctx context.Context, adsetID string, window metadomain.TimeRange) ([]metadomain.InsightRow, error) {
	params := url.Values{}
	params.Add("fields", dailyInsightFields)
	params.Add("time_increment", "1")
	params.Add("limit", strconv.Itoa(insightsLimit))
	window.Apply(params)

	return fetchAll[metadomain.InsightRow](ctx, c, Request{
		Endpoint: "daily_insights",
		Path:     adsetID + "/insights",
		Query:    params,
	})
}

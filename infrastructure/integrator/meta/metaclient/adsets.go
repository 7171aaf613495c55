package metaclient

import (
	"context"
	"net/url"
	"strconv"

	metadomain "github.com/alikitto/ad-dash/infrastructure/integrator/meta/domain"
)

const (
	adSetFields        = "id,name,status,effective_status,campaign{id,name,objective}"
	adSetDetailsFields = "id,name,status,effective_status,daily_budget,lifetime_budget,budget_remaining,start_time,end_time"
	activityFields     = "event_type,translated_event_type,event_time,actor_name,object_id,object_name,extra_data"
)

func (c *MetaClient) ListAdSets(ctx context.Context, accountID string) ([]metadomain.AdSet, error) {
	params := url.Values{}
	params.Add("fields", adSetFields)
	params.Add("limit", strconv.Itoa(c.pageSize()))

	return fetchAll[metadomain.AdSet](ctx, c, Request{
		Endpoint: "adsets",
		Path:     accountPath(accountID, "adsets"),
		Query:    params,
	})
}

func (c *MetaClient) GetAdSetDetails(ctx context.Context, adsetID string) (*metadomain.AdSetDetails, error) {
	params := url.Values{}
	params.Add("fields", adSetDetailsFields+",account_id")

	var details metadomain.AdSetDetails
	if err := c.fetchObject(ctx, Request{Endpoint: "adset_details", Path: adsetID, Query: params}, &details); err != nil {
		return nil, err
	}

	return &details, nil
}

// ListAdSetActivities lista o histórico de alterações de um ad set
func (c *MetaClient) ListAdSetActivities(ctx context.Context, accountID, adsetID string) ([]metadomain.Activity, error) {
	params := url.Values{}
	params.Add("fields", activityFields)
	params.Add("oid", adsetID)
	params.Add("limit", "100")

	return fetchAll[metadomain.Activity](ctx, c, Request{
		Endpoint: "activities",
		Path:     accountPath(accountID, "activities"),
		Query:    params,
	})
}

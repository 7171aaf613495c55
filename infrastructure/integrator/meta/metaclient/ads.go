package metaclient

import (
	"context"
	"net/http"
	"net/url"

	metadomain "github.com/alikitto/ad-dash/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) ListAds(ctx context.Context, adsetID string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,effective_status,creative{id,thumbnail_url,image_url}")
	params.Add("limit", "200")

	return fetchAll[metadomain.Ad](ctx, c, Request{
		Endpoint: "ads",
		Path:     adsetID + "/ads",
		Query:    params,
	})
}

// UpdateEntity faz POST /{id} com os campos informados (status, orçamento, end_time)
// e devolve a resposta do Meta sem alterações
func (c *MetaClient) UpdateEntity(ctx context.Context, entityID string, fields url.Values) (map[string]any, error) {
	body, err := c.Do(ctx, Request{
		Endpoint: "entity_update",
		Method:   http.MethodPost,
		Path:     entityID,
		Form:     fields,
	})
	if err != nil {
		return nil, err
	}

	response := map[string]any{}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &UpstreamError{StatusCode: http.StatusOK, Message: "invalid response body: " + err.Error()}
	}

	return response, nil
}

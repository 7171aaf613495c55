package metaclient

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	metadomain "github.com/alikitto/ad-dash/infrastructure/integrator/meta/domain"
)

type page[T any] struct {
	Data   []T                `json:"data"`
	Paging *metadomain.Paging `json:"paging"`
}

// fetchAll segue paging.next até a última página ou até MaxPages
func fetchAll[T any](ctx context.Context, c *MetaClient, req Request) ([]T, error) {
	all := []T{}

	for pageNum := 1; ; pageNum++ {
		body, err := c.Do(ctx, req)
		if err != nil {
			return nil, err
		}

		var p page[T]
		if err := json.Unmarshal(body, &p); err != nil {
			return nil, &UpstreamError{
				StatusCode: http.StatusOK,
				Message:    "invalid response body: " + err.Error(),
			}
		}
		all = append(all, p.Data...)

		if p.Paging == nil || p.Paging.Next == "" || len(p.Data) == 0 {
			break
		}

		if c.cfg.MaxPages > 0 && pageNum >= c.cfg.MaxPages {
			logrus.WithFields(logrus.Fields{
				"endpoint":  req.Endpoint,
				"max_pages": c.cfg.MaxPages,
				"items":     len(all),
			}).Warn("meta: page limit reached, remaining pages skipped")
			break
		}

		req = Request{
			Endpoint: req.Endpoint,
			Method:   http.MethodGet,
			NextURL:  p.Paging.Next,
		}
	}

	return all, nil
}

func (c *MetaClient) fetchObject(ctx context.Context, req Request, out any) error {
	body, err := c.Do(ctx, req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &UpstreamError{
			StatusCode: http.StatusOK,
			Message:    "invalid response body: " + err.Error(),
		}
	}

	return nil
}

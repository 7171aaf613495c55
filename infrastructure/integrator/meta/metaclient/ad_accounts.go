package metaclient

import (
	"context"
	"net/url"
	"strconv"

	metadomain "github.com/alikitto/ad-dash/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) ListAdAccounts(ctx context.Context) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "name,account_id")
	params.Add("limit", strconv.Itoa(c.pageSize()))

	return fetchAll[metadomain.AdAccount](ctx, c, Request{
		Endpoint: "adaccounts",
		Path:     "me/adaccounts",
		Query:    params,
	})
}

// CheckCredential valida o token chamando /me
func (c *MetaClient) CheckCredential(ctx context.Context) (*metadomain.TokenOwner, error) {
	params := url.Values{}
	params.Add("fields", "id,name")

	var owner metadomain.TokenOwner
	if err := c.fetchObject(ctx, Request{Endpoint: "me", Path: "me", Query: params}, &owner); err != nil {
		return nil, err
	}

	return &owner, nil
}

func (c *MetaClient) pageSize() int {
	if c.cfg.PageSize <= 0 {
		return 500
	}
	return c.cfg.PageSize
}

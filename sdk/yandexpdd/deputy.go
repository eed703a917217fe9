// sdk/yandexpdd/deputy.go
package yandexpdd

import (
	"context"

	"github.com/deploymenttheory/go-api-sdk-yandexpdd/httpclient"
)

const (
	endpointDeputyAdd    = "deputy/add"
	endpointDeputyList   = "deputy/list"
	endpointDeputyDelete = "deputy/delete"
)

// DeputyAdd grants domain administration to a Yandex account (*@yandex.ru).
func (c *Client) DeputyAdd(ctx context.Context, login string) (any, error) {
	return c.post(ctx, endpointDeputyAdd, httpclient.Params{"login": optional(login)}, httpclient.ProjectConstant(true))
}

// DeputyList returns the logins of the domain deputies.
func (c *Client) DeputyList(ctx context.Context) (any, error) {
	return c.get(ctx, endpointDeputyList, nil, httpclient.ProjectField("deputies"))
}

// DeputyDelete revokes a deputy.
func (c *Client) DeputyDelete(ctx context.Context, login string) (any, error) {
	return c.post(ctx, endpointDeputyDelete, httpclient.Params{"login": optional(login)}, httpclient.ProjectConstant(true))
}

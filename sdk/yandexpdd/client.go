// sdk/yandexpdd/client.go
/* Package yandexpdd exposes every Yandex PDD domain-administration endpoint as a typed method.
Each method names its endpoint, verb and result projection and delegates the round trip to
httpclient.Client.Execute. With ResponseFull set in the configuration every method returns the raw
response.Envelope instead of its projected value. */
package yandexpdd

import (
	"context"
	"net/http"

	pdderrors "github.com/deploymenttheory/go-api-sdk-yandexpdd/errors"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/httpclient"
)

// Client is the PDD API facade. It holds no state beyond the underlying httpclient.Client.
type Client struct {
	api *httpclient.Client
}

// NewClient builds a Client, filling unset configuration values with defaults. A nil executor
// selects the production net/http transport.
func NewClient(config httpclient.ClientConfig, executor httpclient.HTTPExecutor) (*Client, error) {
	api, err := httpclient.BuildClient(config, true, executor)
	if err != nil {
		return nil, err
	}
	return &Client{api: api}, nil
}

// API returns the underlying request translator.
func (c *Client) API() *httpclient.Client {
	return c.api
}

func (c *Client) get(ctx context.Context, endpoint string, params httpclient.Params, rule httpclient.ProjectionRule) (any, error) {
	return c.api.Execute(ctx, endpoint, params, http.MethodGet, rule)
}

func (c *Client) post(ctx context.Context, endpoint string, params httpclient.Params, rule httpclient.ProjectionRule) (any, error) {
	return c.api.Execute(ctx, endpoint, params, http.MethodPost, rule)
}

// optional marks the zero value of v as an absent parameter.
func optional[T comparable](v T) any {
	var zero T
	if v == zero {
		return nil
	}
	return v
}

// requireNameOrUID fails when an object is identified by neither its name nor its uid.
func requireNameOrUID(operation, nameKey, name, uidKey string, uid int64) error {
	if name == "" && uid == 0 {
		return pdderrors.NewMissingParameterError(operation, nameKey, uidKey)
	}
	return nil
}

func pageParams(page, onPage, defaultOnPage int) httpclient.Params {
	if page < 1 {
		page = 1
	}
	if onPage < 1 {
		onPage = defaultOnPage
	}
	return httpclient.Params{"page": page, "on_page": onPage}
}

// listDecodeError reports a success envelope whose listing fields are unusable.
func listDecodeError(endpoint string, err error) error {
	return &pdderrors.DecodeError{Endpoint: endpoint, Message: err.Error(), Err: err}
}

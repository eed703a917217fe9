// sdk/yandexpdd/dkim.go
package yandexpdd

import (
	"context"

	"github.com/deploymenttheory/go-api-sdk-yandexpdd/httpclient"
)

const (
	endpointDKIMStatus  = "dkim/status"
	endpointDKIMEnable  = "dkim/enable"
	endpointDKIMDisable = "dkim/disable"
)

// DKIMStatus returns the DKIM state. The private key is included only when secretKey is set.
func (c *Client) DKIMStatus(ctx context.Context, secretKey bool) (any, error) {
	params := httpclient.Params{"secretkey": nil}
	if secretKey {
		params["secretkey"] = "yes"
	}
	return c.get(ctx, endpointDKIMStatus, params, httpclient.ProjectField("dkim"))
}

func (c *Client) DKIMEnable(ctx context.Context) (any, error) {
	return c.post(ctx, endpointDKIMEnable, nil, httpclient.ProjectField("dkim"))
}

func (c *Client) DKIMDisable(ctx context.Context) (any, error) {
	return c.post(ctx, endpointDKIMDisable, nil, httpclient.ProjectField("dkim"))
}

// httpclient/request.go
package httpclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	pdderrors "github.com/deploymenttheory/go-api-sdk-yandexpdd/errors"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/headers"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/response"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Execute performs one call against endpoint and projects the success envelope with rule.
//
// The method must be GET or POST in any letter case; anything else fails before any I/O. Parameters
// with absent values are dropped and domain defaults to the configured one. When the client is in
// full-envelope mode the rule is ignored and the response.Envelope is returned as is.
//
// Failures are one of the errors package kinds: ValidationError, TransportError, DecodeError or
// RemoteError. Nothing is retried.
func (c *Client) Execute(ctx context.Context, endpoint string, params Params, method string, rule ProjectionRule) (any, error) {
	env, err := c.Do(ctx, endpoint, params, method)
	if err != nil {
		return nil, err
	}

	if c.config.ResponseFull {
		return env, nil
	}

	return rule.Apply(endpoint, env)
}

// Do performs one call and returns the success envelope without projection.
func (c *Client) Do(ctx context.Context, endpoint string, params Params, method string) (response.Envelope, error) {
	method, err := NormalizeMethod(endpoint, method)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	log := c.Logger.With(zap.String("request_id", requestID))

	req, err := c.newRequest(ctx, method, endpoint, params)
	if err != nil {
		log.Error("Failed to build request", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, &pdderrors.TransportError{Method: method, URL: c.EndpointURL(endpoint), Err: err}
	}

	headerHandler := headers.NewHeaderHandler(req, log, c.config.Token)
	headerHandler.SetRequestHeaders()
	headerHandler.LogHeaders(c.config.HideSensitiveData)

	// Query strings are kept out of logs and errors, they carry mailbox logins.
	logURL := c.EndpointURL(endpoint)
	log.LogRequestStart("pdd_api_call", requestID, method, logURL, headerHandler.RedactedHeaders(c.config.HideSensitiveData))

	startTime := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.LogError("pdd_api_call", method, logURL, 0, err)
		return nil, &pdderrors.TransportError{Method: method, URL: logURL, Err: err}
	}

	log.LogRequestEnd("pdd_api_call", method, logURL, resp.StatusCode, time.Since(startTime))
	headers.CheckDeprecationHeader(resp, log)

	return response.HandleAPIResponse(endpoint, resp, log)
}

// newRequest builds the request: POST carries the parameters as a form body, GET as a query string.
func (c *Client) newRequest(ctx context.Context, method, endpoint string, params Params) (*http.Request, error) {
	encoded := params.Normalize(c.config.Domain).Encode()
	target := c.EndpointURL(endpoint)

	if method == http.MethodPost {
		return http.NewRequestWithContext(ctx, method, target, strings.NewReader(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = encoded
	return req, nil
}

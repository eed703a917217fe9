// response/envelope.go
/* Responsible for turning a PDD API response body into an Envelope and deciding success. The HTTP status
is informational only: the service reports failure through the "success" and "error" envelope fields. */
package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	pdderrors "github.com/deploymenttheory/go-api-sdk-yandexpdd/errors"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/logger"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/status"
	"go.uber.org/zap"
)

const (
	SuccessField = "success"
	ErrorField   = "error"
	SuccessValue = "ok"
)

// Envelope is a decoded JSON response object. Numbers are kept as json.Number so uids and record ids
// survive without float rounding.
type Envelope map[string]any

// Success reports whether the success field is exactly the string "ok".
func (e Envelope) Success() bool {
	s, ok := e[SuccessField].(string)
	return ok && s == SuccessValue
}

// ErrorMessage returns the error field, or "Unknown" when it is absent or empty.
func (e Envelope) ErrorMessage() string {
	switch v := e[ErrorField].(type) {
	case nil:
		return pdderrors.UnknownRemoteMessage
	case string:
		if v == "" {
			return pdderrors.UnknownRemoteMessage
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Field returns the named value and whether it was present.
func (e Envelope) Field(name string) (any, bool) {
	v, ok := e[name]
	return v, ok
}

// Int reads a numeric field. JSON numbers and numeric strings are both accepted.
func (e Envelope) Int(name string) (int, error) {
	v, ok := e[name]
	if !ok {
		return 0, fmt.Errorf("field %q missing from response", name)
	}
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("field %q is not an integer: %w", name, err)
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("field %q is not an integer: %w", name, err)
		}
		return i, nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("field %q has unexpected type %T", name, v)
	}
}

// List reads an array field. A missing or null field yields an empty list.
func (e Envelope) List(name string) ([]any, error) {
	v, ok := e[name]
	if !ok || v == nil {
		return []any{}, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q has unexpected type %T", name, v)
	}
	return list, nil
}

// DecodeEnvelope parses body as a JSON object. Anything else is a DecodeError carrying a diagnostic
// extracted from the body.
func DecodeEnvelope(endpoint string, statusCode int, contentType string, body []byte) (Envelope, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var env Envelope
	err := decoder.Decode(&env)
	if err == nil && env == nil {
		err = fmt.Errorf("response body is JSON null")
	}
	if err != nil {
		return nil, &pdderrors.DecodeError{
			Endpoint:    endpoint,
			StatusCode:  statusCode,
			ContentType: contentType,
			Message:     DescribeBody(contentType, body),
			RawResponse: string(body),
			Err:         err,
		}
	}
	return env, nil
}

// CheckSuccess returns a RemoteError unless the envelope reports success.
func CheckSuccess(endpoint string, env Envelope) error {
	if env.Success() {
		return nil
	}
	return pdderrors.NewRemoteError(endpoint, env.ErrorMessage())
}

// HandleAPIResponse reads and closes the response body, decodes the envelope and checks success.
// The body itself is never logged since it can carry mailbox OAuth tokens.
func HandleAPIResponse(endpoint string, resp *http.Response, log logger.Logger) (Envelope, error) {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, &pdderrors.DecodeError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    "failed to read response body",
			Err:        err,
		}
	}

	contentType := resp.Header.Get("Content-Type")
	switch {
	case status.IsRedirectStatusCode(resp.StatusCode):
		log.Warn("Redirect response was not followed",
			zap.String("endpoint", endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.String("location", resp.Header.Get("Location")),
		)
	case !status.IsSuccessStatusCode(resp.StatusCode):
		log.Warn("Non-success HTTP status from API",
			zap.String("endpoint", endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.String("status_message", status.TranslateStatusCode(resp.StatusCode)),
			zap.Bool("transient", status.IsTransientError(resp.StatusCode)),
		)
	}

	env, err := DecodeEnvelope(endpoint, resp.StatusCode, contentType, bodyBytes)
	if err != nil {
		log.Error("Failed to decode response envelope",
			zap.String("endpoint", endpoint),
			zap.String("content_type", contentType),
			zap.Int("body_length", len(bodyBytes)),
			zap.Error(err),
		)
		return nil, err
	}

	if err := CheckSuccess(endpoint, env); err != nil {
		log.Warn("API reported failure", zap.String("endpoint", endpoint), zap.String("error", env.ErrorMessage()))
		return nil, err
	}

	log.Debug("Successfully decoded response envelope", zap.String("endpoint", endpoint), zap.Int("fields", len(env)))
	return env, nil
}

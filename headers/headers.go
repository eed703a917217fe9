// headers/headers.go
package headers

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-yandexpdd/headers/redact"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/logger"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/version"
	"go.uber.org/zap"
)

const (
	// PddTokenHeader carries the opaque administrator or registrar token.
	PddTokenHeader = "PddToken"

	ContentTypeForm = "application/x-www-form-urlencoded"
	AcceptJSON      = "application/json"
)

// HeaderHandler is responsible for managing and setting headers on HTTP requests.
type HeaderHandler struct {
	req   *http.Request // The http.Request for which headers are being managed
	log   logger.Logger // The logger to use for logging headers
	token string        // The token to use for setting the PddToken header
}

// NewHeaderHandler creates a new instance of HeaderHandler for a given http.Request, logger and token.
func NewHeaderHandler(req *http.Request, log logger.Logger, token string) *HeaderHandler {
	return &HeaderHandler{
		req:   req,
		log:   log,
		token: token,
	}
}

// SetPddToken sets the PddToken authentication header.
func (h *HeaderHandler) SetPddToken(token string) {
	h.req.Header.Set(PddTokenHeader, token)
}

// SetContentType sets the Content-Type header for the request.
func (h *HeaderHandler) SetContentType(contentType string) {
	h.req.Header.Set("Content-Type", contentType)
}

// SetAccept sets the Accept header for the request.
func (h *HeaderHandler) SetAccept(acceptHeader string) {
	h.req.Header.Set("Accept", acceptHeader)
}

// SetUserAgent sets the User-Agent header for the request.
func (h *HeaderHandler) SetUserAgent(userAgent string) {
	h.req.Header.Set("User-Agent", userAgent)
}

// SetRequestHeaders sets every header the PDD API expects. Form content type is only set when the
// request carries a body.
func (h *HeaderHandler) SetRequestHeaders() {
	h.SetPddToken(h.token)
	h.SetAccept(AcceptJSON)
	h.SetUserAgent(version.GetUserAgentHeader())
	if h.req.Method == http.MethodPost {
		h.SetContentType(ContentTypeForm)
	}
}

// RedactedHeaders returns a copy of the request headers safe for logging.
func (h *HeaderHandler) RedactedHeaders(hideSensitiveData bool) http.Header {
	redactedHeaders := http.Header{}
	for name, values := range h.req.Header {
		for _, v := range values {
			redactedHeaders.Add(name, redact.RedactSensitiveHeaderData(hideSensitiveData, name, v))
		}
	}
	return redactedHeaders
}

// LogHeaders prints all the current headers in the http.Request at debug level.
// The PddToken header is always redacted; others follow hideSensitiveData.
func (h *HeaderHandler) LogHeaders(hideSensitiveData bool) {
	if h.log.GetLogLevel() <= logger.LogLevelDebug {
		h.log.Debug("HTTP Request Headers", zap.String("Headers", HeadersToString(h.RedactedHeaders(hideSensitiveData))))
	}
}

// HeadersToString converts a http.Header to a string for logging,
// with each header on a new line for readability. Names are sorted.
func HeadersToString(headers http.Header) string {
	var headerStrings []string
	for name, values := range headers {
		headerStrings = append(headerStrings, fmt.Sprintf("%s: %s", name, strings.Join(values, ", ")))
	}
	sort.Strings(headerStrings)
	return strings.Join(headerStrings, "\n")
}

// CheckDeprecationHeader checks the response headers for the Deprecation header and logs a warning if present.
func CheckDeprecationHeader(resp *http.Response, log logger.Logger) {
	deprecationHeader := resp.Header.Get("Deprecation")
	if deprecationHeader != "" {
		endpoint := ""
		if resp.Request != nil && resp.Request.URL != nil {
			endpoint = resp.Request.URL.Path
		}
		log.Warn("API endpoint is deprecated",
			zap.String("Date", deprecationHeader),
			zap.String("Endpoint", endpoint),
		)
	}
}

// headers/headers_test.go
package headers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-yandexpdd/logger"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/mocklogger"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSetRequestHeaders(t *testing.T) {
	tests := []struct {
		method          string
		wantContentType string
	}{
		{http.MethodPost, ContentTypeForm},
		{http.MethodGet, ""},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "https://pddimp.yandex.ru/api2/admin/email/add", nil)
			NewHeaderHandler(req, logger.NewNopLogger(), "secret").SetRequestHeaders()

			assert.Equal(t, "secret", req.Header.Get(PddTokenHeader))
			assert.Equal(t, AcceptJSON, req.Header.Get("Accept"))
			assert.Equal(t, version.GetUserAgentHeader(), req.Header.Get("User-Agent"))
			assert.Equal(t, tt.wantContentType, req.Header.Get("Content-Type"))
		})
	}
}

func TestRedactedHeadersNeverExposeToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "https://pddimp.yandex.ru/api2/admin/dns/list", nil)
	h := NewHeaderHandler(req, logger.NewNopLogger(), "secret")
	h.SetRequestHeaders()

	for _, hide := range []bool{true, false} {
		redacted := h.RedactedHeaders(hide)
		assert.Equal(t, "REDACTED", redacted.Get(PddTokenHeader))
		assert.NotContains(t, HeadersToString(redacted), "secret")
	}
	assert.Equal(t, "secret", req.Header.Get(PddTokenHeader), "original request must keep the token")
}

func TestLogHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "https://pddimp.yandex.ru/api2/admin/dns/list", nil)

	mockLogger := mocklogger.NewMockLogger()
	mockLogger.On("GetLogLevel").Return(logger.LogLevelDebug)
	mockLogger.On("Debug", "HTTP Request Headers", mock.Anything).Once()

	h := NewHeaderHandler(req, mockLogger, "secret")
	h.SetRequestHeaders()
	h.LogHeaders(false)

	mockLogger.AssertExpectations(t)
}

func TestHeadersToString(t *testing.T) {
	headers := http.Header{}
	headers.Set("B", "2")
	headers.Add("A", "1")
	headers.Add("A", "3")

	assert.Equal(t, "A: 1, 3\nB: 2", HeadersToString(headers))
}

func TestCheckDeprecationHeader(t *testing.T) {
	mockLogger := mocklogger.NewMockLogger()
	mockLogger.On("Warn", "API endpoint is deprecated", mock.Anything).Once()

	resp := &http.Response{Header: http.Header{}, Request: httptest.NewRequest(http.MethodGet, "https://pddimp.yandex.ru/api2/admin/dns/list", nil)}
	CheckDeprecationHeader(resp, mockLogger)
	mockLogger.AssertNotCalled(t, "Warn", mock.Anything, mock.Anything)

	resp.Header.Set("Deprecation", "Sun, 01 Jan 2034 00:00:00 GMT")
	CheckDeprecationHeader(resp, mockLogger)
	mockLogger.AssertExpectations(t)
}

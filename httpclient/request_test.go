// httpclient/request_test.go
package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pdderrors "github.com/deploymenttheory/go-api-sdk-yandexpdd/errors"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/mocklogger"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExecute_PostFormBody(t *testing.T) {
	client, executor := newTestClient(t, testConfig(), JSONResponse(`{"success":"ok","uid":42}`))

	uid, err := client.Execute(context.Background(), "email/add", Params{"login": "alice", "password": "pw", "iname": nil}, "post", ProjectField("uid"))
	require.NoError(t, err)
	assert.Equal(t, json.Number("42"), uid)

	req, ok := executor.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://pddimp.yandex.ru/api2/admin/email/add", req.URL.String())
	assert.Equal(t, "ABCDEF0123456789", req.Header.Get("PddToken"))
	assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
	assert.Equal(t, "alice", req.Form.Get("login"))
	assert.Equal(t, "pw", req.Form.Get("password"))
	assert.Equal(t, "example.com", req.Form.Get("domain"))
	assert.NotContains(t, req.Form, "iname")
	assert.Equal(t, 1, executor.CallCount())
}

func TestExecute_GetQueryString(t *testing.T) {
	client, executor := newTestClient(t, testConfig(), JSONResponse(`{"success":"ok","records":[]}`))

	records, err := client.Execute(context.Background(), "dns/list", Params{"domain": "other.org"}, "GET", ProjectField("records"))
	require.NoError(t, err)
	assert.Equal(t, []any{}, records)

	req, _ := executor.LastRequest()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api2/admin/dns/list", req.URL.Path)
	assert.Equal(t, "other.org", req.Form.Get("domain"))
	assert.Empty(t, req.Header.Get("Content-Type"))
}

func TestExecute_RegistrarRole(t *testing.T) {
	config := testConfig()
	config.Registrar = true
	client, executor := newTestClient(t, config, JSONResponse(`{"success":"ok"}`))

	_, err := client.Execute(context.Background(), "domain/register", nil, "POST", ProjectFull())
	require.NoError(t, err)

	req, _ := executor.LastRequest()
	assert.Equal(t, "/api2/registrar/domain/register", req.URL.Path)
}

func TestExecute_ResponseFullBypassesRule(t *testing.T) {
	config := testConfig()
	config.ResponseFull = true
	client, _ := newTestClient(t, config, JSONResponse(`{"success":"ok","uid":42}`))

	result, err := client.Execute(context.Background(), "email/add", Params{"login": "alice"}, "POST", ProjectField("uid"))
	require.NoError(t, err)

	env, ok := result.(response.Envelope)
	require.True(t, ok)
	assert.Equal(t, "ok", env["success"])
	assert.Equal(t, json.Number("42"), env["uid"])
}

func TestExecute_ConstantRule(t *testing.T) {
	client, _ := newTestClient(t, testConfig(), JSONResponse(`{"success":"ok","domain":"example.com"}`))

	result, err := client.Execute(context.Background(), "email/del", Params{"login": "alice"}, "POST", ProjectConstant(true))
	require.NoError(t, err)
	assert.Equal(t, true, result)
}

func TestExecute_RemoteError(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{"with error field", `{"success":"error","error":"occupied"}`, "occupied"},
		{"without error field", `{"success":"error"}`, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, testConfig(), JSONResponse(tt.body))

			_, err := client.Execute(context.Background(), "email/add", Params{"login": "alice"}, "POST", ProjectField("uid"))
			require.Error(t, err)

			var remote *pdderrors.RemoteError
			require.True(t, errors.As(err, &remote))
			assert.Equal(t, tt.wantMessage, remote.Message)
		})
	}
}

func TestExecute_InvalidMethodMakesNoCall(t *testing.T) {
	client, executor := newTestClient(t, testConfig(), JSONResponse(`{"success":"ok"}`))

	_, err := client.Execute(context.Background(), "email/add", nil, "PUT", ProjectFull())
	require.Error(t, err)
	assert.True(t, errors.Is(err, pdderrors.ErrInvalidMethod))
	assert.Equal(t, 0, executor.CallCount())
}

func TestExecute_TransportError(t *testing.T) {
	client, executor := newTestClient(t, testConfig(), MockResponse{Err: errors.New("connection refused")})

	_, err := client.Execute(context.Background(), "dns/list", Params{"login": "alice"}, "GET", ProjectField("records"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, pdderrors.ErrTransport))
	assert.NotContains(t, err.Error(), "alice")
	assert.NotContains(t, err.Error(), "ABCDEF0123456789")
	assert.Equal(t, 1, executor.CallCount())
}

func TestExecute_DecodeError(t *testing.T) {
	client, _ := newTestClient(t, testConfig(), MockResponse{
		StatusCode:  http.StatusBadGateway,
		ContentType: "text/html",
		Body:        `<html><body><h1>Bad Gateway</h1></body></html>`,
	})

	_, err := client.Execute(context.Background(), "dns/list", nil, "GET", ProjectField("records"))
	require.Error(t, err)

	var decodeErr *pdderrors.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, http.StatusBadGateway, decodeErr.StatusCode)
	assert.Equal(t, "Bad Gateway", decodeErr.Message)
}

func TestExecute_MissingProjectedField(t *testing.T) {
	client, _ := newTestClient(t, testConfig(), JSONResponse(`{"success":"ok"}`))

	_, err := client.Execute(context.Background(), "email/add", nil, "POST", ProjectField("uid"))
	assert.True(t, errors.Is(err, pdderrors.ErrDecode))
}

func TestExecute_DoesNotMutateParams(t *testing.T) {
	client, _ := newTestClient(t, testConfig(), JSONResponse(`{"success":"ok"}`))
	params := Params{"login": "alice", "uid": nil}

	_, err := client.Execute(context.Background(), "email/del", params, "POST", ProjectConstant(true))
	require.NoError(t, err)
	assert.Equal(t, Params{"login": "alice", "uid": nil}, params)
}

func TestExecute_LogsWithRequestID(t *testing.T) {
	client, _ := newTestClient(t, testConfig(), JSONResponse(`{"success":"ok"}`))
	mockLogger := mocklogger.NewMockLogger().AllowAll()
	client.Logger = mockLogger

	_, err := client.Execute(context.Background(), "deputy/list", nil, "GET", ProjectFull())
	require.NoError(t, err)

	mockLogger.AssertCalled(t, "With", mock.Anything)
	mockLogger.AssertCalled(t, "LogRequestStart", "pdd_api_call", mock.AnythingOfType("string"), "GET",
		"https://pddimp.yandex.ru/api2/admin/deputy/list",
		mock.MatchedBy(func(h http.Header) bool { return h.Get("PddToken") == "REDACTED" }))
	mockLogger.AssertCalled(t, "LogRequestEnd", "pdd_api_call", "GET", "https://pddimp.yandex.ru/api2/admin/deputy/list", http.StatusOK, mock.Anything)
}

func TestExecute_ProdExecutorRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("PddToken") != "ABCDEF0123456789" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":"error","error":"no_auth"}`))
			return
		}
		_ = r.ParseForm()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": "ok",
			"path":    r.URL.Path,
			"login":   r.PostForm.Get("login"),
			"domain":  r.PostForm.Get("domain"),
		})
	}))
	defer server.Close()

	config := testConfig()
	config.BaseURL = server.URL + "/api2/"
	client, err := BuildClient(config, false, nil)
	require.NoError(t, err)

	result, err := client.Execute(context.Background(), "email/add", Params{"login": "alice"}, "POST", ProjectFull())
	require.NoError(t, err)

	env := result.(response.Envelope)
	assert.Equal(t, "/api2/admin/email/add", env["path"])
	assert.Equal(t, "alice", env["login"])
	assert.Equal(t, "example.com", env["domain"])
}

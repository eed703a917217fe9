// httpclient/client_test.go
package httpclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildClient_Defaults(t *testing.T) {
	client, err := BuildClient(ClientConfig{Domain: "example.com", Token: "t"}, true, NewMockExecutor())
	require.NoError(t, err)

	config := client.Config()
	assert.Equal(t, DefaultBaseURL, config.BaseURL)
	assert.Equal(t, DefaultLogLevelString, config.LogLevel)
	assert.Equal(t, DefaultLogOutputFormatString, config.LogOutputFormat)
	assert.Equal(t, DefaultCustomTimeout, config.CustomTimeout)
	assert.Equal(t, DefaultMaxRedirects, config.MaxRedirects)
	assert.Equal(t, "example.com", client.Domain())
	assert.False(t, client.ResponseFull())
}

func TestBuildClient_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr string
	}{
		{"missing domain", func(c *ClientConfig) { c.Domain = "" }, "domain is required"},
		{"missing token", func(c *ClientConfig) { c.Token = "" }, "token is required"},
		{"relative base url", func(c *ClientConfig) { c.BaseURL = "/api2/" }, "absolute http(s) url"},
		{"ftp base url", func(c *ClientConfig) { c.BaseURL = "ftp://pddimp.yandex.ru/" }, "absolute http(s) url"},
		{"unknown log level", func(c *ClientConfig) { c.LogLevel = "verbose" }, "unknown log level"},
		{"unknown log format", func(c *ClientConfig) { c.LogOutputFormat = "pretty" }, "unknown log output format"},
		{"negative timeout", func(c *ClientConfig) { c.CustomTimeout = -time.Second }, "timeout cannot be less than 0"},
		{"negative redirects", func(c *ClientConfig) { c.MaxRedirects = -1 }, "max redirects cannot be less than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig()
			tt.mutate(&config)

			client, err := BuildClient(config, false, NewMockExecutor())
			require.Error(t, err)
			assert.Nil(t, client)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildClient_TokenNotInErrors(t *testing.T) {
	config := testConfig()
	config.BaseURL = "not a url"

	_, err := BuildClient(config, false, NewMockExecutor())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), config.Token)
}

func TestBuildClient_InvalidProxy(t *testing.T) {
	config := testConfig()
	config.ProxyURL = "proxy.local"

	_, err := BuildClient(config, false, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid proxy configuration")
}

func TestEndpointURL(t *testing.T) {
	tests := []struct {
		name      string
		baseURL   string
		registrar bool
		endpoint  string
		want      string
	}{
		{"admin", testBaseURL, false, "email/add", "https://pddimp.yandex.ru/api2/admin/email/add"},
		{"registrar", testBaseURL, true, "domain/register", "https://pddimp.yandex.ru/api2/registrar/domain/register"},
		{"no trailing slash", "https://pddimp.yandex.ru/api2", false, "/dns/list", "https://pddimp.yandex.ru/api2/admin/dns/list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig()
			config.BaseURL = tt.baseURL
			config.Registrar = tt.registrar
			client, _ := newTestClient(t, config)

			assert.Equal(t, tt.want, client.EndpointURL(tt.endpoint))
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PDD_DOMAIN", "example.org")
	t.Setenv("PDD_TOKEN", "env-token")
	t.Setenv("PDD_REGISTRAR", "true")
	t.Setenv("PDD_RESPONSE_FULL", "true")
	t.Setenv("PDD_CUSTOM_TIMEOUT", "30s")
	t.Setenv("PDD_LOG_LEVEL", "LogLevelDebug")

	config, err := LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "example.org", config.Domain)
	assert.Equal(t, "env-token", config.Token)
	assert.True(t, config.Registrar)
	assert.True(t, config.ResponseFull)
	assert.Equal(t, 30*time.Second, config.CustomTimeout)
	assert.Equal(t, "LogLevelDebug", config.LogLevel)
	assert.Equal(t, DefaultBaseURL, config.BaseURL)
	assert.Equal(t, DefaultLogOutputFormatString, config.LogOutputFormat)
}

func TestLoadConfigFromEnv_BadValue(t *testing.T) {
	t.Setenv("PDD_CUSTOM_TIMEOUT", "soon")

	_, err := LoadConfigFromEnv()
	assert.Error(t, err)
}

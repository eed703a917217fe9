package httpclient

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://pddimp.yandex.ru/api2/"

func testConfig() ClientConfig {
	return ClientConfig{
		Domain:  "example.com",
		Token:   "ABCDEF0123456789",
		BaseURL: testBaseURL,
	}
}

func newTestClient(t *testing.T, config ClientConfig, responses ...MockResponse) (*Client, *MockExecutor) {
	t.Helper()
	executor := NewMockExecutor(responses...)
	client, err := BuildClient(config, false, executor)
	require.NoError(t, err)
	return client, executor
}

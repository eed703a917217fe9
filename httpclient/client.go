// httpclient/client.go
/* The `httpclient` package translates a typed PDD API call into exactly one HTTP round trip.
Parameters are normalized into a form body or query string and sent to <base>/<role>/<endpoint> with
the PddToken header. The JSON envelope is checked for success and projected onto the result shape the
caller asked for. Nothing is retried or cached between calls. */
package httpclient

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/deploymenttheory/go-api-sdk-yandexpdd/logger"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/proxy"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/redirecthandler"
	"go.uber.org/zap"
)

const (
	RoleAdmin     = "admin"
	RoleRegistrar = "registrar"
)

// Client is the RequestTranslator. It is safe for concurrent use; config is never mutated after BuildClient.
type Client struct {
	config ClientConfig
	http   HTTPExecutor

	Logger logger.Logger
}

// ClientConfig options for Client. Token is an opaque credential and is never logged.
type ClientConfig struct {
	// Api
	Domain       string `envconfig:"DOMAIN"`
	Token        string `envconfig:"TOKEN"`
	BaseURL      string `envconfig:"BASE_URL"`
	Registrar    bool   `envconfig:"REGISTRAR"`
	ResponseFull bool   `envconfig:"RESPONSE_FULL"`

	// Log
	LogLevel            string `envconfig:"LOG_LEVEL"`
	LogOutputFormat     string `envconfig:"LOG_OUTPUT_FORMAT"` // "json" or "console"
	LogConsoleSeparator string `envconfig:"LOG_CONSOLE_SEPARATOR"`
	HideSensitiveData   bool   `envconfig:"HIDE_SENSITIVE_DATA"`

	// Transport, only applied to the production executor
	CustomTimeout time.Duration `envconfig:"CUSTOM_TIMEOUT"`
	MaxRedirects  int           `envconfig:"MAX_REDIRECTS"`
	ProxyURL      string        `envconfig:"PROXY_URL"`
	ProxyUsername string        `envconfig:"PROXY_USERNAME"`
	ProxyPassword string        `envconfig:"PROXY_PASSWORD"`
}

// BuildClient creates a new Client with the provided configuration. When executor is nil a production
// executor backed by net/http is built from the transport settings.
func BuildClient(config ClientConfig, populateDefaultValues bool, executor HTTPExecutor) (*Client, error) {
	if populateDefaultValues {
		SetDefaultValuesClientConfig(&config)
	}

	if err := validateClientConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	parsedLogLevel := logger.ParseLogLevelFromString(config.LogLevel)
	log := logger.BuildLogger(parsedLogLevel, config.LogOutputFormat, config.LogConsoleSeparator)

	if executor == nil {
		httpClient := &http.Client{
			Timeout: config.CustomTimeout,
		}
		if err := proxy.InitializeProxy(httpClient, config.ProxyURL, config.ProxyUsername, config.ProxyPassword, log); err != nil {
			return nil, fmt.Errorf("invalid proxy configuration: %w", err)
		}
		if err := redirecthandler.SetupRedirectHandler(httpClient, config.MaxRedirects, log); err != nil {
			return nil, fmt.Errorf("invalid redirect configuration: %w", err)
		}
		executor = &ProdExecutor{Client: httpClient}
	}

	client := &Client{
		config: config,
		http:   executor,
		Logger: log,
	}

	log.Debug("New PDD API client initialized",
		zap.String("Domain", config.Domain),
		zap.String("Base URL", config.BaseURL),
		zap.String("Role", client.RoleSegment()),
		zap.Bool("Response Full", config.ResponseFull),
		zap.String("Logging Level", config.LogLevel),
		zap.String("Log Encoding Format", config.LogOutputFormat),
		zap.Bool("Hide Sensitive Data In Logs", config.HideSensitiveData),
		zap.Duration("Custom Timeout", config.CustomTimeout),
		zap.Int("Max Redirects", config.MaxRedirects),
		zap.Bool("Proxy Configured", config.ProxyURL != ""),
	)

	return client, nil
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() ClientConfig {
	return c.config
}

// Domain returns the configured domain name.
func (c *Client) Domain() string {
	return c.config.Domain
}

// ResponseFull reports whether calls return the raw envelope instead of the projected value.
func (c *Client) ResponseFull() bool {
	return c.config.ResponseFull
}

// RoleSegment returns the URL path segment chosen by the actor role.
func (c *Client) RoleSegment() string {
	if c.config.Registrar {
		return RoleRegistrar
	}
	return RoleAdmin
}

// EndpointURL builds <baseURL>/<role>/<endpoint>.
func (c *Client) EndpointURL(endpoint string) string {
	return strings.TrimRight(c.config.BaseURL, "/") + "/" + c.RoleSegment() + "/" + strings.TrimLeft(endpoint, "/")
}

// httpclient/config.go
// Description: Default values, validation and environment loading for ClientConfig.
package httpclient

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"time"

	"github.com/deploymenttheory/go-api-sdk-yandexpdd/logger"
	"github.com/kelseyhightower/envconfig"
)

const (
	DefaultBaseURL               = "https://pddimp.yandex.ru/api2/"
	DefaultLogLevelString        = "LogLevelInfo"
	DefaultLogOutputFormatString = logger.LogOutputConsole
	DefaultLogConsoleSeparator   = "	"
	DefaultCustomTimeout         = 10 * time.Second
	DefaultMaxRedirects          = 5

	// EnvPrefix is prepended to every variable read by LoadConfigFromEnv, e.g. PDD_TOKEN.
	EnvPrefix = "PDD"
)

// LoadConfigFromEnv loads client configuration from PDD_* environment variables.
// Unset variables fall back to the defaults defined in the constants above.
func LoadConfigFromEnv() (*ClientConfig, error) {
	var config ClientConfig
	if err := envconfig.Process(EnvPrefix, &config); err != nil {
		return nil, fmt.Errorf("could not load configuration from environment: %w", err)
	}

	SetDefaultValuesClientConfig(&config)

	return &config, nil
}

// SetDefaultValuesClientConfig fills every zero valued optional field. Domain and Token have no default.
func SetDefaultValuesClientConfig(config *ClientConfig) {
	setDefaultString(&config.BaseURL, DefaultBaseURL)
	setDefaultString(&config.LogLevel, DefaultLogLevelString)
	setDefaultString(&config.LogOutputFormat, DefaultLogOutputFormatString)
	setDefaultString(&config.LogConsoleSeparator, DefaultLogConsoleSeparator)
	setDefaultDuration(&config.CustomTimeout, DefaultCustomTimeout)
	setDefaultInt(&config.MaxRedirects, DefaultMaxRedirects)
}

// validateClientConfig rejects configurations the client cannot be built from. An empty log level
// disables logging and an empty output format selects json.
func validateClientConfig(config ClientConfig) error {
	if config.Domain == "" {
		return errors.New("domain is required")
	}

	if config.Token == "" {
		return errors.New("token is required")
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return fmt.Errorf("base url could not be parsed: %w", err)
	}
	if (baseURL.Scheme != "http" && baseURL.Scheme != "https") || baseURL.Host == "" {
		return fmt.Errorf("base url must be an absolute http(s) url, got %q", config.BaseURL)
	}

	if config.LogLevel != "" && !slices.Contains(logger.ValidLogLevels, config.LogLevel) {
		return fmt.Errorf("unknown log level %q, expected one of %v", config.LogLevel, logger.ValidLogLevels)
	}

	if config.LogOutputFormat != "" && !slices.Contains(logger.ValidLogOutputFormats, config.LogOutputFormat) {
		return fmt.Errorf("unknown log output format %q, expected one of %v", config.LogOutputFormat, logger.ValidLogOutputFormats)
	}

	if config.CustomTimeout < 0 {
		return errors.New("timeout cannot be less than 0 seconds")
	}

	if config.MaxRedirects < 0 {
		return errors.New("max redirects cannot be less than 0")
	}

	if config.ProxyURL != "" {
		if _, err := url.Parse(config.ProxyURL); err != nil {
			return fmt.Errorf("proxy url could not be parsed: %w", err)
		}
	}

	return nil
}

func setDefaultString(field *string, defaultValue string) {
	if *field == "" {
		*field = defaultValue
	}
}

func setDefaultInt(field *int, defaultValue int) {
	if *field == 0 {
		*field = defaultValue
	}
}

func setDefaultDuration(field *time.Duration, defaultValue time.Duration) {
	if *field == 0 {
		*field = defaultValue
	}
}

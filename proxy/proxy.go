// proxy/proxy.go
package proxy

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-yandexpdd/logger"
	"go.uber.org/zap"
)

// InitializeProxy routes httpClient through proxyURL. Basic proxy credentials are attached when both
// username and password are set. An empty proxyURL leaves the client untouched.
func InitializeProxy(httpClient *http.Client, proxyURL, proxyUsername, proxyPassword string, log logger.Logger) error {
	if proxyURL == "" {
		return nil
	}

	parsedProxyURL, err := url.Parse(proxyURL)
	if err != nil {
		log.Error("Failed to parse proxy URL", zap.Error(err))
		return err
	}
	if parsedProxyURL.Scheme == "" || parsedProxyURL.Host == "" {
		log.Error("Proxy URL must include scheme and host", zap.String("ProxyHost", parsedProxyURL.Host))
		return fmt.Errorf("proxy url must include scheme and host")
	}

	transport := &http.Transport{}
	if proxyUsername != "" && proxyPassword != "" {
		parsedProxyURL.User = url.UserPassword(proxyUsername, proxyPassword)
	}
	transport.Proxy = http.ProxyURL(parsedProxyURL)
	httpClient.Transport = transport

	// Credentials stay out of the log.
	log.Info("Proxy configured", zap.String("ProxyHost", parsedProxyURL.Host), zap.Bool("ProxyAuth", parsedProxyURL.User != nil))
	return nil
}

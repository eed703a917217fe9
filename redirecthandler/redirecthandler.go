// redirecthandler/redirecthandler.go
package redirecthandler

import (
	"fmt"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-yandexpdd/headers"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/logger"
	"go.uber.org/zap"
)

// RedirectHandler is the redirect policy of the production transport. POST requests are never
// redirected. GET redirects are followed up to MaxRedirects without carrying credentials to another host.
type RedirectHandler struct {
	Logger           logger.Logger
	MaxRedirects     int      // Maximum allowed redirects to prevent infinite loops.
	SensitiveHeaders []string // Headers removed on cross-host redirects.
}

// NewRedirectHandler creates a new instance of RedirectHandler.
func NewRedirectHandler(log logger.Logger, maxRedirects int) *RedirectHandler {
	return &RedirectHandler{
		Logger:           log,
		MaxRedirects:     maxRedirects,
		SensitiveHeaders: []string{headers.PddTokenHeader, "Authorization", "Cookie"},
	}
}

// WithRedirectHandling applies the redirect handling policy to an http.Client.
func (r *RedirectHandler) WithRedirectHandling(client *http.Client) {
	client.CheckRedirect = r.checkRedirect
}

// checkRedirect is stateless; everything it needs is in via.
func (r *RedirectHandler) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) == 0 {
		return nil
	}
	original := via[0]

	if original.Method == http.MethodPost {
		r.Logger.Warn("Redirect attempted on POST request, not following",
			zap.String("endpoint", original.URL.Path),
			zap.String("location", req.URL.Host+req.URL.Path),
		)
		return http.ErrUseLastResponse
	}

	if r.MaxRedirects == 0 {
		return http.ErrUseLastResponse
	}

	if len(via) > r.MaxRedirects {
		r.Logger.Warn("Maximum redirects reached", zap.Int("maxRedirects", r.MaxRedirects))
		return &MaxRedirectsError{MaxRedirects: r.MaxRedirects}
	}

	for _, previous := range via {
		if previous.URL.String() == req.URL.String() {
			r.Logger.Error("Redirect loop detected", zap.String("url", req.URL.Host+req.URL.Path))
			return &RedirectLoopError{URL: req.URL.Host + req.URL.Path}
		}
	}

	if req.URL.Host != original.URL.Host {
		r.secureRequest(req)
	}

	r.Logger.Debug("Following redirect",
		zap.String("from", via[len(via)-1].URL.Host+via[len(via)-1].URL.Path),
		zap.String("to", req.URL.Host+req.URL.Path),
		zap.Int("redirectCount", len(via)),
	)
	return nil
}

// secureRequest removes sensitive headers when the redirect leaves the original host.
func (r *RedirectHandler) secureRequest(req *http.Request) {
	for _, header := range r.SensitiveHeaders {
		req.Header.Del(header)
	}
}

// RedirectLoopError represents an error when a redirect loop is detected.
type RedirectLoopError struct {
	URL string
}

func (e *RedirectLoopError) Error() string {
	return fmt.Sprintf("redirect loop detected at %s", e.URL)
}

// MaxRedirectsError represents an error when the maximum number of redirects is reached.
type MaxRedirectsError struct {
	MaxRedirects int
}

func (e *MaxRedirectsError) Error() string {
	return fmt.Sprintf("maximum redirects reached: %d", e.MaxRedirects)
}

// SetupRedirectHandler installs the policy on client. maxRedirects of zero disables following entirely.
func SetupRedirectHandler(client *http.Client, maxRedirects int, log logger.Logger) error {
	if maxRedirects < 0 {
		log.Error("Invalid maxRedirects value", zap.Int("maxRedirects", maxRedirects))
		return fmt.Errorf("invalid maxRedirects value: %d", maxRedirects)
	}

	NewRedirectHandler(log, maxRedirects).WithRedirectHandling(client)
	log.Debug("Redirect handling configured", zap.Int("MaxRedirects", maxRedirects))
	return nil
}

// logger/logfields.go
package logger

import (
	"time"

	"go.uber.org/zap"
)

// LogRequestStart logs the initiation of an HTTP request: method, URL and (already redacted) headers.
func (d *defaultLogger) LogRequestStart(event string, requestID string, method string, url string, headers map[string][]string) {
	if d.logLevel > LogLevelDebug {
		return
	}
	d.logger.Debug("HTTP request started",
		zap.String("event", event),
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", url),
		zap.Reflect("headers", headers),
	)
}

// LogRequestEnd logs the completion of an HTTP request, including the status code and duration.
func (d *defaultLogger) LogRequestEnd(event string, method string, url string, statusCode int, duration time.Duration) {
	if d.logLevel > LogLevelDebug {
		return
	}
	d.logger.Debug("HTTP request completed",
		zap.String("event", event),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", statusCode),
		zap.Duration("duration", duration),
	)
}

// LogError logs an error that occurred while processing an HTTP request.
func (d *defaultLogger) LogError(event string, method string, url string, statusCode int, err error) {
	if d.logLevel > LogLevelError {
		return
	}
	errorMessage := ""
	if err != nil {
		errorMessage = err.Error()
	}
	d.logger.Error("Error during HTTP request",
		zap.String("event", event),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", statusCode),
		zap.String("error_message", errorMessage),
	)
}

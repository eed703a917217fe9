// status/status.go
// Package status classifies HTTP status codes for diagnostics. The PDD API signals failure in the JSON
// envelope rather than the status line, so none of these decide success; they only annotate logs and
// decode errors.
package status

import (
	"fmt"
	"net/http"
)

// IsSuccessStatusCode reports a 2xx status.
func IsSuccessStatusCode(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// IsRedirectStatusCode checks if the provided HTTP status code is one of the redirect codes.
func IsRedirectStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

// IsTransientError checks if the status code usually indicates a temporary upstream condition.
func IsTransientError(statusCode int) bool {
	transientStatusCodes := map[int]bool{
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
		http.StatusGatewayTimeout:      true,
	}
	return transientStatusCodes[statusCode]
}

// TranslateStatusCode provides a human-readable message for HTTP status codes.
func TranslateStatusCode(statusCode int) string {
	if statusCode == 0 {
		return "No status code received, possible network or connection error."
	}

	messages := map[int]string{
		http.StatusOK:                  "Request successful.",
		http.StatusBadRequest:          "Bad request. Verify the syntax of the request.",
		http.StatusUnauthorized:        "Authentication failed. Verify the PddToken being used for the request.",
		http.StatusForbidden:           "Invalid permissions. Verify the token has access to the domain.",
		http.StatusNotFound:            "Resource not found. Verify the URL path and role segment are correct.",
		http.StatusMethodNotAllowed:    "Method not allowed. The method specified is not allowed for the resource.",
		http.StatusRequestTimeout:      "Request timeout. The server timed out waiting for the request.",
		http.StatusTooManyRequests:     "Too many requests. The user has sent too many requests in a given amount of time.",
		http.StatusInternalServerError: "Internal server error. The server encountered an unexpected condition that prevented it from fulfilling the request.",
		http.StatusBadGateway:          "Bad gateway. The server received an invalid response from the upstream server while trying to fulfill the request.",
		http.StatusServiceUnavailable:  "Service unavailable. The server is currently unable to handle the request due to temporary overloading or maintenance.",
		http.StatusGatewayTimeout:      "Gateway timeout. The server did not receive a timely response from the upstream server.",
	}

	if message, exists := messages[statusCode]; exists {
		return message
	}
	if text := http.StatusText(statusCode); text != "" {
		return text + "."
	}
	return fmt.Sprintf("Unknown status code: %d", statusCode)
}

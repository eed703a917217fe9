// headers/redact/redact.go
package redact

import "net/http"

// RedactedValue replaces the value of a redacted header.
const RedactedValue = "REDACTED"

// alwaysRedacted headers carry the PDD credential and are masked regardless of configuration.
var alwaysRedacted = map[string]bool{
	"Pddtoken": true,
}

// sensitiveKeys are masked only when hideSensitiveData is set.
var sensitiveKeys = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
	"Set-Cookie":    true,
}

// RedactSensitiveHeaderData redacts sensitive data based on the hideSensitiveData flag.
// The PddToken header is never returned in clear.
func RedactSensitiveHeaderData(hideSensitiveData bool, key, value string) string {
	canonical := http.CanonicalHeaderKey(key)
	if alwaysRedacted[canonical] {
		return RedactedValue
	}
	if hideSensitiveData && sensitiveKeys[canonical] {
		return RedactedValue
	}
	return value
}

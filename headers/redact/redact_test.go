// headers/redact/redact_test.go
package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRedactSensitiveHeaderData tests the RedactSensitiveHeaderData function to ensure it correctly redacts sensitive data.
func TestRedactSensitiveHeaderData(t *testing.T) {
	cases := []struct {
		name              string
		hideSensitiveData bool
		key               string
		value             string
		expected          string
	}{
		{"PddToken With Redaction", true, "PddToken", "some-sensitive-token", "REDACTED"},
		{"PddToken Without Redaction", false, "PddToken", "some-sensitive-token", "REDACTED"},
		{"PddToken Lower Case", false, "pddtoken", "some-sensitive-token", "REDACTED"},
		{"Authorization With Redaction", true, "Authorization", "Bearer x", "REDACTED"},
		{"Authorization Without Redaction", false, "Authorization", "Bearer x", "Bearer x"},
		{"Non-Sensitive Key With Redaction", true, "User-Agent", "MyCustomAgent", "MyCustomAgent"},
		{"Non-Sensitive Key Without Redaction", false, "User-Agent", "MyCustomAgent", "MyCustomAgent"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := RedactSensitiveHeaderData(tc.hideSensitiveData, tc.key, tc.value)
			assert.Equal(t, tc.expected, result, "Redacted value should match the expected outcome")
		})
	}
}

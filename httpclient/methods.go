// httpclient/methods.go
package httpclient

import (
	"net/http"
	"strings"

	pdderrors "github.com/deploymenttheory/go-api-sdk-yandexpdd/errors"
)

// NormalizeMethod upper-cases method and accepts only GET and POST, the two verbs the PDD API serves.
func NormalizeMethod(operation, method string) (string, error) {
	switch normalized := strings.ToUpper(strings.TrimSpace(method)); normalized {
	case http.MethodGet, http.MethodPost:
		return normalized, nil
	default:
		return "", pdderrors.NewInvalidMethodError(operation, method)
	}
}

// httpclient/projection.go
package httpclient

import (
	"fmt"

	pdderrors "github.com/deploymenttheory/go-api-sdk-yandexpdd/errors"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/response"
)

type projectionKind int

const (
	projectFull projectionKind = iota
	projectConstant
	projectField
)

// ProjectionRule selects what a successful call returns from its envelope.
type ProjectionRule struct {
	kind     projectionKind
	constant bool
	field    string
}

// ProjectFull returns the whole envelope.
func ProjectFull() ProjectionRule {
	return ProjectionRule{kind: projectFull}
}

// ProjectConstant ignores the envelope and returns value.
func ProjectConstant(value bool) ProjectionRule {
	return ProjectionRule{kind: projectConstant, constant: value}
}

// ProjectField returns the value of one named envelope field.
func ProjectField(name string) ProjectionRule {
	return ProjectionRule{kind: projectField, field: name}
}

// Apply projects a success envelope. A field the rule names but the envelope lacks is a DecodeError.
func (r ProjectionRule) Apply(endpoint string, env response.Envelope) (any, error) {
	switch r.kind {
	case projectConstant:
		return r.constant, nil
	case projectField:
		value, ok := env.Field(r.field)
		if !ok {
			return nil, &pdderrors.DecodeError{
				Endpoint: endpoint,
				Message:  fmt.Sprintf("field %q missing from success response", r.field),
			}
		}
		return value, nil
	default:
		return env, nil
	}
}

func (r ProjectionRule) String() string {
	switch r.kind {
	case projectConstant:
		return fmt.Sprintf("constant(%t)", r.constant)
	case projectField:
		return fmt.Sprintf("field(%s)", r.field)
	default:
		return "full"
	}
}

// errors/errors.go
// Package errors defines the error taxonomy surfaced by the client. Every failure a caller sees is one
// of four kinds: validation (nothing was sent), transport (the request did not complete), decode (the
// body was not a usable JSON envelope) or remote (the service answered with success != "ok").
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind sentinels, matched with errors.Is.
var (
	ErrValidation = stderrors.New("validation error")
	ErrTransport  = stderrors.New("transport error")
	ErrDecode     = stderrors.New("decode error")
	ErrRemote     = stderrors.New("remote error")
)

// Validation causes wrapped by ValidationError.
var (
	ErrInvalidMethod    = stderrors.New("http method must be GET or POST")
	ErrMissingParameter = stderrors.New("required parameter missing")
)

// UnknownRemoteMessage stands in for a failure envelope without an error field.
const UnknownRemoteMessage = "Unknown"

// ValidationError is returned before any network I/O takes place.
type ValidationError struct {
	Operation string // Endpoint or SDK operation being validated
	Field     string // Offending parameter(s), e.g. "login|uid"
	Message   string
	Err       error // ErrInvalidMethod, ErrMissingParameter, ...
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s: %s", e.Operation, e.Field, msg)
	}
	return fmt.Sprintf("validation error: %s: %s", e.Operation, msg)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is reports whether target is the validation kind sentinel.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewInvalidMethodError reports an HTTP method outside of GET/POST.
func NewInvalidMethodError(operation, method string) *ValidationError {
	return &ValidationError{
		Operation: operation,
		Field:     "method",
		Message:   fmt.Sprintf("unsupported http method %q, expected GET or POST", method),
		Err:       ErrInvalidMethod,
	}
}

// NewMissingParameterError reports that none of the alternatives were supplied.
func NewMissingParameterError(operation string, alternatives ...string) *ValidationError {
	field := ""
	for i, a := range alternatives {
		if i > 0 {
			field += "|"
		}
		field += a
	}
	msg := field + " required"
	if len(alternatives) > 1 {
		msg = "one of " + field + " required"
	}
	return &ValidationError{
		Operation: operation,
		Field:     field,
		Message:   msg,
		Err:       ErrMissingParameter,
	}
}

// TransportError wraps a failure of the HTTP executor. URL never carries the query string.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is reports whether target is the transport kind sentinel.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// DecodeError reports a body that could not be turned into a usable envelope.
type DecodeError struct {
	Endpoint    string
	StatusCode  int
	ContentType string
	Message     string // Best-effort diagnostic extracted from the body
	RawResponse string
	Err         error
}

func (e *DecodeError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("decode error: %s (status %d): %s", e.Endpoint, e.StatusCode, msg)
	}
	return fmt.Sprintf("decode error: %s: %s", e.Endpoint, msg)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is the decode kind sentinel.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// RemoteError is a well-formed envelope whose success field is not "ok".
type RemoteError struct {
	Endpoint string
	Message  string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error: %s: %s", e.Endpoint, e.Message)
}

// Is reports whether target is the remote kind sentinel.
func (e *RemoteError) Is(target error) bool { return target == ErrRemote }

// NewRemoteError builds a RemoteError, substituting "Unknown" for an empty message.
func NewRemoteError(endpoint, message string) *RemoteError {
	if message == "" {
		message = UnknownRemoteMessage
	}
	return &RemoteError{Endpoint: endpoint, Message: message}
}

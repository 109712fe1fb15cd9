package apiclient

import (
	"errors"
	"fmt"
)

// Failure classes for outbound requests. *APIError wraps one of the HTTP
// classes so callers can match with errors.Is while still reading the status
// code and server message.
var (
	ErrNetwork      = errors.New("apiclient.network_failure")
	ErrTimeout      = errors.New("apiclient.timeout")
	ErrUnauthorized = errors.New("apiclient.unauthorized")
	ErrForbidden    = errors.New("apiclient.forbidden")
	ErrNotFound     = errors.New("apiclient.not_found")
	ErrValidation   = errors.New("apiclient.validation_failure")
	ErrServer       = errors.New("apiclient.server_failure")
	ErrDecode       = errors.New("apiclient.decode_failure")
	ErrInvalidURL   = errors.New("apiclient.invalid_url")
)

// APIError is an HTTP-level failure returned by the backend, carrying the
// status code and the server-supplied message when one was present in the
// response body.
type APIError struct {
	Status  int
	Message string
	class   error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// Unwrap exposes the failure class for errors.Is matching
func (e *APIError) Unwrap() error {
	return e.class
}

// newAPIError classifies status into a failure class sentinel.
func newAPIError(status int, message string) *APIError {
	var class error
	switch {
	case status == 401:
		class = ErrUnauthorized
	case status == 403:
		class = ErrForbidden
	case status == 404:
		class = ErrNotFound
	case status >= 400 && status < 500:
		class = ErrValidation
	default:
		class = ErrServer
	}
	return &APIError{Status: status, Message: message, class: class}
}

// IsUnauthorized reports whether err is a 401 failure
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsNotFound reports whether err is a 404 failure
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNetwork reports whether err is a transport-level failure, including timeouts
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork) || errors.Is(err, ErrTimeout)
}

// ErrorMessage returns the server-supplied message carried by err, falling
// back to fallback when the transport supplied none. Every resource store
// derives its user-visible error strings through this helper.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

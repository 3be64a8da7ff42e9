package slack

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind identifies the failure class of an APIError.
type ErrorKind string

const (
	// KindInvalidArgument covers caller preconditions and response bodies
	// that do not match the API contract.
	KindInvalidArgument ErrorKind = "invalid_argument"
	// KindHTTPRequestFailed covers transport failures and non-2xx statuses.
	KindHTTPRequestFailed ErrorKind = "http_request_failed"
)

// APIError is the error type returned by every Client operation.
type APIError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}

	parts := make([]string, 0, 3)
	switch e.Kind {
	case KindInvalidArgument:
		parts = append(parts, "invalid argument")
	case KindHTTPRequestFailed:
		parts = append(parts, "http request failed")
	default:
		parts = append(parts, fmt.Sprintf("slack api error (%s)", e.Kind))
	}

	if msg := strings.TrimSpace(e.Message); msg != "" {
		parts = append(parts, msg)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}

	return strings.Join(parts, ": ")
}

func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// IsInvalidArgument reports whether err is an APIError of kind
// KindInvalidArgument anywhere in its chain.
func IsInvalidArgument(err error) bool {
	return kindOf(err) == KindInvalidArgument
}

// IsHTTPRequestFailed reports whether err is an APIError of kind
// KindHTTPRequestFailed anywhere in its chain.
func IsHTTPRequestFailed(err error) bool {
	return kindOf(err) == KindHTTPRequestFailed
}

func kindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

func invalidArgument(message string) *APIError {
	return &APIError{Kind: KindInvalidArgument, Message: message}
}

func httpRequestFailed(message string, cause error) *APIError {
	return &APIError{Kind: KindHTTPRequestFailed, Message: message, Cause: cause}
}

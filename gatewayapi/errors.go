package gatewayapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels for classifying an *Error with errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrTransport       = errors.New("transport error")
	ErrInvalidResponse = errors.New("invalid response")
)

const invalidResponseMessage = "invalid JSON response from API"

// Error is the only error type returned by Client methods.
type Error struct {
	Message string
	// Code is the HTTP status code when the failure came from a non-2xx
	// response, 0 otherwise.
	Code  int
	Cause error

	kind error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	return e.kind != nil && e.kind == target
}

// StatusError is returned by the transport layer for non-2xx responses.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", e.StatusCode, e.Body)
}

func validationError(format string, args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		kind:    ErrValidation,
	}
}

// transportError prefixes the cause with "failed to <operation>: ", lower
// case as Go error strings are. Callers matching on the text should use
// errors.Is(err, ErrTransport) instead.
func transportError(operation string, err error) *Error {
	code := 0
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		code = statusErr.StatusCode
	}

	return &Error{
		Message: fmt.Sprintf("failed to %s: %s", operation, err.Error()),
		Code:    code,
		Cause:   err,
		kind:    ErrTransport,
	}
}

func invalidResponseError(cause error) *Error {
	return &Error{
		Message: invalidResponseMessage,
		Cause:   cause,
		kind:    ErrInvalidResponse,
	}
}

func isSuccessStatusCode(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// NewInvalidArgument creates an error for a local precondition violation.
func NewInvalidArgument(op, format string, args ...any) *Error {
	return &Error{Kind: InvalidArgument, Op: op, Message: fmt.Sprintf(format, args...)}
}

// NewProtocolError creates an error for a response body that could not be
// interpreted. decodeErr may be nil when the body parsed but had the wrong shape.
func NewProtocolError(op, message string, body []byte, decodeErr error) *Error {
	return &Error{Kind: Protocol, Op: op, StatusCode: http.StatusOK, Body: string(body), Message: message, Err: decodeErr}
}

// NewStatusError maps a non-success status to its Kind. message overrides the
// default rendering when non-empty.
func NewStatusError(op string, statusCode int, body []byte, message string) *Error {
	kind := HTTP
	switch statusCode {
	case http.StatusBadRequest:
		kind = InvalidRequest
	case http.StatusUnauthorized:
		kind = Unauthorized
	case http.StatusNotFound:
		kind = NotFound
	}
	if message == "" {
		message = fmt.Sprintf("unexpected status %d", statusCode)
		if len(body) > 0 {
			message += ": " + string(body)
		}
	}
	return &Error{Kind: kind, Op: op, StatusCode: statusCode, Body: string(body), Message: message}
}

// NewHTTPError creates an error for an unexpected status regardless of its code.
func NewHTTPError(op string, statusCode int, body []byte) *Error {
	e := NewStatusError(op, statusCode, body, "")
	e.Kind = HTTP
	return e
}

// NewNetworkError creates an error for transport-level failures. The cause
// error stays reachable through Unwrap.
func NewNetworkError(op string, err error) *Error {
	return &Error{Kind: Network, Op: op, Message: fmt.Sprintf("network error: %v", err), Err: err}
}

// IsRecoverable reports whether repeating the call could succeed:
//   - network-level errors are recoverable
//   - 408 and 429 are recoverable
//   - 5xx server errors are recoverable
//   - everything else (validation, 400, 401, 404, malformed bodies) is not
//
// The SDK never retries on its own; this only informs caller-side policies.
func IsRecoverable(err error) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	switch e.Kind {
	case Network:
		return true
	case HTTP:
		switch {
		case e.StatusCode == http.StatusRequestTimeout, e.StatusCode == http.StatusTooManyRequests:
			return true
		case e.StatusCode >= 500 && e.StatusCode < 600:
			return true
		}
	}
	return false
}

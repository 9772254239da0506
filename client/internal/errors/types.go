// Package errors provides the error taxonomy of the client SDK.
// Callers discriminate failures by Kind rather than by message text.
package errors

import "fmt"

// Kind identifies the class of a client failure. Kind implements error so a
// Kind value can be used as the target of errors.Is.
type Kind int

const (
	// InvalidArgument is a local precondition violation; no request was sent.
	InvalidArgument Kind = iota + 1

	// Protocol means a response arrived but its body was not the expected JSON shape.
	Protocol

	// InvalidRequest is a server-signalled 400 (e.g. username already registered).
	InvalidRequest

	// Unauthorized is a server-signalled 401.
	Unauthorized

	// NotFound is a server-signalled 404.
	NotFound

	// HTTP is any other unexpected status.
	HTTP

	// Network is a transport-level failure: DNS, refused connection, timeout.
	Network
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case Protocol:
		return "Protocol"
	case InvalidRequest:
		return "InvalidRequest"
	case Unauthorized:
		return "Unauthorized"
	case NotFound:
		return "NotFound"
	case HTTP:
		return "HTTP"
	case Network:
		return "Network"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error implements the error interface so kinds work with errors.Is.
func (k Kind) Error() string { return k.String() }

// Error is the single concrete error type returned by the SDK.
type Error struct {
	Kind       Kind
	Op         string // operation name, e.g. "register"
	StatusCode int    // HTTP status code (0 when no response was received)
	Body       string // raw response body, if any
	Message    string // human-readable description
	Err        error  // underlying transport or decode error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Op == "" {
		return fmt.Sprintf("[%s] %s", e.Kind, msg)
	}
	return fmt.Sprintf("%s: [%s] %s", e.Op, e.Kind, msg)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// KindOf returns the Kind of err, or 0 when err is not an SDK error.
func KindOf(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0
		}
		err = u.Unwrap()
	}
	return 0
}

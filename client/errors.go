package client

import (
	"errors"

	apierrors "github.com/MauriceNgicho/Polly-API/client/internal/errors"
)

// Error is the concrete error returned by every operation. Use errors.As to
// reach the status code, body or extracted server message.
type Error = apierrors.Error

// Kind classifies an Error; compare with errors.Is(err, client.ErrNotFound).
type Kind = apierrors.Kind

// Error kinds.
const (
	ErrInvalidArgument Kind = apierrors.InvalidArgument // bad local input; nothing was sent
	ErrProtocol        Kind = apierrors.Protocol        // 200 with a body of the wrong shape
	ErrInvalidRequest  Kind = apierrors.InvalidRequest  // 400 from /register
	ErrUnauthorized    Kind = apierrors.Unauthorized    // 401 from /vote
	ErrNotFound        Kind = apierrors.NotFound        // 404 from /vote or /results
	ErrHTTP            Kind = apierrors.HTTP            // any other unexpected status
	ErrNetwork         Kind = apierrors.Network         // no response obtained
)

// IsInvalidArgument reports whether err is a local validation failure.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

// IsProtocol reports whether err is a malformed success response.
func IsProtocol(err error) bool { return errors.Is(err, ErrProtocol) }

// IsInvalidRequest reports whether the server rejected the request with 400.
func IsInvalidRequest(err error) bool { return errors.Is(err, ErrInvalidRequest) }

// IsUnauthorized reports whether the server rejected the token.
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

// IsNotFound reports whether the poll or option does not exist.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsHTTP reports whether err is an unexpected status.
func IsHTTP(err error) bool { return errors.Is(err, ErrHTTP) }

// IsNetwork reports whether no response was obtained.
func IsNetwork(err error) bool { return errors.Is(err, ErrNetwork) }

// IsRecoverable reports whether repeating the call could succeed. The client
// never retries by itself.
func IsRecoverable(err error) bool { return apierrors.IsRecoverable(err) }

package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	apierrors "github.com/MauriceNgicho/Polly-API/client/internal/errors"
)

const opConfigure = "configure"

// Option configures a Client during construction in New.
//
// Options only record settings; the transport is assembled after all options
// have been applied, so their order does not matter.
type Option func(*Client) error

// WithBaseURL sets the API base URL. Trailing slashes are stripped.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
		if trimmed == "" {
			return apierrors.NewInvalidArgument(opConfigure, "base URL must be non-empty")
		}
		c.baseURL = trimmed
		return nil
	}
}

// WithTimeout bounds each call (connection, request and reading the
// response). The value must be greater than zero. A deadline on the caller's
// context still applies when it is shorter.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return apierrors.NewInvalidArgument(opConfigure, "timeout must be > 0, got %s", d)
		}
		c.timeout = d
		return nil
	}
}

// WithTimeoutSeconds is WithTimeout expressed in (fractional) seconds.
func WithTimeoutSeconds(seconds float64) Option {
	return WithTimeout(time.Duration(seconds * float64(time.Second)))
}

// WithHTTPClient makes the Client send requests through hc, typically a
// long-lived client whose connection pool is shared with the rest of the
// application. hc itself is not modified; the Client works on a shallow copy
// that shares hc's RoundTripper.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return apierrors.NewInvalidArgument(opConfigure, "http client must not be nil")
		}
		c.hc = hc
		return nil
	}
}

// WithTransport replaces the HTTP stack entirely. Tests use it to supply
// fakes. WithHTTPClient and WithDebugLogging have no effect alongside it.
func WithTransport(t Transport) Option {
	return func(c *Client) error {
		if t == nil {
			return apierrors.NewInvalidArgument(opConfigure, "transport must not be nil")
		}
		c.transport = t
		return nil
	}
}

// WithDebugLogging logs every request/response dump at debug level when
// enabled is true. Authorization headers and passwords are redacted, but
// bodies are otherwise logged verbatim; do not enable it in production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = enabled
		return nil
	}
}

// WithLogger sets the logger used for debug dumps and failure events.
// Defaults to the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}

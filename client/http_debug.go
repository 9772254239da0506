package client

import (
	"net/http"
	"net/http/httputil"
	"regexp"

	"github.com/rs/zerolog"
)

// debugTransport logs request/response dumps for troubleshooting API
// communication: malformed requests, unexpected statuses, auth problems.
//
// Enable it with WithDebugLogging(true); the polly CLI does so for --debug.
// Bearer tokens and passwords are masked in the dumps; everything else,
// including vote and user payloads, is logged as sent.
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
}

var (
	bearerPattern   = regexp.MustCompile(`(?i)(authorization:\s*bearer\s+)\S+`)
	passwordPattern = regexp.MustCompile(`("password"\s*:\s*)"(?:[^"\\]|\\.)*"`)
)

// redact masks credentials in a request or response dump.
func redact(dump []byte) string {
	out := bearerPattern.ReplaceAll(dump, []byte("${1}[REDACTED]"))
	out = passwordPattern.ReplaceAll(out, []byte(`${1}"[REDACTED]"`))
	return string(out)
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_id", req.Header.Get("X-Request-ID")).
			Str("request_dump", redact(reqDump)).
			Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.logger.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Int("status_code", resp.StatusCode).
			Str("response_dump", redact(respDump)).
			Msg("HTTP response")
	}
	return resp, nil
}

// withDebugTransport returns a shallow copy of hc (or of a fresh client)
// whose transport logs through logger. The copy shares hc's underlying
// RoundTripper, and with it the connection pool.
func withDebugTransport(hc *http.Client, logger zerolog.Logger) *http.Client {
	var cp http.Client
	if hc != nil {
		cp = *hc
	}
	base := cp.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	cp.Transport = &debugTransport{base: base, logger: logger}
	return &cp
}

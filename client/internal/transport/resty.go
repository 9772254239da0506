// Package transport provides the production types.Transport built on resty.
package transport

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MauriceNgicho/Polly-API/client/internal/types"
)

// HTTP implements types.Transport over a resty client. It is safe for
// concurrent use as long as the wrapped *http.Client is.
type HTTP struct {
	rc *resty.Client
}

// New wraps a shallow copy of hc (or of a fresh http.Client when hc is nil),
// so the caller's handle is never modified. A nil Transport becomes
// http.DefaultTransport. The copy keeps hc's RoundTripper and cookie jar,
// so passing the same hc to several transports shares one connection pool.
// Without hc there is no cookie jar.
func New(hc *http.Client) *HTTP {
	var cp http.Client
	if hc != nil {
		cp = *hc
	}
	if cp.Transport == nil {
		cp.Transport = http.DefaultTransport
	}
	return &HTTP{rc: resty.NewWithClient(&cp)}
}

// HTTPClient exposes the underlying *http.Client.
func (t *HTTP) HTTPClient() *http.Client {
	return t.rc.GetClient()
}

// Get issues a GET with query params.
func (t *HTTP) Get(ctx context.Context, rawURL string, params url.Values, headers http.Header, timeout time.Duration) (*types.Response, error) {
	ctx, cancel := withTimeout(ctx, timeout)
	defer cancel()

	req := t.rc.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParamsFromValues(params)
	}
	copyHeaders(req, headers)

	resp, err := req.Get(rawURL)
	if err != nil {
		return nil, err
	}
	full := rawURL
	if len(params) > 0 {
		full += "?" + params.Encode()
	}
	return &types.Response{StatusCode: resp.StatusCode(), Body: resp.Body(), URL: full}, nil
}

// Post issues a POST with a pre-encoded body. Content-Type comes from headers.
func (t *HTTP) Post(ctx context.Context, rawURL string, body []byte, headers http.Header, timeout time.Duration) (*types.Response, error) {
	ctx, cancel := withTimeout(ctx, timeout)
	defer cancel()

	req := t.rc.R().SetContext(ctx).SetBody(body)
	copyHeaders(req, headers)

	resp, err := req.Post(rawURL)
	if err != nil {
		return nil, err
	}
	return &types.Response{StatusCode: resp.StatusCode(), Body: resp.Body(), URL: rawURL}, nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func copyHeaders(req *resty.Request, headers http.Header) {
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
}

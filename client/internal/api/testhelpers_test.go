package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/MauriceNgicho/Polly-API/client/internal/types"
)

// call records one transport invocation.
type call struct {
	method  string
	url     string
	params  url.Values
	body    []byte
	headers http.Header
	timeout time.Duration
}

// fakeTransport replies with a canned status/body and records every call.
type fakeTransport struct {
	mu     sync.Mutex
	status int
	body   string
	err    error
	calls  []call
}

func respond(status int, body string) *fakeTransport {
	return &fakeTransport{status: status, body: body}
}

func (f *fakeTransport) record(c call) (*types.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	if f.err != nil {
		return nil, f.err
	}
	full := c.url
	if len(c.params) > 0 {
		full += "?" + c.params.Encode()
	}
	return &types.Response{StatusCode: f.status, Body: []byte(f.body), URL: full}, nil
}

func (f *fakeTransport) Get(_ context.Context, u string, params url.Values, headers http.Header, timeout time.Duration) (*types.Response, error) {
	return f.record(call{method: http.MethodGet, url: u, params: params, headers: headers, timeout: timeout})
}

func (f *fakeTransport) Post(_ context.Context, u string, body []byte, headers http.Header, timeout time.Duration) (*types.Response, error) {
	return f.record(call{method: http.MethodPost, url: u, body: body, headers: headers, timeout: timeout})
}

func (f *fakeTransport) numCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeTransport) last() call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

// errTransport always fails (simulates network failure).
func errTransport() *fakeTransport {
	return &fakeTransport{err: fmt.Errorf("dial tcp: connection refused")}
}

func endpoint(t types.Transport) Endpoint {
	return Endpoint{Transport: t, BaseURL: "http://polly.test", Timeout: 10 * time.Second, RequestID: "req-123"}
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	apierrors "github.com/MauriceNgicho/Polly-API/client/internal/errors"
	"github.com/MauriceNgicho/Polly-API/client/internal/types"
)

// Endpoint carries what every call needs: the transport, the normalised base
// URL, the per-call timeout and the request ID to stamp on the request.
type Endpoint struct {
	Transport types.Transport
	BaseURL   string
	Timeout   time.Duration
	RequestID string
}

func (e Endpoint) headers() http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json")
	if e.RequestID != "" {
		h.Set("X-Request-ID", e.RequestID)
	}
	return h
}

func (e Endpoint) get(ctx context.Context, op, path string, params url.Values, h http.Header) (*types.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, apierrors.NewNetworkError(op, err)
	}
	resp, err := e.Transport.Get(ctx, e.BaseURL+path, params, h, e.Timeout)
	if err != nil {
		return nil, apierrors.NewNetworkError(op, err)
	}
	return resp, nil
}

func (e Endpoint) postJSON(ctx context.Context, op, path string, payload any, h http.Header) (*types.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, apierrors.NewNetworkError(op, err)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apierrors.NewInvalidArgument(op, "encode request body: %v", err)
	}
	h.Set("Content-Type", "application/json")
	resp, err := e.Transport.Post(ctx, e.BaseURL+path, body, h, e.Timeout)
	if err != nil {
		return nil, apierrors.NewNetworkError(op, err)
	}
	return resp, nil
}

// decodeObject parses a 200 body that must be a JSON object.
func decodeObject(op string, resp *types.Response, what string) (types.Object, error) {
	v, err := types.DecodeJSON(resp.Body)
	if err != nil {
		return nil, apierrors.NewProtocolError(op,
			fmt.Sprintf("expected JSON %s from %s, but failed to parse", what, resp.URL), resp.Body, err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, apierrors.NewProtocolError(op,
			fmt.Sprintf("expected response to be a JSON object for %s", what), resp.Body, nil)
	}
	return types.Object(obj), nil
}

// errorDetail extracts the "detail" or "message" field of a JSON error body.
// Empty values (null, "", 0, false, [] and {}) count as absent. Other
// non-string values are rendered as JSON. Returns "" when neither is set.
func errorDetail(body []byte) string {
	v, err := types.DecodeJSON(body)
	if err != nil {
		return ""
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range []string{"detail", "message"} {
		d := obj[key]
		if isEmptyValue(d) {
			continue
		}
		if s, ok := d.(string); ok {
			return s
		}
		if b, err := json.Marshal(d); err == nil {
			return string(b)
		}
	}
	return ""
}

func isEmptyValue(v any) bool {
	switch d := v.(type) {
	case nil:
		return true
	case string:
		return d == ""
	case bool:
		return !d
	case json.Number:
		f, err := d.Float64()
		return err == nil && f == 0
	case []any:
		return len(d) == 0
	case map[string]any:
		return len(d) == 0
	}
	return false
}

package types

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	apierrors "github.com/MauriceNgicho/Polly-API/client/internal/errors"
)

// ------------------------------
// JSON Values
// ------------------------------

// Object is a JSON object whose shape is defined by the server. Values are
// nil, bool, json.Number, string, []any or map[string]any.
type Object map[string]any

// User is the payload returned by /register.
type User = Object

// Poll is one element of the /polls listing, kept exactly as decoded. The
// server normally sends objects, but any JSON value is passed through.
type Poll = any

// VoteResult is the payload returned by /polls/{id}/vote.
type VoteResult = Object

// PollResults is the payload returned by /polls/{id}/results.
type PollResults = Object

// Decode converts the object into v (typically one of the *Out schema views).
// A shape mismatch is a Protocol error.
func (o Object) Decode(v any) error {
	return DecodeValue(o, v)
}

// DecodeValue converts a decoded JSON value, such as a Poll, into out.
func DecodeValue(value, out any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return apierrors.NewProtocolError("decode", "value is not encodable", nil, err)
	}
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(out); err != nil {
		return apierrors.NewProtocolError("decode", fmt.Sprintf("value does not match %T: %v", out, err), raw, err)
	}
	return nil
}

// DecodeJSON parses a JSON document preserving numbers as json.Number.
// Trailing data after the first value is an error.
func DecodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return v, nil
}

// ------------------------------
// Shared Interfaces
// ------------------------------

// Response is the transport-neutral view of an HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
	URL        string // final request URL including query, for diagnostics
}

// Transport issues a single HTTP exchange. Implementations must not treat any
// status code as an error; only failures to obtain a response are errors.
type Transport interface {
	Get(ctx context.Context, url string, params url.Values, headers http.Header, timeout time.Duration) (*Response, error)
	Post(ctx context.Context, url string, body []byte, headers http.Header, timeout time.Duration) (*Response, error)
}

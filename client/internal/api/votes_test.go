package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	apierrors "github.com/MauriceNgicho/Polly-API/client/internal/errors"
	"github.com/MauriceNgicho/Polly-API/client/internal/types"
)

func TestVote_Success(t *testing.T) {
	t.Parallel()
	ft := respond(http.StatusOK, `{"id":10,"user_id":2,"option_id":1,"created_at":"2025-01-01T00:00:00Z"}`)

	res, err := Vote(context.Background(), endpoint(ft), types.VoteRequest{PollID: 5, OptionID: 1, Token: "tok"})
	if err != nil {
		t.Fatalf("Vote error: %v", err)
	}
	var out types.VoteOut
	if err := res.Decode(&out); err != nil {
		t.Fatalf("decode VoteOut: %v", err)
	}
	if out.ID != 10 || out.OptionID != 1 || out.UserID != 2 {
		t.Fatalf("unexpected vote %+v", out)
	}

	c := ft.last()
	if c.method != http.MethodPost || c.url != "http://polly.test/polls/5/vote" {
		t.Fatalf("unexpected request %s %s", c.method, c.url)
	}
	if got := c.headers.Get("Authorization"); got != "Bearer tok" {
		t.Fatalf("unexpected Authorization %q", got)
	}
	if string(c.body) != `{"option_id":1}` {
		t.Fatalf("unexpected body %s", c.body)
	}
}

func TestVote_InputValidation(t *testing.T) {
	t.Parallel()
	ft := respond(http.StatusOK, `{}`)
	bad := []types.VoteRequest{
		{PollID: 0, OptionID: 1, Token: "t"},
		{PollID: -3, OptionID: 1, Token: "t"},
		{PollID: 1, OptionID: 0, Token: "t"},
		{PollID: 1, OptionID: -1, Token: "t"},
		{PollID: 1, OptionID: 1, Token: ""},
	}
	for _, req := range bad {
		if _, err := Vote(context.Background(), endpoint(ft), req); !errors.Is(err, apierrors.InvalidArgument) {
			t.Fatalf("expected InvalidArgument for %+v, got %v", req, err)
		}
	}
	if ft.numCalls() != 0 {
		t.Fatalf("validation must not reach the network, got %d calls", ft.numCalls())
	}
}

func TestVote_Unauthorized(t *testing.T) {
	t.Parallel()
	ft := respond(http.StatusUnauthorized, `{"detail":"Could not validate credentials"}`)
	_, err := Vote(context.Background(), endpoint(ft), types.VoteRequest{PollID: 5, OptionID: 1, Token: "tok"})
	if !errors.Is(err, apierrors.Unauthorized) {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
	if strings.Contains(err.Error(), "Could not validate") {
		t.Fatalf("401 message should not carry server detail: %q", err.Error())
	}
}

func TestVote_NotFound(t *testing.T) {
	t.Parallel()
	ft := respond(http.StatusNotFound, `{"detail":"Option not found"}`)
	_, err := Vote(context.Background(), endpoint(ft), types.VoteRequest{PollID: 5, OptionID: 9, Token: "tok"})
	if !errors.Is(err, apierrors.NotFound) || !strings.Contains(err.Error(), "Option not found") {
		t.Fatalf("expected NotFound with detail, got %v", err)
	}

	ft = respond(http.StatusNotFound, `not json`)
	_, err = Vote(context.Background(), endpoint(ft), types.VoteRequest{PollID: 5, OptionID: 9, Token: "tok"})
	if !errors.Is(err, apierrors.NotFound) || !strings.Contains(err.Error(), "poll or option") {
		t.Fatalf("expected generic NotFound, got %v", err)
	}
}

func TestVote_OtherStatusAndDecodeError(t *testing.T) {
	t.Parallel()
	req := types.VoteRequest{PollID: 5, OptionID: 1, Token: "tok"}

	_, err := Vote(context.Background(), endpoint(respond(http.StatusBadRequest, `{"detail":"already voted"}`)), req)
	var e *apierrors.Error
	if !errors.As(err, &e) || e.Kind != apierrors.HTTP || e.StatusCode != 400 {
		t.Fatalf("expected HTTP error for 400, got %v", err)
	}

	_, err = Vote(context.Background(), endpoint(respond(http.StatusOK, `{bad json`)), req)
	if !errors.Is(err, apierrors.Protocol) {
		t.Fatalf("expected Protocol error, got %v", err)
	}
}

func TestVote_TransportError(t *testing.T) {
	t.Parallel()
	_, err := Vote(context.Background(), endpoint(errTransport()), types.VoteRequest{PollID: 1, OptionID: 1, Token: "t"})
	if !errors.Is(err, apierrors.Network) {
		t.Fatalf("expected Network error, got %v", err)
	}
}

func TestErrorDetail(t *testing.T) {
	t.Parallel()
	cases := []struct{ body, want string }{
		{`{"detail":"a","message":"b"}`, "a"},
		{`{"message":"b"}`, "b"},
		{`{"detail":null,"message":"b"}`, "b"},
		{`{"other":"x"}`, ""},
		{`[]`, ""},
		{`nope`, ""},
		{`{"detail":{"code":7}}`, `{"code":7}`},
		{`{"detail":[],"message":"b"}`, "b"},
		{`{"detail":{},"message":"b"}`, "b"},
		{`{"detail":false,"message":"b"}`, "b"},
		{`{"detail":0,"message":"b"}`, "b"},
		{`{"detail":0.0}`, ""},
		{`{"detail":"","message":""}`, ""},
		{`{"detail":true}`, "true"},
		{`{"detail":3}`, "3"},
	}
	for _, c := range cases {
		if got := errorDetail([]byte(c.body)); got != c.want {
			t.Fatalf("errorDetail(%s) = %q, want %q", c.body, got, c.want)
		}
	}
}

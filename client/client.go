package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MauriceNgicho/Polly-API/client/internal/api"
	apierrors "github.com/MauriceNgicho/Polly-API/client/internal/errors"
	"github.com/MauriceNgicho/Polly-API/client/internal/transport"
	"github.com/MauriceNgicho/Polly-API/client/internal/types"
)

// Defaults applied by New.
const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 10 * time.Second
	DefaultSkip    = types.DefaultSkip
	DefaultLimit   = types.DefaultLimit
)

// defaultTransport is shared by every Client that does not bring its own
// transport or *http.Client, so they all reuse one connection pool. It has no
// cookie jar.
var defaultTransport = transport.New(nil)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to a Polly-API server. It holds configuration only and is
// safe for concurrent use once constructed.
type Client struct {
	baseURL   string
	timeout   time.Duration
	transport types.Transport
	hc        *http.Client // caller-supplied connection-reusing handle
	debug     bool
	logger    zerolog.Logger
}

// New constructs a Client. Without options it targets DefaultBaseURL with
// DefaultTimeout through the module-global transport.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		logger:  log.Logger,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	switch {
	case c.transport != nil:
		if c.debug {
			c.logger.Debug().Msg("debug logging ignored: custom transport supplied")
		}
	case c.debug:
		c.transport = transport.New(withDebugTransport(c.hc, c.logger))
	case c.hc != nil:
		c.transport = transport.New(c.hc)
	default:
		c.transport = defaultTransport
	}
	return c, nil
}

// BaseURL returns the normalised base URL requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// Timeout returns the per-call network timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

func (c *Client) endpoint() api.Endpoint {
	return api.Endpoint{
		Transport: c.transport,
		BaseURL:   c.baseURL,
		Timeout:   c.timeout,
		RequestID: uuid.NewString(),
	}
}

// observe records metrics and logs failures for one call.
func (c *Client) observe(op, requestID string, start time.Time, err error) {
	elapsed := time.Since(start)
	requestDuration.WithLabelValues(op).Observe(elapsed.Seconds())

	outcome := "ok"
	if err != nil {
		outcome = apierrors.KindOf(err).String()
		c.logger.Debug().
			Err(err).
			Str("op", op).
			Str("request_id", requestID).
			Int("status_code", StatusCode(err)).
			Dur("elapsed", elapsed).
			Msg("polly request failed")
	}
	requestsTotal.WithLabelValues(op, outcome).Inc()
}

// --------------------------------------------------------------------
// Operations - delegated to internal/api
// --------------------------------------------------------------------

// Register creates a user via POST /register and returns the server's user
// payload unchanged.
func (c *Client) Register(ctx context.Context, username, password string) (User, error) {
	e := c.endpoint()
	start := time.Now()
	u, err := api.Register(ctx, e, types.Credentials{Username: username, Password: password})
	c.observe(api.OpRegister, e.RequestID, start, err)
	return u, err
}

// ListPolls returns one page of polls. Pass DefaultSkip and DefaultLimit for
// the first page with the server's usual page size.
func (c *Client) ListPolls(ctx context.Context, skip, limit int) ([]Poll, error) {
	e := c.endpoint()
	start := time.Now()
	polls, err := api.ListPolls(ctx, e, types.PageRequest{Skip: skip, Limit: limit})
	c.observe(api.OpListPolls, e.RequestID, start, err)
	return polls, err
}

// Vote casts a vote for optionID on pollID, authenticating with token (the
// raw JWT, without the "Bearer " prefix).
func (c *Client) Vote(ctx context.Context, pollID, optionID int, token string) (VoteResult, error) {
	e := c.endpoint()
	start := time.Now()
	res, err := api.Vote(ctx, e, types.VoteRequest{PollID: pollID, OptionID: optionID, Token: token})
	c.observe(api.OpVote, e.RequestID, start, err)
	return res, err
}

// GetResults retrieves the current tally of pollID.
func (c *Client) GetResults(ctx context.Context, pollID int) (PollResults, error) {
	e := c.endpoint()
	start := time.Now()
	res, err := api.GetResults(ctx, e, pollID)
	c.observe(api.OpGetResults, e.RequestID, start, err)
	return res, err
}

// --------------------------------------------------------------------
// Per-call configuration
// --------------------------------------------------------------------
//
// The package-level functions build a transient Client from opts for a single
// call. Hold a Client instead when issuing many calls with one configuration.

// Register is the one-shot form of Client.Register.
func Register(ctx context.Context, username, password string, opts ...Option) (User, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Register(ctx, username, password)
}

// ListPolls is the one-shot form of Client.ListPolls.
func ListPolls(ctx context.Context, skip, limit int, opts ...Option) ([]Poll, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.ListPolls(ctx, skip, limit)
}

// Vote is the one-shot form of Client.Vote.
func Vote(ctx context.Context, pollID, optionID int, token string, opts ...Option) (VoteResult, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Vote(ctx, pollID, optionID, token)
}

// GetResults is the one-shot form of Client.GetResults.
func GetResults(ctx context.Context, pollID int, opts ...Option) (PollResults, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.GetResults(ctx, pollID)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

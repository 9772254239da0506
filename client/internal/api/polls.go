package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	apierrors "github.com/MauriceNgicho/Polly-API/client/internal/errors"
	"github.com/MauriceNgicho/Polly-API/client/internal/types"
)

// Operation names for poll reads.
const (
	OpListPolls  = "list polls"
	OpGetResults = "get results"
)

// ListPolls fetches one page of polls via GET /polls.
func ListPolls(ctx context.Context, e Endpoint, page types.PageRequest) ([]types.Poll, error) {
	if err := page.Validate(OpListPolls); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("skip", strconv.Itoa(page.Skip))
	params.Set("limit", strconv.Itoa(page.Limit))

	resp, err := e.get(ctx, OpListPolls, "/polls", params, e.headers())
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apierrors.NewHTTPError(OpListPolls, resp.StatusCode, resp.Body)
	}

	v, err := types.DecodeJSON(resp.Body)
	if err != nil {
		return nil, apierrors.NewProtocolError(OpListPolls,
			fmt.Sprintf("expected JSON array from %s, but failed to parse", resp.URL), resp.Body, err)
	}
	items, ok := v.([]any)
	if !ok {
		return nil, apierrors.NewProtocolError(OpListPolls, "expected response to be a JSON array of polls", resp.Body, nil)
	}

	// Elements are not inspected; objects come back as types.Object so
	// callers can Decode them directly.
	polls := make([]types.Poll, len(items))
	for i, item := range items {
		if obj, ok := item.(map[string]any); ok {
			polls[i] = types.Object(obj)
			continue
		}
		polls[i] = item
	}
	return polls, nil
}

// GetResults retrieves the tally of a poll via GET /polls/{id}/results.
func GetResults(ctx context.Context, e Endpoint, pollID int) (types.PollResults, error) {
	if err := types.ValidatePollID(OpGetResults, pollID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/polls/%d/results", pollID)
	resp, err := e.get(ctx, OpGetResults, path, nil, e.headers())
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeObject(OpGetResults, resp, "poll results")
	case http.StatusNotFound:
		msg := "poll not found"
		if d := errorDetail(resp.Body); d != "" {
			msg = "poll not found: " + d
		}
		return nil, apierrors.NewStatusError(OpGetResults, resp.StatusCode, resp.Body, msg)
	default:
		return nil, apierrors.NewHTTPError(OpGetResults, resp.StatusCode, resp.Body)
	}
}

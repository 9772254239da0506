package api

import (
	"context"
	"fmt"
	"net/http"

	apierrors "github.com/MauriceNgicho/Polly-API/client/internal/errors"
	"github.com/MauriceNgicho/Polly-API/client/internal/types"
)

// OpVote names the vote operation.
const OpVote = "vote"

// Vote casts a vote via POST /polls/{id}/vote with bearer authentication.
func Vote(ctx context.Context, e Endpoint, req types.VoteRequest) (types.VoteResult, error) {
	if err := req.Validate(OpVote); err != nil {
		return nil, err
	}

	h := e.headers()
	h.Set("Authorization", "Bearer "+req.Token)
	path := fmt.Sprintf("/polls/%d/vote", req.PollID)

	resp, err := e.postJSON(ctx, OpVote, path, types.VoteBody{OptionID: req.OptionID}, h)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeObject(OpVote, resp, "vote")
	case http.StatusUnauthorized:
		return nil, apierrors.NewStatusError(OpVote, resp.StatusCode, resp.Body, "unauthorized: missing or invalid token")
	case http.StatusNotFound:
		msg := "not found: poll or option"
		if d := errorDetail(resp.Body); d != "" {
			msg = "not found: " + d
		}
		return nil, apierrors.NewStatusError(OpVote, resp.StatusCode, resp.Body, msg)
	default:
		return nil, apierrors.NewHTTPError(OpVote, resp.StatusCode, resp.Body)
	}
}

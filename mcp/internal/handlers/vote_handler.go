package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/MauriceNgicho/Polly-API/client"
)

// VoteHandler exposes vote_on_poll. When the caller omits the token argument
// the server-wide token (POLLY_TOKEN) is used.
type VoteHandler struct {
	client       *client.Client
	defaultToken string
}

func NewVoteHandler(c *client.Client, defaultToken string) *VoteHandler {
	return &VoteHandler{client: c, defaultToken: defaultToken}
}

// RegisterTools registers the vote_on_poll tool.
func (vh *VoteHandler) RegisterTools(s *server.MCPServer) error {
	voteTool := mcp.NewTool("vote_on_poll",
		mcp.WithDescription("Cast a vote for one option of a poll. Requires a JWT access token."),
		mcp.WithNumber("poll_id", mcp.Required(), mcp.Description("Poll ID (> 0)")),
		mcp.WithNumber("option_id", mcp.Required(), mcp.Description("Option ID (> 0)")),
		mcp.WithString("token", mcp.Description("JWT access token; defaults to the server's configured token")),
	)
	s.AddTool(voteTool, vh.handleVote)
	return nil
}

func (vh *VoteHandler) handleVote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pollID, err := requireInt(req, "poll_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	optionID, err := requireInt(req, "option_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	token := req.GetString("token", vh.defaultToken)
	if token == "" {
		return mcp.NewToolResultError("token parameter is required (no default token configured)"), nil
	}

	start := time.Now()
	res, err := vh.client.Vote(ctx, pollID, optionID, token)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().
			Err(err).
			Int("poll_id", pollID).
			Int("option_id", optionID).
			Dur("elapsed", elapsed).
			Msg("vote_on_poll failed")
		return mcp.NewToolResultError(fmt.Sprintf("vote_on_poll failed: %v", err)), nil
	}

	log.Debug().Int("poll_id", pollID).Int("option_id", optionID).Dur("elapsed", elapsed).Msg("vote_on_poll completed")
	return jsonResult(res)
}

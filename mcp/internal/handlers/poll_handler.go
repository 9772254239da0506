package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/MauriceNgicho/Polly-API/client"
)

// PollHandler exposes the read-only poll tools: list_polls and get_poll_results.
type PollHandler struct {
	client *client.Client
}

func NewPollHandler(c *client.Client) *PollHandler {
	return &PollHandler{client: c}
}

// RegisterTools registers list_polls and get_poll_results.
func (ph *PollHandler) RegisterTools(s *server.MCPServer) error {
	listTool := mcp.NewTool("list_polls",
		mcp.WithDescription("List polls with their options, one page at a time"),
		mcp.WithNumber("skip", mcp.Description("Number of polls to skip (>= 0, default 0)")),
		mcp.WithNumber("limit", mcp.Description("Maximum polls to return (> 0, default 10)")),
	)
	s.AddTool(listTool, ph.handleListPolls)

	resultsTool := mcp.NewTool("get_poll_results",
		mcp.WithDescription("Get the current vote count of every option of a poll"),
		mcp.WithNumber("poll_id", mcp.Required(), mcp.Description("Poll ID (> 0)")),
	)
	s.AddTool(resultsTool, ph.handleGetResults)
	return nil
}

func (ph *PollHandler) handleListPolls(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	skip, ok, err := intArg(req, "skip")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !ok {
		skip = client.DefaultSkip
	}
	limit, ok, err := intArg(req, "limit")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !ok {
		limit = client.DefaultLimit
	}

	polls, err := ph.client.ListPolls(ctx, skip, limit)
	if err != nil {
		log.Error().Err(err).Int("skip", skip).Int("limit", limit).Msg("list_polls failed")
		return mcp.NewToolResultError(fmt.Sprintf("list_polls failed: %v", err)), nil
	}
	return jsonResult(polls)
}

func (ph *PollHandler) handleGetResults(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pollID, err := requireInt(req, "poll_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := ph.client.GetResults(ctx, pollID)
	if err != nil {
		log.Error().Err(err).Int("poll_id", pollID).Msg("get_poll_results failed")
		return mcp.NewToolResultError(fmt.Sprintf("get_poll_results failed: %v", err)), nil
	}
	return jsonResult(res)
}

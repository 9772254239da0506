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

// UserHandler exposes account registration.
type UserHandler struct {
	client *client.Client
}

// NewUserHandler creates a new user handler instance.
func NewUserHandler(c *client.Client) *UserHandler {
	return &UserHandler{client: c}
}

// RegisterTools registers the register_user tool with the MCP server.
func (uh *UserHandler) RegisterTools(s *server.MCPServer) error {
	registerTool := mcp.NewTool("register_user",
		mcp.WithDescription("Create a Polly-API account. Returns the created user (id, username)."),
		mcp.WithString("username", mcp.Required(), mcp.Description("Unique username")),
		mcp.WithString("password", mcp.Required(), mcp.Description("Account password")),
	)
	s.AddTool(registerTool, uh.handleRegister)
	return nil
}

func (uh *UserHandler) handleRegister(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := req.RequireString("username")
	if err != nil {
		return mcp.NewToolResultError("username parameter is required"), nil
	}
	password, err := req.RequireString("password")
	if err != nil {
		return mcp.NewToolResultError("password parameter is required"), nil
	}

	log.Debug().Str("username", username).Msg("handling register_user request")

	start := time.Now()
	user, err := uh.client.Register(ctx, username, password)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().
			Err(err).
			Str("username", username).
			Dur("elapsed", elapsed).
			Msg("register_user failed")
		return mcp.NewToolResultError(fmt.Sprintf("register_user failed: %v", err)), nil
	}

	log.Debug().Str("username", username).Dur("elapsed", elapsed).Msg("register_user completed")
	return jsonResult(user)
}

package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/MauriceNgicho/Polly-API/mcp/prompts"
)

// PromptsHandler serves the embedded usage guides, both as the get_polly_guide
// tool and as MCP prompts for hosts that list prompts.
type PromptsHandler struct{}

func NewPromptsHandler() *PromptsHandler {
	return &PromptsHandler{}
}

// RegisterTools registers get_polly_guide and one prompt per guide.
func (ph *PromptsHandler) RegisterTools(s *server.MCPServer) error {
	names, err := prompts.List()
	if err != nil {
		return fmt.Errorf("list guides: %w", err)
	}

	tool := mcp.NewTool("get_polly_guide",
		mcp.WithDescription("Return a usage guide for the Polly tools. Available: "+strings.Join(names, ", ")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Guide name, e.g. voting_workflow")),
	)
	s.AddTool(tool, ph.handleGetGuide)

	for _, name := range names {
		s.AddPrompt(
			mcp.NewPrompt("polly_"+name, mcp.WithPromptDescription("Polly guide: "+strings.ReplaceAll(name, "_", " "))),
			ph.promptHandler(name),
		)
	}
	return nil
}

func (ph *PromptsHandler) handleGetGuide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	g, err := prompts.Load(name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("get_polly_guide failed: %v", err)), nil
	}
	return jsonResult(g)
}

func (ph *PromptsHandler) promptHandler(name string) server.PromptHandlerFunc {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		g, err := prompts.Load(name)
		if err != nil {
			return nil, err
		}
		return mcp.NewGetPromptResult(
			"Polly guide "+name,
			[]mcp.PromptMessage{mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(g.Text))},
		), nil
	}
}

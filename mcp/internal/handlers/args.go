package handlers

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
)

// intArg reads an integer argument. JSON numbers arrive as float64; a value
// with a fractional part is rejected rather than truncated. ok is false when
// the argument is absent.
func intArg(req mcp.CallToolRequest, key string) (v int, ok bool, err error) {
	raw, present := req.GetArguments()[key]
	if !present || raw == nil {
		return 0, false, nil
	}
	switch n := raw.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, true, fmt.Errorf("%s must be an integer, got %v", key, n)
		}
		return int(n), true, nil
	case int:
		return n, true, nil
	case int64:
		return int(n), true, nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, true, fmt.Errorf("%s must be an integer, got %s", key, n)
		}
		return int(i), true, nil
	default:
		return 0, true, fmt.Errorf("%s must be a number, got %T", key, raw)
	}
}

// requireInt is intArg for mandatory arguments.
func requireInt(req mcp.CallToolRequest, key string) (int, error) {
	v, ok, err := intArg(req, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%s parameter is required", key)
	}
	return v, nil
}

// jsonResult renders a payload as indented JSON text.
func jsonResult(payload any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetCalculatorName extracts the calculator name from an MCP request
func GetCalculatorName(req mcp.CallToolRequest) string {
	return mcp.ParseString(req, ParamCalculator, "")
}

// JSONResult marshals a tool result into an MCP text result
func JSONResult(toolResult any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

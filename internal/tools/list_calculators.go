package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calcpad/internal/results"
	"github.com/averycrespi/calcpad/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListCalculatorsTool handles calculator listing requests
type ListCalculatorsTool struct {
	manager *session.Manager
}

// NewListCalculatorsTool creates a new list calculators tool
func NewListCalculatorsTool(manager *session.Manager) *ListCalculatorsTool {
	return &ListCalculatorsTool{
		manager: manager,
	}
}

// GetTool returns the MCP tool definition
func (t *ListCalculatorsTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolListCalculators,
		mcp.WithDescription("List the calculators created so far"),
	)
	return tool
}

// Handle processes the tool request
func (t *ListCalculatorsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	toolResult := results.ListCalculatorsToolResult{
		Calculators: t.manager.Names(),
		Limit:       t.manager.Limit(),
	}
	if len(toolResult.Calculators) == 0 {
		toolResult.Message = "No calculators yet. Any tool that takes a calculator name creates it on first use."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d calculators.", len(toolResult.Calculators))
	}

	return JSONResult(toolResult)
}

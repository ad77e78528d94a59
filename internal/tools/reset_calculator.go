package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calcpad/internal/results"
	"github.com/averycrespi/calcpad/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// ResetCalculatorTool handles calculator reset requests
type ResetCalculatorTool struct {
	manager *session.Manager
}

// NewResetCalculatorTool creates a new reset calculator tool
func NewResetCalculatorTool(manager *session.Manager) *ResetCalculatorTool {
	return &ResetCalculatorTool{
		manager: manager,
	}
}

// GetTool returns the MCP tool definition
func (t *ResetCalculatorTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolResetCalculator,
		mcp.WithDescription("Replace a calculator with a new one. Unlike the O key, this also clears memory."),
		mcp.WithString(ParamCalculator, mcp.Description(calculatorParamDescription)),
	)
	return tool
}

// Handle processes the tool request
func (t *ResetCalculatorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, err := t.manager.Reset(GetCalculatorName(req))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to reset calculator: %v", err)), nil
	}

	toolResult := results.ResetCalculatorToolResult{
		Calculator: s.Name(),
		Display:    s.Display(),
		Message:    "Calculator reset, memory cleared.",
	}

	return JSONResult(toolResult)
}

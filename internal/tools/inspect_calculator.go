package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calcpad/internal/results"
	"github.com/averycrespi/calcpad/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// InspectCalculatorTool handles register inspection requests
type InspectCalculatorTool struct {
	manager *session.Manager
}

// NewInspectCalculatorTool creates a new inspect calculator tool
func NewInspectCalculatorTool(manager *session.Manager) *InspectCalculatorTool {
	return &InspectCalculatorTool{
		manager: manager,
	}
}

// GetTool returns the MCP tool definition
func (t *InspectCalculatorTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolInspectCalculator,
		mcp.WithDescription("Show the raw registers of a calculator: operands, pending operation, memory and display"),
		mcp.WithString(ParamCalculator, mcp.Description(calculatorParamDescription)),
	)
	return tool
}

// Handle processes the tool request
func (t *InspectCalculatorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, err := t.manager.Get(GetCalculatorName(req))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get calculator: %v", err)), nil
	}

	toolResult := results.InspectCalculatorToolResult{
		Calculator: s.Name(),
		Registers:  s.Snapshot(),
		Message:    "Empty registers are unset. The display is shown before normalization.",
	}

	return JSONResult(toolResult)
}

package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calcpad/internal/calculator"
	"github.com/averycrespi/calcpad/internal/results"
	"github.com/averycrespi/calcpad/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReadDisplayTool handles display read requests
type ReadDisplayTool struct {
	manager *session.Manager
}

// NewReadDisplayTool creates a new read display tool
func NewReadDisplayTool(manager *session.Manager) *ReadDisplayTool {
	return &ReadDisplayTool{
		manager: manager,
	}
}

// GetTool returns the MCP tool definition
func (t *ReadDisplayTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolReadDisplay,
		mcp.WithDescription("Read the current display of a calculator"),
		mcp.WithString(ParamCalculator, mcp.Description(calculatorParamDescription)),
	)
	return tool
}

// Handle processes the tool request
func (t *ReadDisplayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, err := t.manager.Get(GetCalculatorName(req))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get calculator: %v", err)), nil
	}

	display := s.Display()
	toolResult := results.ReadDisplayToolResult{
		Calculator: s.Name(),
		Display:    display,
		IsError:    display == calculator.ErrorMarker,
	}
	if toolResult.IsError {
		toolResult.Message = "The calculator shows an error."
	} else {
		toolResult.Message = fmt.Sprintf("The calculator shows %s.", display)
	}

	return JSONResult(toolResult)
}

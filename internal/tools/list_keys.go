package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calcpad/internal/calculator"
	"github.com/averycrespi/calcpad/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListKeysTool handles key listing requests
type ListKeysTool struct{}

// NewListKeysTool creates a new list keys tool
func NewListKeysTool() *ListKeysTool {
	return &ListKeysTool{}
}

// GetTool returns the MCP tool definition
func (t *ListKeysTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolListKeys,
		mcp.WithDescription("List every key the calculator recognizes, with its kind and meaning"),
	)
	return tool
}

// Handle processes the tool request
func (t *ListKeysTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys := calculator.Keys()
	toolResult := results.ListKeysToolResult{
		Keys: make([]results.KeyEntry, 0, len(keys)),
	}
	for _, info := range keys {
		toolResult.Keys = append(toolResult.Keys, results.KeyEntry{
			Key:         string(info.Key),
			Kind:        results.NewKeyKind(info.Kind),
			Description: info.Description,
		})
	}
	toolResult.Message = fmt.Sprintf("Found %d keys.", len(toolResult.Keys))

	return JSONResult(toolResult)
}

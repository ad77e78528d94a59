package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calcpad/internal/calculator"
	"github.com/averycrespi/calcpad/internal/results"
	"github.com/averycrespi/calcpad/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressKeysTool handles key press requests
type PressKeysTool struct {
	manager *session.Manager
}

// NewPressKeysTool creates a new press keys tool
func NewPressKeysTool(manager *session.Manager) *PressKeysTool {
	return &PressKeysTool{
		manager: manager,
	}
}

// GetTool returns the MCP tool definition
func (t *PressKeysTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolPressKeys,
		mcp.WithDescription("Press a sequence of calculator keys in order, returning the display after each key. "+
			"Digits 0-9 and ',' enter numbers; + - * / are binary operations; = executes; "+
			"M S K T Q R I are sign change, sine, cosine, tangent, square, square root and reciprocal; "+
			"P stores and G recalls memory; C clears the last register; O resets. Whitespace is ignored."),
		mcp.WithString(ParamKeys, mcp.Required(), mcp.Description("Keys to press, e.g. \"12 + 3 =\"")),
		mcp.WithString(ParamCalculator, mcp.Description(calculatorParamDescription)),
	)
	return tool
}

// Handle processes the tool request
func (t *PressKeysTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sequence := results.KeySequence(mcp.ParseString(req, ParamKeys, ""))
	if _, err := sequence.Parse(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid keys parameter: %v", err)), nil
	}

	s, err := t.manager.Get(GetCalculatorName(req))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get calculator: %v", err)), nil
	}

	outcome, err := s.PressKeys(sequence.String())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press keys: %v", err)), nil
	}

	toolResult := results.PressKeysToolResult{
		Calculator: s.Name(),
		Keys:       sequence.String(),
		Display:    outcome.Display,
		Steps:      make([]results.KeyStep, 0, len(outcome.Steps)),
	}
	invalid := 0
	for _, step := range outcome.Steps {
		kind := results.KeyKindOf(step.Key)
		if kind == results.KeyKindInvalid {
			invalid++
		}
		toolResult.Steps = append(toolResult.Steps, results.KeyStep{
			Key:     string(step.Key),
			Kind:    kind,
			Display: step.Display,
		})
	}

	switch {
	case invalid > 0:
		toolResult.Message = fmt.Sprintf("Pressed %d keys, %d of them not recognized. "+
			"Call list_keys to see the available keys.", len(outcome.Steps), invalid)
	case outcome.Display == calculator.ErrorMarker:
		toolResult.Message = fmt.Sprintf("Pressed %d keys. The calculator shows an error; "+
			"press C or O to clear it.", len(outcome.Steps))
	default:
		toolResult.Message = fmt.Sprintf("Pressed %d keys.", len(outcome.Steps))
	}

	return JSONResult(toolResult)
}

package results

import "github.com/averycrespi/calcpad/pkg/types"

// InspectCalculatorToolResult represents the result of the inspect_calculator tool
type InspectCalculatorToolResult struct {
	Calculator string         `json:"calculator"`
	Registers  types.Snapshot `json:"registers"`
	Message    string         `json:"message"`
}

package results

// ResetCalculatorToolResult represents the result of the reset_calculator tool
type ResetCalculatorToolResult struct {
	Calculator string `json:"calculator"`
	Display    string `json:"display"`
	Message    string `json:"message"`
}

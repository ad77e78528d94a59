package results

// ListCalculatorsToolResult represents the result of the list_calculators tool
type ListCalculatorsToolResult struct {
	Message     string   `json:"message"`
	Calculators []string `json:"calculators"`
	Limit       int      `json:"limit"`
}

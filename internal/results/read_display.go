package results

// ReadDisplayToolResult represents the result of the read_display tool
type ReadDisplayToolResult struct {
	Calculator string `json:"calculator"`
	Display    string `json:"display"`
	IsError    bool   `json:"is_error"`
	Message    string `json:"message"`
}

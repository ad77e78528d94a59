package results

// PressKeysToolResult represents the result of the press_keys tool
type PressKeysToolResult struct {
	Calculator string    `json:"calculator"`
	Keys       string    `json:"keys"`
	Display    string    `json:"display"`
	Message    string    `json:"message"`
	Steps      []KeyStep `json:"steps,omitempty"`
}

// KeyStep represents the display after a single key press
type KeyStep struct {
	Key     string  `json:"key"`
	Kind    KeyKind `json:"kind"`
	Display string  `json:"display"`
}

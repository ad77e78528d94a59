package results

// ListKeysToolResult represents the result of the list_keys tool
type ListKeysToolResult struct {
	Message string     `json:"message"`
	Keys    []KeyEntry `json:"keys"`
}

// KeyEntry describes a single calculator key
type KeyEntry struct {
	Key         string  `json:"key"`
	Kind        KeyKind `json:"kind"`
	Description string  `json:"description"`
}

package llm

// Schema describes the JSON Schema for a tool's input.
type Schema struct {
	Type       string                     `json:"type"`
	Required   []string                   `json:"required,omitempty"`
	Properties map[string]*SchemaProperty `json:"properties,omitempty"`
}

// SchemaProperty describes one property in a tool input schema.
type SchemaProperty struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Tool describes a function the hosted model may call.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Parameters  Schema `json:"parameters"`
}

// ToolChoice controls whether and how the model selects tools.
type ToolChoice struct {
	Type string `json:"type"` // "auto", "none", or "tool"
	Name string `json:"name,omitempty"`
}

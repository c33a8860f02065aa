package llm

import (
	"encoding/json"
	"strings"
)

// Role indicates the role of a message in a conversation. Either "user",
// "assistant", or "system".
type Role string

const (
	User      Role = "user"
	Assistant Role = "assistant"
	System    Role = "system"
)

func (r Role) String() string {
	return string(r)
}

// ContentType indicates the type of a content block in a message.
type ContentType string

const (
	ContentTypeText       ContentType = "text"
	ContentTypeToolUse    ContentType = "tool_use"
	ContentTypeToolResult ContentType = "tool_result"
)

// Content is a single block of content in a message. A message may contain
// multiple content blocks.
type Content struct {
	Type ContentType `json:"type"`

	// Text content
	Text string `json:"text,omitempty"`

	// ID of the tool use this block belongs to
	ID string `json:"id,omitempty"`

	// Name of the tool being called
	Name string `json:"name,omitempty"`

	// Input passed to the tool, as raw JSON
	Input json.RawMessage `json:"input,omitempty"`
}

// Message is one turn in a conversation with a hosted model.
type Message struct {
	Role    Role       `json:"role"`
	Content []*Content `json:"content"`
}

// Text returns the concatenated text content of the message.
func (m *Message) Text() string {
	var sb strings.Builder
	for _, content := range m.Content {
		if content.Type == ContentTypeText {
			sb.WriteString(content.Text)
		}
	}
	return sb.String()
}

// NewUserTextMessage creates a user message with a single text content block.
func NewUserTextMessage(text string) *Message {
	return &Message{
		Role:    User,
		Content: []*Content{{Type: ContentTypeText, Text: text}},
	}
}

// NewAssistantTextMessage creates an assistant message with a single text
// content block.
func NewAssistantTextMessage(text string) *Message {
	return &Message{
		Role:    Assistant,
		Content: []*Content{{Type: ContentTypeText, Text: text}},
	}
}

// NewToolResultMessage creates a user message carrying tool outputs back to
// the model.
func NewToolResultMessage(results ...*Content) *Message {
	for _, result := range results {
		result.Type = ContentTypeToolResult
	}
	return &Message{Role: User, Content: results}
}

// Usage contains token usage information for an LLM response.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// ToolCall is a call to a tool requested by the model.
type ToolCall struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

// Response from an LLM.
type Response struct {
	ID         string   `json:"id"`
	Model      string   `json:"model"`
	Role       Role     `json:"role"`
	Message    *Message `json:"message"`
	StopReason string   `json:"stop_reason,omitempty"`
	Usage      Usage    `json:"usage"`
}

// Text returns the text content of the response message.
func (r *Response) Text() string {
	if r.Message == nil {
		return ""
	}
	return r.Message.Text()
}

// ToolCalls returns the tool calls requested in the response, if any.
func (r *Response) ToolCalls() []*ToolCall {
	if r.Message == nil {
		return nil
	}
	var calls []*ToolCall
	for _, content := range r.Message.Content {
		if content.Type == ContentTypeToolUse {
			calls = append(calls, &ToolCall{
				ID:    content.ID,
				Name:  content.Name,
				Input: content.Input,
			})
		}
	}
	return calls
}

package google

import (
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/zava-ai/zava/llm"
)

// messagesToContents converts provider-agnostic messages to genai.Content.
// Gemini uses role "model" for assistant turns and carries tool traffic as
// FunctionCall / FunctionResponse parts.
func messagesToContents(messages []*llm.Message) ([]*genai.Content, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}
	contents := make([]*genai.Content, 0, len(messages))

	// Tool results must carry the function name, which only the matching
	// tool_use block knows.
	toolNames := map[string]string{}

	for i, message := range messages {
		if len(message.Content) == 0 {
			return nil, fmt.Errorf("empty message detected (index %d)", i)
		}
		role := string(message.Role)
		if message.Role == llm.Assistant {
			role = "model"
		}
		content := &genai.Content{Role: role}

		for _, block := range message.Content {
			switch block.Type {
			case llm.ContentTypeText:
				content.Parts = append(content.Parts, genai.NewPartFromText(block.Text))
			case llm.ContentTypeToolUse:
				toolNames[block.ID] = block.Name
				var args map[string]any
				if len(block.Input) > 0 {
					if err := json.Unmarshal(block.Input, &args); err != nil {
						return nil, fmt.Errorf("error unmarshaling tool input: %w", err)
					}
				}
				content.Parts = append(content.Parts, &genai.Part{
					FunctionCall: &genai.FunctionCall{
						ID:   block.ID,
						Name: block.Name,
						Args: args,
					},
				})
			case llm.ContentTypeToolResult:
				name, ok := toolNames[block.ID]
				if !ok {
					return nil, fmt.Errorf("tool use not found for tool result: %s", block.ID)
				}
				content.Parts = append(content.Parts, &genai.Part{
					FunctionResponse: &genai.FunctionResponse{
						ID:       block.ID,
						Name:     name,
						Response: map[string]any{"output": block.Text},
					},
				})
			default:
				return nil, fmt.Errorf("unsupported content type: %s", block.Type)
			}
		}
		contents = append(contents, content)
	}
	return contents, nil
}

func convertSchema(schema llm.Schema) *genai.Schema {
	converted := &genai.Schema{Type: genai.Type(schema.Type)}
	if schema.Properties != nil {
		converted.Properties = make(map[string]*genai.Schema)
		for name, prop := range schema.Properties {
			converted.Properties[name] = &genai.Schema{
				Type:        genai.Type(prop.Type),
				Description: prop.Description,
			}
		}
	}
	if len(schema.Required) > 0 {
		converted.Required = schema.Required
	}
	return converted
}

func convertResponse(resp *genai.GenerateContentResponse, model string) (*llm.Response, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from google genai")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return nil, fmt.Errorf("no content in response")
	}

	var blocks []*llm.Content
	for _, part := range candidate.Content.Parts {
		switch {
		case part.Text != "":
			blocks = append(blocks, &llm.Content{
				Type: llm.ContentTypeText,
				Text: part.Text,
			})
		case part.FunctionCall != nil:
			args, err := json.Marshal(part.FunctionCall.Args)
			if err != nil {
				return nil, fmt.Errorf("error marshaling function call args: %w", err)
			}
			id := part.FunctionCall.ID
			if id == "" {
				id = fmt.Sprintf("call_%s", part.FunctionCall.Name)
			}
			blocks = append(blocks, &llm.Content{
				Type:  llm.ContentTypeToolUse,
				ID:    id,
				Name:  part.FunctionCall.Name,
				Input: json.RawMessage(args),
			})
		}
	}

	var usage llm.Usage
	if resp.UsageMetadata != nil {
		usage = llm.Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}

	stopReason := "stop"
	if candidate.FinishReason == genai.FinishReasonMaxTokens {
		stopReason = "max_tokens"
	}

	return &llm.Response{
		ID:    resp.ResponseID,
		Model: model,
		Role:  llm.Assistant,
		Message: &llm.Message{
			Role:    llm.Assistant,
			Content: blocks,
		},
		StopReason: stopReason,
		Usage:      usage,
	}, nil
}

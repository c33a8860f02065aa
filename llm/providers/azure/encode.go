package azure

import (
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/packages/param"
	"github.com/openai/openai-go/v2/shared"

	"github.com/zava-ai/zava/llm"
)

// encodeMessages converts provider-agnostic messages to the chat-completions
// wire format. Assistant tool-use blocks become tool_calls on the assistant
// message; tool-result blocks become tool-role messages.
func encodeMessages(systemPrompt string, messages []*llm.Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	var encoded []openai.ChatCompletionMessageParamUnion
	if systemPrompt != "" {
		encoded = append(encoded, openai.SystemMessage(systemPrompt))
	}
	for _, message := range messages {
		switch message.Role {
		case llm.System:
			encoded = append(encoded, openai.SystemMessage(message.Text()))
		case llm.User:
			userEncoded, err := encodeUserMessage(message)
			if err != nil {
				return nil, err
			}
			encoded = append(encoded, userEncoded...)
		case llm.Assistant:
			encoded = append(encoded, encodeAssistantMessage(message))
		default:
			return nil, fmt.Errorf("unsupported message role: %s", message.Role)
		}
	}
	return encoded, nil
}

func encodeUserMessage(message *llm.Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	var encoded []openai.ChatCompletionMessageParamUnion
	for _, content := range message.Content {
		switch content.Type {
		case llm.ContentTypeText:
			encoded = append(encoded, openai.UserMessage(content.Text))
		case llm.ContentTypeToolResult:
			encoded = append(encoded, openai.ToolMessage(content.Text, content.ID))
		default:
			return nil, fmt.Errorf("unsupported user content type: %s", content.Type)
		}
	}
	return encoded, nil
}

func encodeAssistantMessage(message *llm.Message) openai.ChatCompletionMessageParamUnion {
	assistant := openai.ChatCompletionAssistantMessageParam{}
	if text := message.Text(); text != "" {
		assistant.Content.OfString = param.NewOpt(text)
	}
	for _, content := range message.Content {
		if content.Type != llm.ContentTypeToolUse {
			continue
		}
		assistant.ToolCalls = append(assistant.ToolCalls, openai.ChatCompletionMessageToolCallUnionParam{
			OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
				ID: content.ID,
				Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
					Name:      content.Name,
					Arguments: string(content.Input),
				},
			},
		})
	}
	return openai.ChatCompletionMessageParamUnion{OfAssistant: &assistant}
}

func encodeTools(tools []llm.Tool) []openai.ChatCompletionToolUnionParam {
	encoded := make([]openai.ChatCompletionToolUnionParam, 0, len(tools))
	for _, tool := range tools {
		encoded = append(encoded, openai.ChatCompletionFunctionTool(shared.FunctionDefinitionParam{
			Name:        tool.Name,
			Description: openai.String(tool.Description),
			Parameters:  encodeSchema(tool.Parameters),
		}))
	}
	return encoded
}

func encodeSchema(schema llm.Schema) shared.FunctionParameters {
	properties := map[string]any{}
	for name, prop := range schema.Properties {
		properties[name] = map[string]any{
			"type":        prop.Type,
			"description": prop.Description,
		}
	}
	return shared.FunctionParameters{
		"type":       schema.Type,
		"properties": properties,
		"required":   schema.Required,
	}
}

func decodeResponse(completion *openai.ChatCompletion) *llm.Response {
	choice := completion.Choices[0]

	var blocks []*llm.Content
	if choice.Message.Content != "" {
		blocks = append(blocks, &llm.Content{
			Type: llm.ContentTypeText,
			Text: choice.Message.Content,
		})
	}
	for _, call := range choice.Message.ToolCalls {
		blocks = append(blocks, &llm.Content{
			Type:  llm.ContentTypeToolUse,
			ID:    call.ID,
			Name:  call.Function.Name,
			Input: json.RawMessage(call.Function.Arguments),
		})
	}

	return &llm.Response{
		ID:    completion.ID,
		Model: completion.Model,
		Role:  llm.Assistant,
		Message: &llm.Message{
			Role:    llm.Assistant,
			Content: blocks,
		},
		StopReason: string(choice.FinishReason),
		Usage: llm.Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
		},
	}
}

package agent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zava-ai/zava/catalog"
	"github.com/zava-ai/zava/llm"
)

// scriptedLLM returns canned responses in order and records the messages it
// was called with.
type scriptedLLM struct {
	responses []*llm.Response
	errs      []error
	calls     [][]*llm.Message
	configs   []*llm.GenerateConfig
}

func (m *scriptedLLM) Name() string { return "scripted" }

func (m *scriptedLLM) Generate(ctx context.Context, messages []*llm.Message, opts ...llm.GenerateOption) (*llm.Response, error) {
	config := &llm.GenerateConfig{}
	config.Apply(opts...)
	m.configs = append(m.configs, config)
	m.calls = append(m.calls, messages)
	i := len(m.calls) - 1
	if i < len(m.errs) && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	if i >= len(m.responses) {
		return nil, errors.New("unexpected extra generate call")
	}
	return m.responses[i], nil
}

func textResponse(text string) *llm.Response {
	return &llm.Response{
		Role:    llm.Assistant,
		Message: llm.NewAssistantTextMessage(text),
	}
}

func toolCallResponse(id, name, input string) *llm.Response {
	return &llm.Response{
		Role: llm.Assistant,
		Message: &llm.Message{
			Role: llm.Assistant,
			Content: []*llm.Content{{
				Type:  llm.ContentTypeToolUse,
				ID:    id,
				Name:  name,
				Input: json.RawMessage(input),
			}},
		},
	}
}

func TestNewRequiresModel(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model is required")
}

func TestProcessMessageDirectAnswer(t *testing.T) {
	model := &scriptedLLM{responses: []*llm.Response{textResponse("Hello! How can I help?")}}
	a, err := New(Options{Model: model})
	require.NoError(t, err)

	response, err := a.ProcessMessage(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello! How can I help?", response)

	require.Len(t, model.configs, 1)
	assert.Contains(t, model.configs[0].SystemPrompt, "Zava Product Manager")
	require.Len(t, model.configs[0].Tools, 1)
	assert.Equal(t, "get_products", model.configs[0].Tools[0].Name)
}

func TestProcessMessageWithToolUse(t *testing.T) {
	model := &scriptedLLM{responses: []*llm.Response{
		toolCallResponse("call_1", "get_products", `{"query":"sprayer"}`),
		textResponse("The Professional Paint Sprayer costs $89.99."),
	}}
	a, err := New(Options{Model: model})
	require.NoError(t, err)

	response, err := a.ProcessMessage(context.Background(), "how much is the sprayer?")
	require.NoError(t, err)
	assert.Equal(t, "The Professional Paint Sprayer costs $89.99.", response)

	// Second call carries the assistant tool call and the tool result
	require.Len(t, model.calls, 2)
	followup := model.calls[1]
	require.Len(t, followup, 3)
	assert.Equal(t, llm.Assistant, followup[1].Role)
	require.Len(t, followup[2].Content, 1)
	result := followup[2].Content[0]
	assert.Equal(t, llm.ContentTypeToolResult, result.Type)
	assert.Equal(t, "call_1", result.ID)
	assert.Contains(t, result.Text, "Professional Paint Sprayer")
}

func TestProcessMessageUnknownToolReportedToModel(t *testing.T) {
	model := &scriptedLLM{responses: []*llm.Response{
		toolCallResponse("call_1", "delete_products", `{}`),
		textResponse("Sorry, I can't do that."),
	}}
	a, err := New(Options{Model: model})
	require.NoError(t, err)

	response, err := a.ProcessMessage(context.Background(), "remove everything")
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I can't do that.", response)

	result := model.calls[1][2].Content[0]
	assert.Contains(t, result.Text, "unknown tool")
}

func TestProcessMessageGenerationError(t *testing.T) {
	model := &scriptedLLM{errs: []error{errors.New("rate limited")}}
	a, err := New(Options{Model: model})
	require.NoError(t, err)

	_, err = a.ProcessMessage(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model generation failed")
}

func TestProcessMessageIterationBound(t *testing.T) {
	looping := toolCallResponse("call_x", "get_products", `{"query":"roller"}`)
	model := &scriptedLLM{responses: []*llm.Response{looping, looping}}
	a, err := New(Options{Model: model, MaxToolIterations: 2})
	require.NoError(t, err)

	_, err = a.ProcessMessage(context.Background(), "loop forever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not converge")
	assert.Len(t, model.calls, 2)
}

func TestProcessMessageEmptyResponse(t *testing.T) {
	model := &scriptedLLM{responses: []*llm.Response{textResponse("   ")}}
	a, err := New(Options{Model: model})
	require.NoError(t, err)

	_, err = a.ProcessMessage(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestRunProductsTool(t *testing.T) {
	c := catalog.Default()

	out, err := runProductsTool(c, json.RawMessage(`{"query":"tray"}`))
	require.NoError(t, err)
	var decoded struct {
		Products []catalog.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Products, 1)
	assert.Equal(t, "All-Purpose Paint Tray", decoded.Products[0].ProductName)

	out, err = runProductsTool(c, json.RawMessage(`{"query":"garden hose"}`))
	require.NoError(t, err)
	assert.Contains(t, out, "no matching products found")

	_, err = runProductsTool(c, json.RawMessage(`{not json`))
	require.Error(t, err)
}

// Package agent implements the Zava product manager: a message processor that
// answers catalog questions by driving a hosted model through a bounded
// tool-use loop over the product catalog.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/zava-ai/zava/catalog"
	"github.com/zava-ai/zava/llm"
	"github.com/zava-ai/zava/slogger"
)

// DefaultMaxToolIterations bounds how many rounds of tool calls a single
// message may trigger before the agent gives up.
const DefaultMaxToolIterations = 5

// Options for creating a product manager agent.
type Options struct {
	Model             llm.LLM
	Catalog           *catalog.Catalog
	Instructions      string
	MaxToolIterations int
	Logger            slogger.Logger
}

// ProductManager answers product questions using a hosted model and the
// catalog lookup tool. It implements zava.MessageProcessor.
type ProductManager struct {
	model             llm.LLM
	catalog           *catalog.Catalog
	instructions      string
	maxToolIterations int
	logger            slogger.Logger
}

// New creates a product manager agent.
func New(opts Options) (*ProductManager, error) {
	if opts.Model == nil {
		return nil, fmt.Errorf("model is required")
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Instructions == "" {
		opts.Instructions = defaultInstructions
	}
	if opts.MaxToolIterations <= 0 {
		opts.MaxToolIterations = DefaultMaxToolIterations
	}
	if opts.Logger == nil {
		opts.Logger = slogger.DefaultLogger
	}
	return &ProductManager{
		model:             opts.Model,
		catalog:           opts.Catalog,
		instructions:      opts.Instructions,
		maxToolIterations: opts.MaxToolIterations,
		logger:            opts.Logger,
	}, nil
}

// Provider returns the name of the underlying model provider.
func (a *ProductManager) Provider() string {
	return a.model.Name()
}

// ProcessMessage answers one user message. Tool calls requested by the model
// are executed against the catalog and fed back until the model produces a
// text answer or the iteration bound is hit.
func (a *ProductManager) ProcessMessage(ctx context.Context, message string) (string, error) {
	messages := []*llm.Message{llm.NewUserTextMessage(message)}

	for i := 0; i < a.maxToolIterations; i++ {
		response, err := a.model.Generate(ctx, messages,
			llm.WithSystemPrompt(a.instructions),
			llm.WithTools(productsTool()),
		)
		if err != nil {
			return "", fmt.Errorf("model generation failed: %w", err)
		}
		calls := response.ToolCalls()
		if len(calls) == 0 {
			text := strings.TrimSpace(response.Text())
			if text == "" {
				return "", fmt.Errorf("model returned an empty response")
			}
			return text, nil
		}

		messages = append(messages, response.Message)
		results := make([]*llm.Content, 0, len(calls))
		for _, call := range calls {
			result, err := a.runTool(call)
			if err != nil {
				a.logger.Warn("tool call failed",
					"tool", call.Name,
					"error", err)
				result = fmt.Sprintf("error: %s", err)
			}
			results = append(results, &llm.Content{
				Type: llm.ContentTypeToolResult,
				ID:   call.ID,
				Name: call.Name,
				Text: result,
			})
		}
		messages = append(messages, llm.NewToolResultMessage(results...))
	}
	return "", fmt.Errorf("tool use did not converge after %d iterations", a.maxToolIterations)
}

func (a *ProductManager) runTool(call *llm.ToolCall) (string, error) {
	a.logger.Debug("running tool", "tool", call.Name)
	switch call.Name {
	case productsToolName:
		return runProductsTool(a.catalog, call.Input)
	default:
		return "", fmt.Errorf("unknown tool %q", call.Name)
	}
}

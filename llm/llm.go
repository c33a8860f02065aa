// Package llm defines a provider-agnostic interface for hosted chat-completion
// models, along with the message and tool types shared by all providers.
package llm

import "context"

// LLM is implemented by each hosted model provider.
type LLM interface {
	// Name of the provider, e.g. "azure-openai"
	Name() string

	// Generate a response from the model for the given messages.
	Generate(ctx context.Context, messages []*Message, opts ...GenerateOption) (*Response, error)
}

// GenerateOption configures a single generation request.
type GenerateOption func(*GenerateConfig)

// GenerateConfig holds configuration parameters for LLM generation.
type GenerateConfig struct {
	Model        string
	SystemPrompt string
	MaxTokens    *int
	Temperature  *float64
	Tools        []Tool
	ToolChoice   ToolChoice
}

// Apply applies the given options to the config.
func (c *GenerateConfig) Apply(opts ...GenerateOption) {
	for _, opt := range opts {
		opt(c)
	}
}

// WithModel overrides the provider's default model or deployment.
func WithModel(model string) GenerateOption {
	return func(config *GenerateConfig) {
		config.Model = model
	}
}

// WithSystemPrompt sets the system prompt.
func WithSystemPrompt(systemPrompt string) GenerateOption {
	return func(config *GenerateConfig) {
		config.SystemPrompt = systemPrompt
	}
}

// WithMaxTokens sets the max tokens.
func WithMaxTokens(maxTokens int) GenerateOption {
	return func(config *GenerateConfig) {
		config.MaxTokens = &maxTokens
	}
}

// WithTemperature sets the temperature.
func WithTemperature(temperature float64) GenerateOption {
	return func(config *GenerateConfig) {
		config.Temperature = &temperature
	}
}

// WithTools sets the tools available to the model for the interaction.
func WithTools(tools ...Tool) GenerateOption {
	return func(config *GenerateConfig) {
		config.Tools = tools
	}
}

// WithToolChoice sets the tool choice for the interaction.
func WithToolChoice(toolChoice ToolChoice) GenerateOption {
	return func(config *GenerateConfig) {
		config.ToolChoice = toolChoice
	}
}

// Package azure implements the llm.LLM interface using the openai-go SDK
// against an Azure OpenAI deployment.
package azure

import (
	"context"
	"fmt"
	"os"

	"github.com/openai/openai-go/v2"
	azuresdk "github.com/openai/openai-go/v2/azure"
	"github.com/openai/openai-go/v2/option"

	"github.com/zava-ai/zava/llm"
)

const ProviderName = "azure-openai"

var (
	DefaultDeployment = "gpt-4.1"
	DefaultAPIVersion = "2024-12-01-preview"
	DefaultMaxTokens  = 1000
)

var _ llm.LLM = &Provider{}

// Provider calls an Azure OpenAI chat-completion deployment.
type Provider struct {
	client     openai.Client
	endpoint   string
	apiKey     string
	apiVersion string
	deployment string
	maxTokens  int
	options    []option.RequestOption
}

// New creates an Azure OpenAI provider. By default the endpoint and key are
// read from AZURE_OPENAI_ENDPOINT and AZURE_OPENAI_KEY.
func New(opts ...Option) *Provider {
	p := &Provider{
		endpoint:   os.Getenv("AZURE_OPENAI_ENDPOINT"),
		apiKey:     os.Getenv("AZURE_OPENAI_KEY"),
		apiVersion: DefaultAPIVersion,
		deployment: DefaultDeployment,
		maxTokens:  DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(p)
	}
	requestOpts := []option.RequestOption{
		azuresdk.WithEndpoint(p.endpoint, p.apiVersion),
		azuresdk.WithAPIKey(p.apiKey),
	}
	requestOpts = append(requestOpts, p.options...)
	p.client = openai.NewClient(requestOpts...)
	return p
}

func (p *Provider) Name() string {
	return ProviderName
}

func (p *Provider) Generate(ctx context.Context, messages []*llm.Message, opts ...llm.GenerateOption) (*llm.Response, error) {
	config := &llm.GenerateConfig{}
	config.Apply(opts...)

	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}

	params, err := p.buildRequestParams(config, messages)
	if err != nil {
		return nil, err
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("azure openai request failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("azure openai returned no choices")
	}
	return decodeResponse(completion), nil
}

func (p *Provider) buildRequestParams(config *llm.GenerateConfig, messages []*llm.Message) (openai.ChatCompletionNewParams, error) {
	deployment := config.Model
	if deployment == "" {
		deployment = p.deployment
	}
	encoded, err := encodeMessages(config.SystemPrompt, messages)
	if err != nil {
		return openai.ChatCompletionNewParams{}, err
	}
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(deployment),
		Messages: encoded,
	}
	maxTokens := p.maxTokens
	if config.MaxTokens != nil {
		maxTokens = *config.MaxTokens
	}
	params.MaxTokens = openai.Int(int64(maxTokens))
	if config.Temperature != nil {
		params.Temperature = openai.Float(*config.Temperature)
	}
	if len(config.Tools) > 0 {
		params.Tools = encodeTools(config.Tools)
	}
	return params, nil
}

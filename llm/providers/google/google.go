// Package google implements the llm.LLM interface using the Google GenAI SDK
// (Gemini models).
package google

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/zava-ai/zava/llm"
	"github.com/zava-ai/zava/retry"
)

const ProviderName = "google"

var (
	DefaultModel         = "gemini-2.0-flash"
	DefaultMaxTokens     = 1000
	DefaultMaxRetries    = 3
	DefaultRetryBaseWait = retry.DefaultBaseWait
)

var _ llm.LLM = &Provider{}

// Provider calls Gemini models through the Google GenAI API.
type Provider struct {
	client        *genai.Client
	apiKey        string
	projectID     string
	location      string
	model         string
	maxTokens     int
	maxRetries    int
	retryBaseWait time.Duration
	mutex         sync.Mutex
}

// New creates a Gemini provider. The API key defaults to GEMINI_API_KEY or
// GOOGLE_API_KEY.
func New(opts ...Option) *Provider {
	var apiKey string
	if value := os.Getenv("GEMINI_API_KEY"); value != "" {
		apiKey = value
	} else if value := os.Getenv("GOOGLE_API_KEY"); value != "" {
		apiKey = value
	}
	p := &Provider{
		apiKey:        apiKey,
		model:         DefaultModel,
		maxTokens:     DefaultMaxTokens,
		maxRetries:    DefaultMaxRetries,
		retryBaseWait: DefaultRetryBaseWait,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// initClient lazily creates the genai client, since creation requires a
// context.
func (p *Provider) initClient(ctx context.Context) (*genai.Client, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:   p.apiKey,
		Project:  p.projectID,
		Location: p.location,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create google genai client: %w", err)
	}
	p.client = client
	return p.client, nil
}

func (p *Provider) Name() string {
	return ProviderName
}

func (p *Provider) Generate(ctx context.Context, messages []*llm.Message, opts ...llm.GenerateOption) (*llm.Response, error) {
	client, err := p.initClient(ctx)
	if err != nil {
		return nil, err
	}

	config := &llm.GenerateConfig{}
	config.Apply(opts...)

	model := config.Model
	if model == "" {
		model = p.model
	}

	contents, err := messagesToContents(messages)
	if err != nil {
		return nil, err
	}
	genConfig := p.buildGenerateConfig(config)

	var result *llm.Response
	err = retry.Do(ctx, func() error {
		resp, err := client.Models.GenerateContent(ctx, model, contents, genConfig)
		if err != nil {
			return retry.NewRecoverableError(fmt.Errorf("error generating content: %w", err))
		}
		var convErr error
		result, convErr = convertResponse(resp, model)
		if convErr != nil {
			return fmt.Errorf("error converting response: %w", convErr)
		}
		return nil
	}, retry.WithMaxRetries(p.maxRetries), retry.WithBaseWait(p.retryBaseWait))
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (p *Provider) buildGenerateConfig(config *llm.GenerateConfig) *genai.GenerateContentConfig {
	genConfig := &genai.GenerateContentConfig{}

	maxTokens := p.maxTokens
	if config.MaxTokens != nil {
		maxTokens = *config.MaxTokens
	}
	genConfig.MaxOutputTokens = int32(maxTokens)

	if config.Temperature != nil {
		temp := float32(*config.Temperature)
		genConfig.Temperature = &temp
	}
	if config.SystemPrompt != "" {
		genConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(config.SystemPrompt)},
		}
	}
	if len(config.Tools) > 0 {
		tools := make([]*genai.Tool, 0, len(config.Tools))
		for _, tool := range config.Tools {
			tools = append(tools, &genai.Tool{
				FunctionDeclarations: []*genai.FunctionDeclaration{{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  convertSchema(tool.Parameters),
				}},
			})
		}
		genConfig.Tools = tools
	}
	return genConfig
}

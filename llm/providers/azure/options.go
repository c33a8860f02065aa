package azure

import "github.com/openai/openai-go/v2/option"

// Option is a function that configures the Provider
type Option func(*Provider)

// WithEndpoint sets the Azure OpenAI resource endpoint.
func WithEndpoint(endpoint string) Option {
	return func(p *Provider) {
		p.endpoint = endpoint
	}
}

// WithAPIKey sets the API key for the provider.
func WithAPIKey(apiKey string) Option {
	return func(p *Provider) {
		p.apiKey = apiKey
	}
}

// WithAPIVersion sets the Azure OpenAI API version.
func WithAPIVersion(apiVersion string) Option {
	return func(p *Provider) {
		p.apiVersion = apiVersion
	}
}

// WithDeployment sets the chat-completion deployment name.
func WithDeployment(deployment string) Option {
	return func(p *Provider) {
		p.deployment = deployment
	}
}

// WithMaxTokens sets the default maximum number of tokens to generate.
func WithMaxTokens(maxTokens int) Option {
	return func(p *Provider) {
		p.maxTokens = maxTokens
	}
}

// WithRequestOptions appends additional openai-go request options, e.g. a
// custom HTTP client or middleware.
func WithRequestOptions(opts ...option.RequestOption) Option {
	return func(p *Provider) {
		p.options = append(p.options, opts...)
	}
}

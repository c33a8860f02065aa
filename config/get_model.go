package config

import (
	"fmt"

	"github.com/zava-ai/zava/llm"
	"github.com/zava-ai/zava/llm/providers/azure"
	"github.com/zava-ai/zava/llm/providers/google"
)

// GetModel builds the LLM for the configured provider.
func GetModel(config *Config) (llm.LLM, error) {
	switch config.LLM.Provider {
	case "azure-openai":
		var opts []azure.Option
		if config.LLM.Azure.Endpoint != "" {
			opts = append(opts, azure.WithEndpoint(config.LLM.Azure.Endpoint))
		}
		if config.LLM.Azure.APIKey != "" {
			opts = append(opts, azure.WithAPIKey(config.LLM.Azure.APIKey))
		}
		if config.LLM.Azure.APIVersion != "" {
			opts = append(opts, azure.WithAPIVersion(config.LLM.Azure.APIVersion))
		}
		if config.LLM.Model != "" {
			opts = append(opts, azure.WithDeployment(config.LLM.Model))
		}
		return azure.New(opts...), nil
	case "google":
		var opts []google.Option
		if config.LLM.Google.APIKey != "" {
			opts = append(opts, google.WithAPIKey(config.LLM.Google.APIKey))
		}
		if config.LLM.Google.ProjectID != "" {
			opts = append(opts, google.WithProjectID(config.LLM.Google.ProjectID))
		}
		if config.LLM.Google.Location != "" {
			opts = append(opts, google.WithLocation(config.LLM.Google.Location))
		}
		if config.LLM.Model != "" {
			opts = append(opts, google.WithModel(config.LLM.Model))
		}
		return google.New(opts...), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", config.LLM.Provider)
	}
}

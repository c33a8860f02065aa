// Package config loads the Zava agent service configuration from YAML with
// environment variable overrides, and builds the configured model provider.
package config

import (
	"fmt"
	"strings"
)

// Server holds HTTP server settings.
type Server struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`
}

// LLM selects and configures the model provider.
type LLM struct {
	// Provider is "azure-openai" or "google"
	Provider string `yaml:"provider"`

	// Model or deployment name, provider-specific default applies when empty
	Model string `yaml:"model"`

	Azure  Azure  `yaml:"azure"`
	Google Google `yaml:"google"`
}

// Azure holds Azure OpenAI settings.
type Azure struct {
	Endpoint   string `yaml:"endpoint"`
	APIKey     string `yaml:"api_key"`
	APIVersion string `yaml:"api_version"`
}

// Google holds Google Gemini settings.
type Google struct {
	APIKey    string `yaml:"api_key"`
	ProjectID string `yaml:"project_id"`
	Location  string `yaml:"location"`
}

// Search holds Azure AI Search settings for the catalog index pipeline.
type Search struct {
	Endpoint       string `yaml:"endpoint"`
	APIKey         string `yaml:"api_key"`
	IndexName      string `yaml:"index_name"`
	IndexerName    string `yaml:"indexer_name"`
	DataSourceName string `yaml:"datasource_name"`
	// ConnectionString for the blob datasource holding catalog files
	ConnectionString string `yaml:"connection_string"`
	ContainerName    string `yaml:"container_name"`
}

// Catalog holds product catalog settings.
type Catalog struct {
	// Paths are glob patterns for catalog data files. Empty means the
	// built-in sample catalog.
	Paths []string `yaml:"paths"`
}

// Config is the complete service configuration.
type Config struct {
	Server  Server  `yaml:"server"`
	LLM     LLM     `yaml:"llm"`
	Search  Search  `yaml:"search"`
	Catalog Catalog `yaml:"catalog"`
}

// Default returns the configuration defaults applied before file and
// environment overrides.
func Default() *Config {
	return &Config{
		Server: Server{
			Host:     "0.0.0.0",
			Port:     8001,
			LogLevel: "info",
		},
		LLM: LLM{
			Provider: "azure-openai",
		},
		Search: Search{
			IndexName:      "zava-products-index",
			IndexerName:    "zava-products-indexer",
			DataSourceName: "zava-products-datasource",
			ContainerName:  "products",
		},
	}
}

// Validate checks that the configuration names everything the selected
// features need. Search settings are validated separately by ValidateSearch
// since serving does not require them.
func (c *Config) Validate() error {
	var missing []string
	switch c.LLM.Provider {
	case "azure-openai":
		if c.LLM.Azure.Endpoint == "" {
			missing = append(missing, "llm.azure.endpoint (AZURE_OPENAI_ENDPOINT)")
		}
		if c.LLM.Azure.APIKey == "" {
			missing = append(missing, "llm.azure.api_key (AZURE_OPENAI_KEY)")
		}
	case "google":
		if c.LLM.Google.APIKey == "" && c.LLM.Google.ProjectID == "" {
			missing = append(missing, "llm.google.api_key (GEMINI_API_KEY)")
		}
	default:
		return fmt.Errorf("unsupported llm provider: %q", c.LLM.Provider)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateSearch checks the settings the search index pipeline needs.
func (c *Config) ValidateSearch() error {
	var missing []string
	if c.Search.Endpoint == "" {
		missing = append(missing, "search.endpoint (AZURE_SEARCH_ENDPOINT)")
	}
	if c.Search.APIKey == "" {
		missing = append(missing, "search.api_key (AZURE_SEARCH_KEY)")
	}
	if c.Search.ConnectionString == "" {
		missing = append(missing, "search.connection_string (AZURE_STORAGE_CONNECTION_STRING)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

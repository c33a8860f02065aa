package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Load builds the configuration from defaults, an optional YAML file, and
// environment variable overrides, in that order of precedence.
func Load(path string) (*Config, error) {
	config := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	}
	if err := applyEnv(config); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnv overrides configuration fields from environment variables.
func applyEnv(config *Config) error {
	setString := func(dst *string, keys ...string) {
		for _, key := range keys {
			if value := os.Getenv(key); value != "" {
				*dst = value
				return
			}
		}
	}

	setString(&config.Server.Host, "HOST")
	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", raw, err)
		}
		config.Server.Port = port
	}
	setString(&config.Server.LogLevel, "LOG_LEVEL")

	setString(&config.LLM.Provider, "LLM_PROVIDER")
	setString(&config.LLM.Model, "LLM_MODEL", "AZURE_OPENAI_DEPLOYMENT")
	setString(&config.LLM.Azure.Endpoint, "AZURE_OPENAI_ENDPOINT")
	setString(&config.LLM.Azure.APIKey, "AZURE_OPENAI_KEY", "AZURE_OPENAI_API_KEY")
	setString(&config.LLM.Azure.APIVersion, "AZURE_OPENAI_API_VERSION")
	setString(&config.LLM.Google.APIKey, "GEMINI_API_KEY", "GOOGLE_API_KEY")
	setString(&config.LLM.Google.ProjectID, "GOOGLE_CLOUD_PROJECT")
	setString(&config.LLM.Google.Location, "GOOGLE_CLOUD_LOCATION")

	setString(&config.Search.Endpoint, "AZURE_SEARCH_ENDPOINT")
	setString(&config.Search.APIKey, "AZURE_SEARCH_KEY")
	setString(&config.Search.IndexName, "AZURE_SEARCH_INDEX")
	setString(&config.Search.ConnectionString, "AZURE_STORAGE_CONNECTION_STRING")
	setString(&config.Search.ContainerName, "AZURE_STORAGE_CONTAINER")

	if raw := os.Getenv("CATALOG_PATHS"); raw != "" {
		var paths []string
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		config.Catalog.Paths = paths
	}
	return nil
}

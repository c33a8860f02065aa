package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := Default()
	assert.Equal(t, "0.0.0.0", c.Server.Host)
	assert.Equal(t, 8001, c.Server.Port)
	assert.Equal(t, "info", c.Server.LogLevel)
	assert.Equal(t, "azure-openai", c.LLM.Provider)
	assert.Equal(t, "zava-products-index", c.Search.IndexName)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  host: 127.0.0.1
  port: 9090
  log_level: debug
llm:
  provider: google
  model: gemini-2.0-flash
  google:
    api_key: test-key
catalog:
  paths:
    - data/*.csv
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", c.Server.Host)
	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, "debug", c.Server.LogLevel)
	assert.Equal(t, "google", c.LLM.Provider)
	assert.Equal(t, "gemini-2.0-flash", c.LLM.Model)
	assert.Equal(t, "test-key", c.LLM.Google.APIKey)
	assert.Equal(t, []string{"data/*.csv"}, c.Catalog.Paths)
	require.NoError(t, c.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LLM_PROVIDER", "google")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("CATALOG_PATHS", "a/*.csv, b/*.yaml")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "warn", c.Server.LogLevel)
	assert.Equal(t, "google", c.LLM.Provider)
	assert.Equal(t, "env-key", c.LLM.Google.APIKey)
	assert.Equal(t, []string{"a/*.csv", "b/*.yaml"}, c.Catalog.Paths)
}

func TestEnvInvalidPort(t *testing.T) {
	t.Setenv("PORT", "eighty")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid PORT")
}

func TestValidateMissingAzureSettings(t *testing.T) {
	c := Default()
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm.azure.endpoint")
	assert.Contains(t, err.Error(), "llm.azure.api_key")
}

func TestValidateUnsupportedProvider(t *testing.T) {
	c := Default()
	c.LLM.Provider = "anthropic"
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported llm provider")
}

func TestValidateSearch(t *testing.T) {
	c := Default()
	err := c.ValidateSearch()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.endpoint")

	c.Search.Endpoint = "https://example.search.windows.net"
	c.Search.APIKey = "key"
	c.Search.ConnectionString = "DefaultEndpointsProtocol=https;AccountName=test"
	require.NoError(t, c.ValidateSearch())
}

func TestGetModelUnsupported(t *testing.T) {
	c := Default()
	c.LLM.Provider = "anthropic"
	_, err := GetModel(c)
	require.Error(t, err)
}

func TestGetModelAzure(t *testing.T) {
	c := Default()
	c.LLM.Azure.Endpoint = "https://example.openai.azure.com"
	c.LLM.Azure.APIKey = "key"
	model, err := GetModel(c)
	require.NoError(t, err)
	assert.Equal(t, "azure-openai", model.Name())
}

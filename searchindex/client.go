// Package searchindex manages the Zava product catalog index in Azure AI
// Search: a small REST client for datasources, indexes and indexers, and a
// pipeline that provisions them and runs an indexing pass.
package searchindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/zava-ai/zava/retry"
	"github.com/zava-ai/zava/slogger"
)

const DefaultAPIVersion = "2023-11-01"

// Option configures the search client.
type Option func(*Client)

func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

func WithAPIKey(apiKey string) Option {
	return func(c *Client) { c.apiKey = apiKey }
}

func WithAPIVersion(apiVersion string) Option {
	return func(c *Client) { c.apiVersion = apiVersion }
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.client = client }
}

func WithLogger(logger slogger.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// Client calls the Azure AI Search management REST API. Requests carry the
// admin key in the api-key header. Throttled and transient server errors are
// retried with exponential backoff.
type Client struct {
	endpoint   string
	apiKey     string
	apiVersion string
	client     *http.Client
	logger     slogger.Logger
}

// New creates a search client. Endpoint and API key are required.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		apiVersion: DefaultAPIVersion,
		client:     http.DefaultClient,
		logger:     slogger.DefaultLogger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.endpoint == "" {
		return nil, fmt.Errorf("search endpoint is required")
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("search api key is required")
	}
	c.endpoint = strings.TrimRight(c.endpoint, "/")
	return c, nil
}

// CreateOrUpdateDataSource upserts a datasource definition.
func (c *Client) CreateOrUpdateDataSource(ctx context.Context, ds DataSource) error {
	return c.put(ctx, "/datasources/"+url.PathEscape(ds.Name), ds)
}

// CreateOrUpdateIndex upserts an index definition.
func (c *Client) CreateOrUpdateIndex(ctx context.Context, index Index) error {
	return c.put(ctx, "/indexes/"+url.PathEscape(index.Name), index)
}

// CreateOrUpdateIndexer upserts an indexer definition.
func (c *Client) CreateOrUpdateIndexer(ctx context.Context, indexer Indexer) error {
	return c.put(ctx, "/indexers/"+url.PathEscape(indexer.Name), indexer)
}

// RunIndexer triggers an indexer run. The service acknowledges with 202.
func (c *Client) RunIndexer(ctx context.Context, name string) error {
	_, err := c.do(ctx, http.MethodPost, "/indexers/"+url.PathEscape(name)+"/run", nil)
	return err
}

// GetIndexerStatus returns the current execution status of an indexer.
func (c *Client) GetIndexerStatus(ctx context.Context, name string) (*IndexerStatus, error) {
	body, err := c.do(ctx, http.MethodGet, "/indexers/"+url.PathEscape(name)+"/status", nil)
	if err != nil {
		return nil, err
	}
	var status IndexerStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("failed to decode indexer status: %w", err)
	}
	return &status, nil
}

func (c *Client) put(ctx context.Context, path string, payload any) error {
	_, err := c.do(ctx, http.MethodPut, path, payload)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var encoded []byte
	if payload != nil {
		var err error
		encoded, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
	}
	requestURL := fmt.Sprintf("%s%s?api-version=%s", c.endpoint, path, url.QueryEscape(c.apiVersion))

	var body []byte
	err := retry.Do(ctx, func() error {
		var reader io.Reader
		if encoded != nil {
			reader = bytes.NewReader(encoded)
		}
		req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
		if err != nil {
			return err
		}
		req.Header.Set("api-key", c.apiKey)
		if encoded != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := c.client.Do(req)
		if err != nil {
			return retry.NewRecoverableError(err)
		}
		defer resp.Body.Close()

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return retry.NewRecoverableError(err)
		}
		if resp.StatusCode >= 400 {
			requestErr := fmt.Errorf("search request failed: %s %s: status %d: %s",
				method, path, resp.StatusCode, strings.TrimSpace(string(body)))
			if retry.ShouldRetry(resp.StatusCode) {
				c.logger.Warn("retrying search request",
					"method", method,
					"path", path,
					"status", resp.StatusCode)
				return retry.NewRecoverableError(requestErr)
			}
			return requestErr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

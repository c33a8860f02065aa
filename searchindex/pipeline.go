package searchindex

import (
	"context"
	"fmt"
	"time"

	"github.com/zava-ai/zava/slogger"
)

// Default resource names for the product catalog index.
const (
	DefaultIndexName      = "zava-products-index"
	DefaultIndexerName    = "zava-products-indexer"
	DefaultDataSourceName = "zava-products-datasource"
)

// PipelineOptions configures a catalog indexing pipeline.
type PipelineOptions struct {
	Client           *Client
	IndexName        string
	IndexerName      string
	DataSourceName   string
	ConnectionString string
	ContainerName    string
	PollInterval     time.Duration
	PollTimeout      time.Duration
	Logger           slogger.Logger
}

// Pipeline provisions the catalog datasource, index and indexer, then runs
// the indexer and waits for the pass to finish.
type Pipeline struct {
	client           *Client
	indexName        string
	indexerName      string
	dataSourceName   string
	connectionString string
	containerName    string
	pollInterval     time.Duration
	pollTimeout      time.Duration
	logger           slogger.Logger
}

// NewPipeline creates a pipeline. Client and ConnectionString are required.
func NewPipeline(opts PipelineOptions) (*Pipeline, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("search client is required")
	}
	if opts.ConnectionString == "" {
		return nil, fmt.Errorf("storage connection string is required")
	}
	if opts.IndexName == "" {
		opts.IndexName = DefaultIndexName
	}
	if opts.IndexerName == "" {
		opts.IndexerName = DefaultIndexerName
	}
	if opts.DataSourceName == "" {
		opts.DataSourceName = DefaultDataSourceName
	}
	if opts.ContainerName == "" {
		opts.ContainerName = "products"
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 5 * time.Second
	}
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = 5 * time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = slogger.DefaultLogger
	}
	return &Pipeline{
		client:           opts.Client,
		indexName:        opts.IndexName,
		indexerName:      opts.IndexerName,
		dataSourceName:   opts.DataSourceName,
		connectionString: opts.ConnectionString,
		containerName:    opts.ContainerName,
		pollInterval:     opts.PollInterval,
		pollTimeout:      opts.PollTimeout,
		logger:           opts.Logger,
	}, nil
}

// CatalogIndex returns the product catalog index schema.
func CatalogIndex(name string) Index {
	return Index{
		Name: name,
		Fields: []Field{
			{Name: "id", Type: "Edm.String", Key: true, Filterable: true, Sortable: true, Retrievable: true},
			{Name: "ProductID", Type: "Edm.String", Filterable: true, Sortable: true, Retrievable: true},
			{Name: "ProductName", Type: "Edm.String", Searchable: true, Filterable: true, Sortable: true, Retrievable: true},
			{Name: "ProductCategory", Type: "Edm.String", Searchable: true, Filterable: true, Facetable: true, Retrievable: true},
			{Name: "ProductDescription", Type: "Edm.String", Searchable: true, Retrievable: true},
			{Name: "ProductPrice", Type: "Edm.Double", Filterable: true, Sortable: true, Retrievable: true},
			{Name: "ProductImageURL", Type: "Edm.String", Retrievable: true},
			{Name: "content_for_vector", Type: "Edm.String", Searchable: true, Retrievable: true},
		},
	}
}

// Run provisions the search resources and performs one indexing pass.
func (p *Pipeline) Run(ctx context.Context) (*IndexerExecutionResult, error) {
	p.logger.Info("creating datasource", "name", p.dataSourceName)
	err := p.client.CreateOrUpdateDataSource(ctx, DataSource{
		Name: p.dataSourceName,
		Type: "azureblob",
		Credentials: DataSourceCredentials{
			ConnectionString: p.connectionString,
		},
		Container: DataSourceContainer{
			Name: p.containerName,
		},
		Description: "Zava product catalog files",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create datasource: %w", err)
	}

	p.logger.Info("creating index", "name", p.indexName)
	if err := p.client.CreateOrUpdateIndex(ctx, CatalogIndex(p.indexName)); err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	p.logger.Info("creating indexer", "name", p.indexerName)
	err = p.client.CreateOrUpdateIndexer(ctx, Indexer{
		Name:            p.indexerName,
		DataSourceName:  p.dataSourceName,
		TargetIndexName: p.indexName,
		Parameters: &IndexerParams{
			Configuration: map[string]any{
				"parsingMode":              "delimitedText",
				"firstLineContainsHeaders": true,
			},
		},
		FieldMappings: []FieldMapping{
			{SourceFieldName: "ProductID", TargetFieldName: "id"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create indexer: %w", err)
	}

	p.logger.Info("running indexer", "name", p.indexerName)
	if err := p.client.RunIndexer(ctx, p.indexerName); err != nil {
		return nil, fmt.Errorf("failed to run indexer: %w", err)
	}
	return p.waitForCompletion(ctx)
}

// waitForCompletion polls the indexer status until the run finishes.
func (p *Pipeline) waitForCompletion(ctx context.Context) (*IndexerExecutionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.pollTimeout)
	defer cancel()

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		status, err := p.client.GetIndexerStatus(ctx, p.indexerName)
		if err != nil {
			return nil, fmt.Errorf("failed to get indexer status: %w", err)
		}
		result := status.LastResult
		if result != nil {
			switch result.Status {
			case ExecutionStatusSuccess:
				p.logger.Info("indexing complete",
					"items_processed", result.ItemsProcessed,
					"items_failed", result.ItemsFailed)
				return result, nil
			case ExecutionStatusTransientFailure, ExecutionStatusPersistentError:
				return result, fmt.Errorf("indexer run failed: %s: %s", result.Status, result.ErrorMessage)
			}
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("timed out waiting for indexer to finish: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

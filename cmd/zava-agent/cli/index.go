package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zava-ai/zava/searchindex"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the product catalog search index",
	Long:  "Provisions the Azure AI Search datasource, index and indexer for the product catalog, runs an indexing pass and waits for it to finish.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fatal("Error loading configuration: %v", err)
		}
		if err := cfg.ValidateSearch(); err != nil {
			fatal("Invalid configuration: %v", err)
		}
		logger := newLogger(cfg)

		client, err := searchindex.New(
			searchindex.WithEndpoint(cfg.Search.Endpoint),
			searchindex.WithAPIKey(cfg.Search.APIKey),
			searchindex.WithLogger(logger),
		)
		if err != nil {
			fatal("Error creating search client: %v", err)
		}
		pipeline, err := searchindex.NewPipeline(searchindex.PipelineOptions{
			Client:           client,
			IndexName:        cfg.Search.IndexName,
			IndexerName:      cfg.Search.IndexerName,
			DataSourceName:   cfg.Search.DataSourceName,
			ConnectionString: cfg.Search.ConnectionString,
			ContainerName:    cfg.Search.ContainerName,
			Logger:           logger,
		})
		if err != nil {
			fatal("Error creating pipeline: %v", err)
		}

		fmt.Println(boldStyle.Sprintf("Indexing product catalog into %s", cfg.Search.IndexName))
		result, err := pipeline.Run(context.Background())
		if err != nil {
			fatal("Indexing failed: %v", err)
		}
		fmt.Println(successStyle.Sprintf("Indexing complete: %d items processed, %d failed",
			result.ItemsProcessed, result.ItemsFailed))
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

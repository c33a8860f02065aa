package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zava-ai/zava/agent"
	"github.com/zava-ai/zava/catalog"
	"github.com/zava-ai/zava/config"
	"github.com/zava-ai/zava/execution"
	"github.com/zava-ai/zava/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the agent service",
	Long:  "Starts the HTTP server exposing the A2A and chat surfaces for the Zava Product Manager agent.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fatal("Error loading configuration: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			fatal("Invalid configuration: %v", err)
		}
		logger := newLogger(cfg)

		products := catalog.Default()
		if len(cfg.Catalog.Paths) > 0 {
			products, err = catalog.LoadPaths(cfg.Catalog.Paths...)
			if err != nil {
				fatal("Error loading catalog: %v", err)
			}
		}
		logger.Info("catalog loaded", "products", products.Len())

		model, err := config.GetModel(cfg)
		if err != nil {
			fatal("Error creating model: %v", err)
		}
		productManager, err := agent.New(agent.Options{
			Model:   model,
			Catalog: products,
			Logger:  logger,
		})
		if err != nil {
			fatal("Error creating agent: %v", err)
		}
		executor, err := execution.NewExecutor(execution.Options{
			Store:     execution.NewStore(),
			Processor: productManager,
			Logger:    logger,
		})
		if err != nil {
			fatal("Error creating executor: %v", err)
		}
		srv, err := server.New(server.Options{
			Executor: executor,
			Host:     cfg.Server.Host,
			Port:     cfg.Server.Port,
			Logger:   logger,
		})
		if err != nil {
			fatal("Error creating server: %v", err)
		}

		fmt.Println(boldStyle.Sprint("Zava Product Manager"))
		fmt.Println(successStyle.Sprintf("Serving on http://%s (provider: %s)", srv.Addr(), productManager.Provider()))

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := srv.Run(ctx); err != nil {
			fatal("Server error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// Package cli implements the zava-agent command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/zava-ai/zava"
	"github.com/zava-ai/zava/config"
	"github.com/zava-ai/zava/slogger"
)

var (
	configPath string
	logLevel   string

	errorStyle   = color.New(color.FgRed)
	successStyle = color.New(color.FgGreen)
	boldStyle    = color.New(color.Bold)
)

var rootCmd = &cobra.Command{
	Use:     "zava-agent",
	Short:   "Zava Product Manager agent service",
	Long:    "Runs the Zava Product Manager A2A agent service and manages its product catalog search index.",
	Version: zava.Version,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// loadConfig builds the effective configuration from the config file,
// environment and flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Server.LogLevel = logLevel
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) slogger.Logger {
	return slogger.New(slogger.LevelFromString(cfg.Server.LogLevel))
}

func fatal(format string, args ...any) {
	fmt.Println(errorStyle.Sprintf(format, args...))
	os.Exit(1)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

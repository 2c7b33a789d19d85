// Package main provides the talent-match CLI: resume extraction, candidate scoring and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/config"
	"github.com/jonathan/talent-match/internal/logging"
)

var (
	configPath string
	debugLog   bool
	jsonLog    bool
	verbose    bool

	appConfig *config.Config
	logger    *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "match_agent",
	Short:         "Resume attribute extraction and candidate matching",
	Long:          "match_agent extracts skills, experience, location and education from resumes and scores candidates against recruiter filters, from the command line or over a REST API.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		appConfig = cfg

		l, err := logging.New(jsonLog || cfg.LogJSON, debugLog || cfg.LogDebug)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&debugLog, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print human-readable summaries to stderr")
}

// currentConfig returns the loaded config, or defaults when a command runs without the root pre-run.
func currentConfig() *config.Config {
	if appConfig != nil {
		return appConfig
	}
	cfg := config.Defaults()
	return &cfg
}

func currentLogger() *zap.Logger {
	if logger != nil {
		return logger
	}
	return zap.NewNop()
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

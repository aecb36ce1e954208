// Package main provides the ats_scorer CLI: score resumes against a job
// description, serve the scoring API, and browse saved analyses.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/logger"
)

var (
	configPath string
	debugLog   bool
	jsonLog    bool

	// Populated by loadRuntime before any subcommand runs
	appConfig config.Config
	appLogger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:               "ats_scorer",
	Short:             "Hybrid ATS resume scorer",
	Long:              "ats_scorer rates how well a resume matches a job description by blending TF-IDF keyword similarity with embedding similarity, overall and per Skills, Experience and Education section.",
	SilenceUsage:      true,
	PersistentPreRunE: loadRuntime,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (optional)")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "log-json", false, "Write logs as JSON")
}

// loadRuntime resolves configuration and builds the logger.
func loadRuntime(_ *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return err
	}
	// CLI flags always win for bools
	if debugLog {
		cfg.Debug = true
	}
	if jsonLog {
		cfg.LogJSON = true
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	appConfig = cfg
	appLogger = log
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	_ = appLogger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

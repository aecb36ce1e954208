package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/db"
	"github.com/jonathan/ats-scorer/internal/server"
	"github.com/jonathan/ats-scorer/internal/server/ratelimit"
)

var (
	servePort      int
	serveNoHistory bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring resumes and browsing saved analyses.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	serveCmd.Flags().BoolVar(&serveNoHistory, "no-history", false, "Run without a history store")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	port := appConfig.Port
	if servePort != 0 {
		port = servePort
	}

	analyzer, cleanup := buildAnalyzer(ctx, appConfig, appLogger)
	defer cleanup()

	var store db.HistoryStore
	if !serveNoHistory {
		opened, err := openStore(ctx, appConfig)
		if err != nil {
			return err
		}
		defer func() {
			if err := opened.Close(); err != nil {
				appLogger.Warn("closing history store", zap.Error(err))
			}
		}()
		store = opened
	}

	srv := server.New(server.Config{
		Port:       port,
		BatchLimit: appConfig.BatchLimit,
		RateLimit:  ratelimit.LoadConfig(),
	}, analyzer, store, appLogger)

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/db"
	"github.com/jonathan/ats-scorer/internal/observability"
)

var (
	historyLimit int
	historyID    string
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analyses",
	Long:  "Lists the most recent saved analyses, newest first, or prints one analysis in full with --id.",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", db.DefaultListLimit, "Number of analyses to list")
	historyCmd.Flags().StringVar(&historyID, "id", "", "Print the analysis with this ID")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Print JSON instead of the formatted report")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var id uuid.UUID
	if historyID != "" {
		parsed, err := uuid.Parse(historyID)
		if err != nil {
			return fmt.Errorf("invalid --id %q: %w", historyID, err)
		}
		id = parsed
	}

	store, err := openStore(ctx, appConfig)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if id != uuid.Nil {
		analysis, err := store.GetAnalysis(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load analysis: %w", err)
		}
		if analysis == nil {
			return fmt.Errorf("analysis %s not found", id)
		}
		if historyJSON {
			return enc.Encode(analysis)
		}
		printer.PrintAnalysis(analysis)
		return nil
	}

	analyses, err := store.ListAnalyses(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}
	if historyJSON {
		return enc.Encode(analyses)
	}
	printer.PrintHistory(analyses)
	return nil
}

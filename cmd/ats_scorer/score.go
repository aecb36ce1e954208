package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	schemafiles "github.com/jonathan/ats-scorer/schemas"

	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/schemas"
	"github.com/jonathan/ats-scorer/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one or more resumes against a job description",
	Long:  "Reads plain-text resumes and a plain-text job description, then prints the overall score, the Skills/Experience/Education breakdown, missing keywords and suggestions.",
	RunE:  runScore,
}

var (
	scoreResumes []string
	scoreJob     string
	scoreOutput  string
	scoreSave    bool
	scoreJSON    bool
)

func init() {
	scoreCmd.Flags().StringArrayVarP(&scoreResumes, "resume", "r", nil, "Path to a plain-text resume (repeatable, required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to a plain-text job description (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to write the analyses as JSON (optional)")
	scoreCmd.Flags().BoolVar(&scoreSave, "save", false, "Save the analyses to the history store")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print JSON instead of the formatted report")

	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	jobText, err := readTextFile(scoreJob)
	if err != nil {
		return err
	}
	resumeTexts := make([]string, len(scoreResumes))
	for i, path := range scoreResumes {
		if resumeTexts[i], err = readTextFile(path); err != nil {
			return err
		}
		req := types.ScoreRequest{ResumeText: resumeTexts[i], JobDescription: jobText}
		if err := req.Validate(); err != nil {
			return fmt.Errorf("invalid input %s: %w", path, err)
		}
	}

	analyzer, cleanup := buildAnalyzer(ctx, appConfig, appLogger)
	defer cleanup()

	var analyses []types.Analysis
	if len(resumeTexts) == 1 {
		analyses = []types.Analysis{analyzer.Analyze(ctx, resumeTexts[0], jobText, labelFor(scoreResumes[0]))}
	} else {
		analyses = analyzer.AnalyzeBatch(ctx, jobText, resumeTexts, appConfig.BatchLimit)
		for i := range analyses {
			analyses[i].Label = labelFor(scoreResumes[i])
		}
	}

	for i := range analyses {
		if err := schemas.ValidateValue(schemafiles.Analysis, &analyses[i]); err != nil {
			return fmt.Errorf("analysis for %s failed schema validation: %w", scoreResumes[i], err)
		}
	}

	if scoreSave {
		store, err := openStore(ctx, appConfig)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		for i := range analyses {
			if err := store.SaveAnalysis(ctx, &analyses[i]); err != nil {
				return fmt.Errorf("failed to save analysis for %s: %w", scoreResumes[i], err)
			}
		}
		appLogger.Info("saved analyses", zap.Int("count", len(analyses)))
	}

	if scoreOutput != "" {
		if err := writeAnalyses(scoreOutput, analyses); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if scoreJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(outputValue(analyses))
	}

	printer := observability.NewPrinter(out)
	for i := range analyses {
		printer.PrintAnalysis(&analyses[i])
	}
	return nil
}

// readTextFile reads a plain-text input file.
func readTextFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(content), nil
}

// labelFor names an analysis after its resume file, without directory or extension.
func labelFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// outputValue returns a single analysis as an object and several as an array.
func outputValue(analyses []types.Analysis) any {
	if len(analyses) == 1 {
		return analyses[0]
	}
	return analyses
}

// writeAnalyses writes the analyses as indented JSON, creating parent directories.
func writeAnalyses(path string, analyses []types.Analysis) error {
	data, err := json.MarshalIndent(outputValue(analyses), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analyses: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

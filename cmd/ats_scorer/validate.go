package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/schemas"
	schemafiles "github.com/jonathan/ats-scorer/schemas"
)

var (
	validateFile   string
	validateSchema string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a saved JSON output file against its schema",
	Long:  "Checks a file written by 'score --output' or 'history --json' against the embedded analysis or score breakdown schema.",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "JSON file to validate (required)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "analysis", "Schema to validate against: analysis or score_breakdown")
	_ = validateCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	schemaName := validateSchema + ".schema.json"
	if !slices.Contains(schemafiles.Names(), schemaName) {
		return fmt.Errorf("unknown schema %q: use analysis or score_breakdown", validateSchema)
	}

	if err := schemas.ValidateFile(schemaName, validateFile); err != nil {
		return fmt.Errorf("%s: %w", validateFile, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid against %s\n", validateFile, schemaName)
	return nil
}

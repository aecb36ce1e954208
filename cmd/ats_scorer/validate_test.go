package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetValidateFlags(t *testing.T) {
	t.Cleanup(func() {
		validateFile, validateSchema = "", "analysis"
	})
}

func TestRunValidate_ScoreOutput(t *testing.T) {
	useTestRuntime(t)
	resetScoreFlags(t)
	resetValidateFlags(t)
	dir := t.TempDir()

	scoreResumes = []string{
		writeFile(t, dir, "jane.txt", cliResume),
		writeFile(t, dir, "empty.txt", ""),
	}
	scoreJob = writeFile(t, dir, "job.txt", cliJob)
	scoreOutput = filepath.Join(dir, "analyses.json")
	scoring, _ := newTestCommand()
	require.NoError(t, runScore(scoring, nil))

	validateFile = scoreOutput
	cmd, out := newTestCommand()
	require.NoError(t, runValidate(cmd, nil))
	assert.Contains(t, out.String(), "is valid against analysis.schema.json")
}

func TestRunValidate_InvalidDocument(t *testing.T) {
	resetValidateFlags(t)
	validateFile = writeFile(t, t.TempDir(), "bad.json", `{"overall": 140, "method": "hybrid"}`)
	validateSchema = "score_breakdown"

	cmd, _ := newTestCommand()
	err := runValidate(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestRunValidate_UnknownSchema(t *testing.T) {
	resetValidateFlags(t)
	validateFile = writeFile(t, t.TempDir(), "doc.json", `{}`)
	validateSchema = "resume"

	cmd, _ := newTestCommand()
	err := runValidate(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}

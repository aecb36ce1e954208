package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/config"
)

// getBinaryPath returns the path to the ats_scorer binary for testing
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "ats_scorer")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// useTestRuntime installs a lexical-only configuration backed by a temp SQLite file.
func useTestRuntime(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Defaults()
	cfg.EmbeddingProvider = "none"
	cfg.SQLitePath = filepath.Join(t.TempDir(), "history.db")

	prevConfig, prevLogger := appConfig, appLogger
	appConfig, appLogger = cfg, zap.NewNop()
	t.Cleanup(func() { appConfig, appLogger = prevConfig, prevLogger })
	return cfg
}

// newTestCommand returns a command with a background context that captures output.
func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&out)
	return cmd, &out
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

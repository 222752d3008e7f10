package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestTokensCSSDefaultsToEmptyRoot(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "tokens", "css")
	require.NoError(t, err)
	require.Equal(t, ":root {\n}\n", stdout)
}

func TestTokensCSSFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeWorkspaceFile(t, dir, "tokens.yaml", `colors:
  primary: "#3b82f6"
spacing:
  md: 16px
`)

	stdout, _, err := executeCommand(t, "", "tokens", "css", "--file", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "--color-primary: #3b82f6;")
	require.Contains(t, stdout, "--space-md: 16px;")
}

func TestTokensCSSMissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "", "tokens", "css", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load tokens")
}

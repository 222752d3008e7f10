package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs dsys with a configuration path inside a fresh
// temporary directory unless args already name one.
func executeCommand(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()

	if dir == "" {
		dir = t.TempDir()
	}
	full := append([]string{"--config", filepath.Join(dir, "designsystem.yaml")}, args...)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(full)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeWorkspaceFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInvalidConfigurationFailsCommand(t *testing.T) {
	dir := t.TempDir()
	writeWorkspaceFile(t, dir, "designsystem.yaml", "version: not-semver\npackages:\n  \"@design-system/tokens\": ./pkg/tokens\n")

	_, _, err := executeCommand(t, dir, "packages")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load configuration")
	require.Contains(t, err.Error(), "version")
}

func TestPackagesListsAliases(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "packages")
	require.NoError(t, err)
	require.Contains(t, stdout, "ALIAS")
	require.Contains(t, stdout, "@design-system/primitives")
	require.Contains(t, stdout, "./pkg/primitives")
	require.Contains(t, stdout, "0.0.1")
}

func TestPackagesUsesConfiguredAliases(t *testing.T) {
	dir := t.TempDir()
	writeWorkspaceFile(t, dir, "designsystem.yaml", `version: "1.0.0"
packages:
  "@acme/icons": ./pkg/icons
`)

	stdout, _, err := executeCommand(t, dir, "packages")
	require.NoError(t, err)
	require.Contains(t, stdout, "@acme/icons")
	require.NotContains(t, stdout, "@design-system/tokens")
}

func TestBrowseRequiresTerminal(t *testing.T) {
	_, _, err := executeCommand(t, "", "browse")
	require.Error(t, err)
	require.Contains(t, err.Error(), "interactive terminal")
}

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const coverageSource = `package lib

func Covered() int {
	return 1
}

func Uncovered() int {
	return 2
}
`

func writeCoverageWorkspace(t *testing.T, covered bool) (dir, profile string) {
	t.Helper()

	count := "0"
	if covered {
		count = "1"
	}
	dir = t.TempDir()
	writeWorkspaceFile(t, dir, "go.mod", "module example.com/lib\n\ngo 1.25\n")
	writeWorkspaceFile(t, dir, filepath.Join("pkg", "lib", "lib.go"), coverageSource)
	profile = writeWorkspaceFile(t, dir, "cover.out", "mode: set\n"+
		"example.com/lib/pkg/lib/lib.go:3.20,5.2 1 1\n"+
		"example.com/lib/pkg/lib/lib.go:7.22,9.2 1 "+count+"\n")
	return dir, profile
}

func TestCoverageCheckPasses(t *testing.T) {
	dir, profile := writeCoverageWorkspace(t, true)

	stdout, _, err := executeCommand(t, dir, "coverage", "check", profile)
	require.NoError(t, err)
	require.Contains(t, stdout, "statements")
	require.Contains(t, stdout, "2/2")
	require.Contains(t, stdout, "100.0%")
	require.Contains(t, stdout, "unsupported")
	require.Contains(t, stdout, "1 files checked")
}

func TestCoverageCheckFailsBelowThreshold(t *testing.T) {
	dir, profile := writeCoverageWorkspace(t, false)

	stdout, _, err := executeCommand(t, dir, "coverage", "check", profile)
	require.Error(t, err)
	require.Contains(t, err.Error(), "coverage below threshold: statements, lines, functions")
	require.Contains(t, stdout, "FAIL")
	require.Contains(t, stdout, "50.0%")
}

func TestCoverageCheckWithoutGoModStillMatchesFiles(t *testing.T) {
	dir := t.TempDir()
	profile := writeWorkspaceFile(t, dir, "cover.out", "mode: set\n"+
		"example.com/lib/pkg/lib/lib.go:3.20,5.2 1 0\n"+
		"example.com/lib/pkg/lib/lib.go:7.22,9.2 1 0\n")

	stdout, _, err := executeCommand(t, dir, "coverage", "check", profile)
	require.Error(t, err)
	require.Contains(t, err.Error(), "coverage below threshold: statements, lines")
	require.Contains(t, stdout, "0.0%")
	require.Contains(t, stdout, "1 files checked")
}

func TestCoverageCheckValidatesProfile(t *testing.T) {
	_, _, err := executeCommand(t, "", "coverage", "check", filepath.Join(t.TempDir(), "missing.out"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "coverage profile does not exist")

	_, _, err = executeCommand(t, "", "coverage", "check", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "is a directory")
}

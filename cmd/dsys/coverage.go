package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designsystem/internal/coverage"
)

func newCoverageCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Enforce coverage thresholds",
	}

	cmd.AddCommand(newCoverageCheckCmd(app))

	return cmd
}

func newCoverageCheckCmd(app *appContext) *cobra.Command {
	var moduleRoot string

	cmd := &cobra.Command{
		Use:   "check <profile>",
		Short: "Compare a Go cover profile against the configured thresholds",
		Long: `Check reads a profile written by 'go test -coverprofile' and reports
statement, line and function coverage for the files selected by
coverage.include and coverage.exclude. Branch coverage is not recorded by Go
profiles and is reported as unsupported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateProfilePath(args[0]); err != nil {
				return err
			}
			root := moduleRoot
			if root == "" {
				root = detectModuleRoot(app.baseDir)
			}
			return runCoverageCheck(cmd, app, args[0], root)
		},
	}

	cmd.Flags().StringVar(&moduleRoot, "module-root", "", "Module root used to locate sources (defaults to the configuration directory when it holds a go.mod)")

	return cmd
}

func runCoverageCheck(cmd *cobra.Command, app *appContext, profile, moduleRoot string) error {
	cov := app.cfg.Coverage
	result, err := coverage.Check(profile, coverage.Options{
		ModuleRoot: moduleRoot,
		Include:    cov.Include,
		Exclude:    cov.Exclude,
		Thresholds: cov.Thresholds,
	})
	if result != nil {
		if werr := renderCoverageTable(cmd, result); werr != nil {
			return werr
		}
	}
	return err
}

func renderCoverageTable(cmd *cobra.Command, result *coverage.Result) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "METRIC\tCOVERED\tPERCENT\tTHRESHOLD\tSTATUS")
	for _, m := range result.Metrics {
		if !m.Supported {
			fmt.Fprintf(writer, "%s\t-\t-\t%.0f%%\tunsupported\n", m.Metric, m.Threshold)
			continue
		}
		status := "ok"
		if !m.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(writer, "%s\t%d/%d\t%.1f%%\t%.0f%%\t%s\n", m.Metric, m.Covered, m.Total, m.Percent, m.Threshold, status)
	}
	fmt.Fprintf(writer, "\n%d files checked\n", len(result.Files))
	return writer.Flush()
}

func detectModuleRoot(dir string) string {
	if dir == "" {
		return ""
	}
	if _, err := os.Stat(filepath.Join(dir, "go.mod")); err != nil {
		return ""
	}
	return dir
}

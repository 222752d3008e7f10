package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designsystem/internal/snapshot"
	"github.com/alexisbeaulieu97/designsystem/internal/stories"
)

const defaultSnapshotDir = "__snapshots__"

type snapshotOptions struct {
	dir    string
	update bool
}

func newStoriesSnapshotCmd(app *appContext) *cobra.Command {
	opts := &snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Compare rendered stories with their HTML snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoriesSnapshot(cmd, app, *opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", "", "Snapshot directory (defaults to __snapshots__ next to the configuration)")
	cmd.Flags().BoolVarP(&opts.update, "update", "u", false, "Write missing snapshots and overwrite differing ones")

	return cmd
}

func runStoriesSnapshot(cmd *cobra.Command, app *appContext, opts snapshotOptions) error {
	dir := opts.dir
	if dir == "" {
		dir = app.resolve(defaultSnapshotDir)
	}

	reg, err := stories.Default(app.log)
	if err != nil {
		return err
	}

	report, err := snapshot.Check(cmd.Context(), snapshot.Options{
		Dir:      dir,
		Registry: reg,
		Update:   opts.update,
		Logger:   app.log,
	})
	if report != nil {
		out := cmd.OutOrStdout()
		for _, o := range report.Outcomes {
			fmt.Fprintf(out, "%-9s %s\n", o.Status, o.ID)
			if o.Status == snapshot.StatusMismatch {
				fmt.Fprint(out, o.Diff)
			}
		}
	}
	if err != nil {
		return newCommandError("check snapshots", dir, err, "Run 'dsys stories snapshot --update' if the change is intended.")
	}
	return nil
}

package main

import (
	"fmt"
	"path"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designsystem/pkg/components"
	"github.com/alexisbeaulieu97/designsystem/pkg/primitives"
	"github.com/alexisbeaulieu97/designsystem/pkg/tokens"
)

var packageVersions = map[string]string{
	"tokens":     tokens.Version,
	"primitives": primitives.Version,
	"components": components.Version,
}

func newPackagesCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "List package aliases and the directories they resolve to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ALIAS\tPATH\tVERSION")
			for _, alias := range app.cfg.Aliases() {
				ver, ok := packageVersions[path.Base(alias.Name)]
				if !ok {
					ver = "-"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\n", alias.Name, alias.Path, ver)
			}
			return writer.Flush()
		},
	}

	return cmd
}
